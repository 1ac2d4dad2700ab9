package posts

// MaxTextBytes is the maximum accepted post text size (1 MiB)
const MaxTextBytes = 1 << 20

// Post represents a stored post owned by exactly one account.
// Posts are never mutated in place: they are created and deleted, nothing else.
type Post struct {
	Text      string `json:"text" db:"text"`
	ID        int64  `json:"id" db:"id"`
	OwnerID   int64  `json:"ownerId" db:"owner_id"`
	CreatedAt int64  `json:"createdAt" db:"created_at"` // unix seconds
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Text string `json:"text"`
}

// CreatePostResponse represents the response from creating a post
type CreatePostResponse struct {
	PostID int64 `json:"postId"`
}
