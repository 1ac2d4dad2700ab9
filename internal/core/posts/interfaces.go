package posts

import (
	"context"

	"Postbox/internal/core/accounts"
)

// PostRepository defines the interface for post data persistence
type PostRepository interface {
	Create(ctx context.Context, post *Post) (*Post, error)

	// ListByOwner returns all posts owned by ownerID, ordered by ascending id
	// (creation order). An account with no posts yields an empty slice.
	ListByOwner(ctx context.Context, ownerID int64) ([]Post, error)

	// DeleteOwned deletes the post with the given id only if ownerID owns it.
	// Returns ErrPostNotFound when the post is absent or owned by someone else.
	DeleteOwned(ctx context.Context, id, ownerID int64) error
}

// TokenResolver resolves a bearer token to its account.
// Satisfied by the accounts service.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*accounts.Account, error)
}

// Service defines the interface for post business logic
type Service interface {
	// CreatePost persists a new post for the token's account and returns its
	// id. Does not touch the cache (see the coherence note on postService).
	CreatePost(ctx context.Context, token string, req CreatePostRequest) (*CreatePostResponse, error)

	// ListPosts returns the token's posts, served from cache when a fresh
	// entry exists. The result may be stale by up to one TTL window.
	ListPosts(ctx context.Context, token string) ([]Post, error)

	// DeletePost deletes a post owned by the token's account.
	// Does not touch the cache.
	DeletePost(ctx context.Context, token string, postID int64) error
}
