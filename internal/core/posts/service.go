package posts

import (
	"context"
	"fmt"
	"time"
)

// postService orchestrates token resolution, the post cache, and the store.
//
// Cache coherence: reads go through the cache, writes do not. CreatePost and
// DeletePost persist directly and never invalidate or refresh the cached
// listing for their token, so once ListPosts has populated an entry, later
// writes by the same account stay invisible to reads until the entry expires
// by TTL or is evicted for capacity. This bounded staleness is the intended
// behavior, trading read-after-write consistency for cheap repeated reads.
type postService struct {
	postRepo PostRepository
	resolver TokenResolver
	cache    *Cache
}

// NewPostService creates a new post service.
// cache may be nil, in which case every read behaves as a miss.
func NewPostService(postRepo PostRepository, resolver TokenResolver, cache *Cache) Service {
	return &postService{
		postRepo: postRepo,
		resolver: resolver,
		cache:    cache,
	}
}

// CreatePost persists a new post owned by the token's account
func (s *postService) CreatePost(ctx context.Context, token string, req CreatePostRequest) (*CreatePostResponse, error) {
	account, err := s.resolver.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if len(req.Text) > MaxTextBytes {
		return nil, NewValidationError("text", fmt.Sprintf("must not exceed %d bytes", MaxTextBytes))
	}

	post := &Post{
		Text:      req.Text,
		OwnerID:   account.ID,
		CreatedAt: time.Now().Unix(),
	}

	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// No cache interaction: a cached listing for this token keeps serving
	// the pre-create snapshot until it expires
	return &CreatePostResponse{PostID: created.ID}, nil
}

// ListPosts returns the account's posts, cached per token for one TTL window
func (s *postService) ListPosts(ctx context.Context, token string) ([]Post, error) {
	account, err := s.resolver.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if snapshot, ok := s.cache.Get(token); ok {
			return snapshot, nil
		}
	}

	listing, err := s.postRepo.ListByOwner(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if s.cache != nil {
		s.cache.Put(token, listing)
	}

	return listing, nil
}

// DeletePost deletes one of the account's own posts
func (s *postService) DeletePost(ctx context.Context, token string, postID int64) error {
	account, err := s.resolver.ResolveToken(ctx, token)
	if err != nil {
		return err
	}

	// Ownership-scoped delete: a post that exists but belongs to another
	// account reports ErrPostNotFound, same as a missing one.
	// No cache interaction, matching CreatePost.
	return s.postRepo.DeleteOwned(ctx, postID, account.ID)
}
