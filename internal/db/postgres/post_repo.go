package postgres

import (
	"Postbox/internal/core/posts"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.PostRepository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (text, owner_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, text, owner_id, created_at`

	err := r.db.QueryRowContext(ctx, query, post.Text, post.OwnerID, post.CreatedAt).
		Scan(&post.ID, &post.Text, &post.OwnerID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListByOwner retrieves all posts owned by ownerID in creation order
func (r *postgresPostRepo) ListByOwner(ctx context.Context, ownerID int64) ([]posts.Post, error) {
	query := `SELECT id, text, owner_id, created_at FROM posts WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	listing := []posts.Post{}
	for rows.Next() {
		var post posts.Post
		if err := rows.Scan(&post.ID, &post.Text, &post.OwnerID, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		listing = append(listing, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return listing, nil
}

// DeleteOwned deletes a post only when ownerID owns it.
// Zero rows affected means absent or not owned; both surface as
// posts.ErrPostNotFound so existence of foreign posts never leaks.
func (r *postgresPostRepo) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete post id=%d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for post id=%d: %w", id, err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}
