package routes

import (
	"Postbox/internal/api/handlers/post"
	"Postbox/internal/api/middleware"
	"Postbox/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the token-protected post endpoints
func RegisterPostRoutes(r chi.Router, service posts.Service, auth *middleware.BearerTokenMiddleware) {
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	// POST /posts - create a new post owned by the authenticated account
	r.With(auth.RequireToken).Post("/posts", createHandler.HandleCreate)

	// GET /posts - list the account's posts (cached, possibly stale)
	r.With(auth.RequireToken).Get("/posts", listHandler.HandleList)

	// DELETE /posts/{postID} - delete one of the account's own posts
	r.With(auth.RequireToken).Delete("/posts/{postID}", deleteHandler.HandleDelete)
}
