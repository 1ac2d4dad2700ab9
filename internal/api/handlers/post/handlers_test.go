package post

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"Postbox/internal/api/middleware"
	"Postbox/internal/core/accounts"
	"Postbox/internal/core/posts"
)

// mockPostService implements posts.Service for testing
type mockPostService struct {
	createFunc func(ctx context.Context, token string, req posts.CreatePostRequest) (*posts.CreatePostResponse, error)
	listFunc   func(ctx context.Context, token string) ([]posts.Post, error)
	deleteFunc func(ctx context.Context, token string, postID int64) error
}

func (m *mockPostService) CreatePost(ctx context.Context, token string, req posts.CreatePostRequest) (*posts.CreatePostResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, token, req)
	}
	return &posts.CreatePostResponse{PostID: 1}, nil
}

func (m *mockPostService) ListPosts(ctx context.Context, token string) ([]posts.Post, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, token)
	}
	return []posts.Post{}, nil
}

func (m *mockPostService) DeletePost(ctx context.Context, token string, postID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, token, postID)
	}
	return nil
}

const testToken = "00112233445566778899aabbccddeeff"

func withToken(req *http.Request) *http.Request {
	return req.WithContext(middleware.SetTestBearerToken(req.Context(), testToken))
}

func TestHandleCreate_Success(t *testing.T) {
	handler := NewCreateHandler(&mockPostService{})

	body, _ := json.Marshal(posts.CreatePostRequest{Text: "hello"})
	req := withToken(httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp posts.CreatePostResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.PostID != 1 {
		t.Errorf("expected post id 1, got %d", resp.PostID)
	}
}

func TestHandleCreate_NoToken(t *testing.T) {
	handler := NewCreateHandler(&mockPostService{})

	body, _ := json.Marshal(posts.CreatePostRequest{Text: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandleCreate_UnresolvableToken(t *testing.T) {
	handler := NewCreateHandler(&mockPostService{
		createFunc: func(ctx context.Context, token string, req posts.CreatePostRequest) (*posts.CreatePostResponse, error) {
			return nil, accounts.ErrInvalidToken
		},
	})

	body, _ := json.Marshal(posts.CreatePostRequest{Text: "hello"})
	req := withToken(httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body)))
	rec := httptest.NewRecorder()

	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "InvalidToken" {
		t.Errorf("expected InvalidToken error, got %q", resp.Error)
	}
}

func TestHandleList_ReturnsListing(t *testing.T) {
	listing := []posts.Post{
		{ID: 1, Text: "hello", OwnerID: 7, CreatedAt: 1700000000},
		{ID: 2, Text: "world", OwnerID: 7, CreatedAt: 1700000100},
	}
	handler := NewListHandler(&mockPostService{
		listFunc: func(ctx context.Context, token string) ([]posts.Post, error) {
			return listing, nil
		},
	})

	req := withToken(httptest.NewRequest(http.MethodGet, "/posts", nil))
	rec := httptest.NewRecorder()

	handler.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []posts.Post
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 || got[0].Text != "hello" {
		t.Errorf("unexpected listing: %+v", got)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	handler := NewDeleteHandler(&mockPostService{
		deleteFunc: func(ctx context.Context, token string, postID int64) error {
			return posts.ErrPostNotFound
		},
	})

	r := chi.NewRouter()
	r.Delete("/posts/{postID}", handler.HandleDelete)

	req := withToken(httptest.NewRequest(http.MethodDelete, "/posts/42", nil))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "PostNotFound" {
		t.Errorf("expected PostNotFound error, got %q", resp.Error)
	}
}

func TestHandleDelete_Success(t *testing.T) {
	var deletedID int64
	handler := NewDeleteHandler(&mockPostService{
		deleteFunc: func(ctx context.Context, token string, postID int64) error {
			deletedID = postID
			return nil
		},
	})

	r := chi.NewRouter()
	r.Delete("/posts/{postID}", handler.HandleDelete)

	req := withToken(httptest.NewRequest(http.MethodDelete, "/posts/42", nil))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if deletedID != 42 {
		t.Errorf("expected delete of post 42, got %d", deletedID)
	}
}

func TestHandleDelete_BadID(t *testing.T) {
	handler := NewDeleteHandler(&mockPostService{})

	r := chi.NewRouter()
	r.Delete("/posts/{postID}", handler.HandleDelete)

	req := withToken(httptest.NewRequest(http.MethodDelete, "/posts/not-a-number", nil))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
