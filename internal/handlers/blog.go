package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/xid"
	"github.com/studenthub/apiserver/internal/services"
	"github.com/studenthub/apiserver/internal/storage"
	"github.com/studenthub/apiserver/internal/store"
	"github.com/studenthub/apiserver/types"
)

const (
	maxImageBytes   = 20 << 20
	postImagePrefix = "posts/"
)

// BlogHandler provides the feed, post mutation, and seeding endpoints.
type BlogHandler struct {
	feedService *services.FeedService
	postService *services.PostService
	media       *storage.Storage
}

// NewBlogHandler constructs a handler with the provided dependencies.
func NewBlogHandler(feedService *services.FeedService, postService *services.PostService, media *storage.Storage) *BlogHandler {
	return &BlogHandler{
		feedService: feedService,
		postService: postService,
		media:       media,
	}
}

// BlogRouter registers blog routes on the given router.
func BlogRouter(r chi.Router, feedService *services.FeedService, postService *services.PostService, media *storage.Storage) {
	handler := NewBlogHandler(feedService, postService, media)

	r.Get("/posts", handler.ListPosts)
	r.Post("/posts", handler.CreatePost)
	r.Get("/posts/category/{category}", handler.ListByCategory)
	r.Route("/posts/{postID}", func(r chi.Router) {
		r.Get("/", handler.GetPost)
		r.Post("/like", handler.ToggleLike)
		r.Get("/comments", handler.ListComments)
		r.Post("/comments", handler.AddComment)
	})
	r.Post("/initialize", handler.Initialize)
	r.Post("/seed-more-posts", handler.SeedMore)
	r.Post("/upload-image", handler.UploadImage)
}

// ListPosts returns the interleaved feed.
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	views, err := h.feedService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch posts")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// GetPost returns a single post.
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	view, err := h.feedService.Get(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch post")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// CreatePost stores a new post and returns its shaped view.
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var draft types.Post
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	draft.Title = strings.TrimSpace(draft.Title)
	draft.Excerpt = strings.TrimSpace(draft.Excerpt)
	draft.Author = strings.TrimSpace(draft.Author)
	if draft.Title == "" || draft.Excerpt == "" || draft.Author == "" || draft.Category == "" || draft.ReadTime == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	view, err := h.postService.Create(r.Context(), draft)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ToggleLike likes or unlikes the post for the given user.
func (h *BlogHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	liked, err := h.postService.ToggleLike(r.Context(), chi.URLParam(r, "postID"), req.UserID, req.UserName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to like post")
		return
	}

	message := "Post unliked successfully"
	if liked {
		message = "Post liked successfully"
	}
	writeJSON(w, http.StatusOK, LikeResponse{Message: message, Liked: liked})
}

// ListComments returns the post's comments.
func (h *BlogHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.postService.Comments(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch comments")
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// AddComment appends a comment to the post.
func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "user_id and text are required")
		return
	}

	comment := types.Comment{
		UserID:   req.UserID,
		UserName: req.UserName,
		Text:     req.Text,
	}
	if err := h.postService.AddComment(r.Context(), chi.URLParam(r, "postID"), comment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add comment")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Comment added successfully"})
}

// ListByCategory returns posts in a category, no interleaving.
func (h *BlogHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	views, err := h.feedService.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch posts")
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// Initialize seeds the starter posts into an empty collection.
func (h *BlogHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	inserted, existing, err := h.postService.SeedSamples(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to initialize posts")
		return
	}
	if existing > 0 {
		writeJSON(w, http.StatusOK, SeedResponse{
			Message: "Blog posts already initialized",
			Count:   existing,
		})
		return
	}
	writeJSON(w, http.StatusOK, SeedResponse{
		Message: "Blog posts initialized successfully",
		Count:   int64(inserted),
	})
}

// SeedMore inserts the expanded seed set. Not idempotent.
func (h *BlogHandler) SeedMore(w http.ResponseWriter, r *http.Request) {
	n, err := h.postService.SeedMore(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to seed posts")
		return
	}
	writeJSON(w, http.StatusOK, SeedResponse{
		Message: "Seeded more posts (alternating jobs and others)",
		Count:   int64(n),
	})
}

// UploadImage relays an image or document to object storage and
// returns its URL.
func (h *BlogHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.media == nil {
		writeError(w, http.StatusInternalServerError, "media storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	data, err := readFileLimited(file, maxImageBytes)
	_ = file.Close()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := postImagePrefix + xid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if err := h.media.Put(r.Context(), key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		writeError(w, http.StatusInternalServerError, "image upload failed")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{URL: h.media.PublicURL(key)})
}

type LikeRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

type LikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}

type CommentRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Text     string `json:"text"`
}

type SeedResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
