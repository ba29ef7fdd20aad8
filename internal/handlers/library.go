package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/studenthub/apiserver/internal/services"
	"github.com/studenthub/apiserver/internal/storage"
	"github.com/studenthub/apiserver/internal/store"
)

const (
	paperObjectPrefix = "papers/"
	paperLinkExpiry   = time.Hour
)

// LibraryHandler serves question papers and ebooks.
type LibraryHandler struct {
	libraryService *services.LibraryService
	media          *storage.Storage
}

// NewLibraryHandler constructs a handler with the provided dependencies.
func NewLibraryHandler(libraryService *services.LibraryService, media *storage.Storage) *LibraryHandler {
	return &LibraryHandler{
		libraryService: libraryService,
		media:          media,
	}
}

// PapersRouter registers paper routes on the given router.
func PapersRouter(r chi.Router, libraryService *services.LibraryService, media *storage.Storage) {
	handler := NewLibraryHandler(libraryService, media)

	r.Get("/", handler.ListPapers)
	r.Get("/{filename}", handler.DownloadPaper)
}

// EbooksRouter registers ebook routes on the given router.
func EbooksRouter(r chi.Router, libraryService *services.LibraryService) {
	handler := NewLibraryHandler(libraryService, nil)

	r.Get("/", handler.ListEbooks)
}

// StudentInfoHandler returns the handler for the campus info document.
func StudentInfoHandler(libraryService *services.LibraryService) http.HandlerFunc {
	handler := NewLibraryHandler(libraryService, nil)
	return handler.StudentInfo
}

// ListPapers returns the paper metadata records.
func (h *LibraryHandler) ListPapers(w http.ResponseWriter, r *http.Request) {
	papers, err := h.libraryService.ListPapers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch papers")
		return
	}
	writeJSON(w, http.StatusOK, papers)
}

// DownloadPaper redirects to the externally hosted file. A paper record
// with a file URL wins; otherwise a presigned link for the bare object
// is issued. Neither resolving means the file does not exist.
func (h *LibraryHandler) DownloadPaper(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	paper, err := h.libraryService.GetPaperByFilename(r.Context(), filename)
	if err == nil && paper.FileURL != "" {
		http.Redirect(w, r, paper.FileURL, http.StatusFound)
		return
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "failed to fetch paper")
		return
	}

	if h.media != nil {
		key := paperObjectPrefix + filename
		exists, err := h.media.Exists(r.Context(), key)
		if err == nil && exists {
			url, err := h.media.PresignedGet(r.Context(), key, paperLinkExpiry)
			if err == nil {
				http.Redirect(w, r, url, http.StatusFound)
				return
			}
		}
	}

	writeError(w, http.StatusNotFound, "File not found")
}

// StudentInfo returns the campus info document, an empty object when
// none is stored.
func (h *LibraryHandler) StudentInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.libraryService.StudentInfo(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch student info")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// ListEbooks returns the ebook metadata records.
func (h *LibraryHandler) ListEbooks(w http.ResponseWriter, r *http.Request) {
	ebooks, err := h.libraryService.ListEbooks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch ebooks")
		return
	}
	writeJSON(w, http.StatusOK, ebooks)
}
