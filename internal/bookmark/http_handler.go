package bookmark

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/crayonzgrim/free-coders-books/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createReq struct {
	BookURL   string `json:"bookUrl"`
	BookTitle string `json:"bookTitle"`
}

// List handles GET /api/bookmarks.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	bookmarks, err := h.service.List(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if bookmarks == nil {
		bookmarks = []Bookmark{}
	}
	httpx.JSONSuccess(w, bookmarks, nil)
}

// Create handles POST /api/bookmarks.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.BookURL = strings.TrimSpace(req.BookURL)
	req.BookTitle = strings.TrimSpace(req.BookTitle)
	if req.BookURL == "" || req.BookTitle == "" {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "bookUrl and bookTitle are required", nil)
		return
	}

	created, err := h.service.Add(r.Context(), userID, req.BookURL, req.BookTitle)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "Already bookmarked", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, created)
}

// Delete handles DELETE /api/bookmarks?bookUrl=...
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	bookURL := r.URL.Query().Get("bookUrl")
	if bookURL == "" {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "bookUrl is required", nil)
		return
	}

	if err := h.service.Remove(r.Context(), userID, bookURL); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Bookmark not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
