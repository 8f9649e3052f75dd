package like

import (
	"encoding/json"
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

type toggleReq struct {
	BookURL string `json:"bookUrl"`
}

// Toggle handles POST /api/likes.
func (h *HTTPHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req toggleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.BookURL = strings.TrimSpace(req.BookURL)
	if req.BookURL == "" {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "bookUrl is required", nil)
		return
	}

	result, err := h.service.Toggle(r.Context(), userID, req.BookURL)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, result, nil)
}

// List handles GET /api/likes.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	likes, err := h.service.List(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if likes == nil {
		likes = []Like{}
	}
	httpx.JSONSuccess(w, likes, nil)
}

// Counts handles GET /api/likes/count?bookUrls=u1,u2. This endpoint is
// public so the catalog pages can render counts for anonymous visitors.
func (h *HTTPHandler) Counts(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("bookUrls")
	if strings.TrimSpace(raw) == "" {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "bookUrls is required", nil)
		return
	}

	var urls []string
	for _, u := range strings.Split(raw, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "bookUrls is required", nil)
		return
	}

	counts, err := h.service.Counts(r.Context(), urls)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, counts, nil)
}
