package visit

import (
	"net/http"

	"github.com/crayonzgrim/free-coders-books/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Record handles POST /api/visits.
func (h *HTTPHandler) Record(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.IncrementToday(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, map[string]int{"today": count}, nil)
}

// Stats handles GET /api/visits.
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, stats, nil)
}
