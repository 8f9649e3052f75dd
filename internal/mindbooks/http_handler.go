package mindbooks

import (
	"log"
	"net/http"
	"strconv"

	"github.com/crayonzgrim/free-coders-books/internal/httpx"
	"github.com/crayonzgrim/free-coders-books/internal/paging"
)

const (
	defaultPerPage  = 24
	maxPerPage      = 100
	defaultTopLimit = 10
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /api/mind-books. Optional category (slug) and search
// parameters narrow the list before pagination.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		books []Book
		err   error
	)
	if categorySlug := query.Get("category"); categorySlug != "" {
		books, err = h.service.BooksByCategory(r.Context(), categorySlug)
	} else {
		books, err = h.service.Search(r.Context(), query.Get("search"))
	}
	if err != nil {
		upstreamError(w, err)
		return
	}
	if search := query.Get("search"); search != "" && query.Get("category") != "" {
		books = searchBooks(books, search)
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(query.Get("perPage"))
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	result := paging.Paginate(books, page, perPage)
	httpx.JSONSuccess(w, result.Items, map[string]any{
		"pagination": map[string]any{
			"total":       result.Total,
			"totalPages":  result.TotalPages,
			"currentPage": result.CurrentPage,
			"perPage":     perPage,
		},
	})
}

// Categories handles GET /api/mind-books/categories.
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.AllCategories(r.Context())
	if err != nil {
		upstreamError(w, err)
		return
	}
	httpx.JSONSuccess(w, categories, nil)
}

// TopRated handles GET /api/mind-books/top.
func (h *HTTPHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultTopLimit
	}

	books, err := h.service.TopRated(r.Context(), limit)
	if err != nil {
		upstreamError(w, err)
		return
	}
	httpx.JSONSuccess(w, books, nil)
}

func upstreamError(w http.ResponseWriter, err error) {
	log.Printf("mind books upstream error: %v", err)
	httpx.JSONError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch the curated book list", nil)
}
