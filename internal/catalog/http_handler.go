package catalog

import (
	"log"
	"net/http"
	"strconv"

	"github.com/crayonzgrim/free-coders-books/internal/httpx"
	"github.com/crayonzgrim/free-coders-books/internal/paging"
)

const (
	defaultPerPage = 24
	maxPerPage     = 100

	// Filter lists shipped alongside book pages are truncated so the
	// response stays small; the full roll-ups live on their own routes.
	topCategories = 50
	topLanguages  = 30
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /api/books.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	opts := Options{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Language: query.Get("language"),
	}
	page, perPage := pageParams(query.Get("page"), query.Get("perPage"))

	books, err := h.service.AllBooks(r.Context())
	if err != nil {
		upstreamError(w, err)
		return
	}

	result := paging.Paginate(Filter(books, opts), page, perPage)
	categories := Categories(books)
	if len(categories) > topCategories {
		categories = categories[:topCategories]
	}
	languages := Languages(books)
	if len(languages) > topLanguages {
		languages = languages[:topLanguages]
	}

	httpx.JSONSuccess(w, result.Items, map[string]any{
		"pagination": map[string]any{
			"total":       result.Total,
			"totalPages":  result.TotalPages,
			"currentPage": result.CurrentPage,
			"perPage":     perPage,
		},
		"filters": map[string]any{
			"categories": categories,
			"languages":  languages,
		},
	})
}

// Categories handles GET /api/categories.
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.AllCategories(r.Context())
	if err != nil {
		upstreamError(w, err)
		return
	}
	httpx.JSONSuccess(w, categories, nil)
}

// CategoryBySlug handles GET /api/categories/{slug}.
func (h *HTTPHandler) CategoryBySlug(w http.ResponseWriter, r *http.Request) {
	categorySlug := r.PathValue("slug")
	if categorySlug == "" {
		http.NotFound(w, r)
		return
	}

	books, err := h.service.BooksByCategorySlug(r.Context(), categorySlug)
	if err != nil {
		upstreamError(w, err)
		return
	}
	if len(books) == 0 {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
		return
	}

	page, perPage := pageParams(r.URL.Query().Get("page"), r.URL.Query().Get("perPage"))
	result := paging.Paginate(books, page, perPage)

	httpx.JSONSuccess(w, result.Items, map[string]any{
		"category": map[string]any{
			"name": books[0].Category,
			"slug": categorySlug,
		},
		"pagination": map[string]any{
			"total":       result.Total,
			"totalPages":  result.TotalPages,
			"currentPage": result.CurrentPage,
			"perPage":     perPage,
		},
	})
}

// LanguageByCode handles GET /api/languages/{code}.
func (h *HTTPHandler) LanguageByCode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		http.NotFound(w, r)
		return
	}

	books, err := h.service.BooksByLanguage(r.Context(), code)
	if err != nil {
		upstreamError(w, err)
		return
	}
	if len(books) == 0 {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Language not found", nil)
		return
	}

	page, perPage := pageParams(r.URL.Query().Get("page"), r.URL.Query().Get("perPage"))
	result := paging.Paginate(books, page, perPage)

	httpx.JSONSuccess(w, result.Items, map[string]any{
		"language": map[string]any{
			"code": code,
			"name": books[0].LanguageName,
		},
		"pagination": map[string]any{
			"total":       result.Total,
			"totalPages":  result.TotalPages,
			"currentPage": result.CurrentPage,
			"perPage":     perPage,
		},
	})
}

// Languages handles GET /api/languages.
func (h *HTTPHandler) Languages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.AllLanguages(r.Context())
	if err != nil {
		upstreamError(w, err)
		return
	}
	httpx.JSONSuccess(w, languages, nil)
}

func pageParams(pageStr, perPageStr string) (page, perPage int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func upstreamError(w http.ResponseWriter, err error) {
	log.Printf("catalog upstream error: %v", err)
	httpx.JSONError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch the book catalog", nil)
}
