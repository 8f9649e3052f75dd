package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crayonzgrim/free-coders-books/internal/catalog"
	"github.com/crayonzgrim/free-coders-books/internal/httpx"
	"github.com/crayonzgrim/free-coders-books/internal/mindbooks"
)

const testReadme = `## Startups

| Name | Author | Goodreads Rating | Year Published |
|------|--------|------------------|----------------|
| Zero to One | Peter Thiel | [4.17](https://g.test/b/1) | 2014 |
`

func testApp() *app {
	tree := &catalog.Tree{
		Type: "root",
		Children: []catalog.TreeNode{{
			Type: "books",
			Children: []catalog.LanguageNode{{
				Language: catalog.LanguageInfo{Code: "en", Name: "English"},
				Sections: []catalog.Section{{
					Section: "Go",
					Entries: []catalog.Entry{{URL: "u1", Title: "Go One"}},
				}},
			}},
		}},
	}

	catalogFetch := func(ctx context.Context) (*catalog.Tree, error) { return tree, nil }
	mindFetch := func(ctx context.Context) (string, error) { return testReadme, nil }

	return &app{
		catalogHandler: catalog.NewHTTPHandler(catalog.NewService(catalogFetch, time.Hour, nil)),
		mindHandler:    mindbooks.NewHTTPHandler(mindbooks.NewService(mindFetch, time.Hour, nil)),
		jwtSecret:      "test-secret",
		visitLimiter:   httpx.NewRateLimitMiddleware(100, 100, 100),
	}
}

func TestRouting(t *testing.T) {
	router := testApp().routes()

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("health endpoints", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/healthz").Code)
		assert.Equal(t, http.StatusOK, get("/readyz").Code)
	})

	t.Run("catalog routes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/api/books").Code)
		assert.Equal(t, http.StatusOK, get("/api/categories").Code)
		assert.Equal(t, http.StatusOK, get("/api/categories/go").Code)
		assert.Equal(t, http.StatusOK, get("/api/languages").Code)
		assert.Equal(t, http.StatusOK, get("/api/languages/en").Code)
	})

	t.Run("mind book routes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/api/mind-books").Code)
		assert.Equal(t, http.StatusOK, get("/api/mind-books/categories").Code)
		assert.Equal(t, http.StatusOK, get("/api/mind-books/top").Code)
	})

	t.Run("persistence routes degrade without a database", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users/register", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		assert.Equal(t, http.StatusServiceUnavailable, get("/api/me").Code)
		assert.Equal(t, http.StatusServiceUnavailable, get("/api/bookmarks").Code)
		assert.Equal(t, http.StatusServiceUnavailable, get("/api/visits").Code)
	})

	t.Run("like counts answer zeros without a database", func(t *testing.T) {
		w := get("/api/likes/count?bookUrls=a,b")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"a":0`)
		assert.Contains(t, w.Body.String(), `"b":0`)
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get("/api/nope").Code)
	})
}
