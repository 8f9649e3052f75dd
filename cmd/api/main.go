package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crayonzgrim/free-coders-books/internal/bookmark"
	"github.com/crayonzgrim/free-coders-books/internal/catalog"
	"github.com/crayonzgrim/free-coders-books/internal/httpx"
	"github.com/crayonzgrim/free-coders-books/internal/like"
	"github.com/crayonzgrim/free-coders-books/internal/mindbooks"
	"github.com/crayonzgrim/free-coders-books/internal/platform/source"
	"github.com/crayonzgrim/free-coders-books/internal/user"
	"github.com/crayonzgrim/free-coders-books/internal/visit"
)

const (
	defaultFPBURL       = "https://raw.githubusercontent.com/EbookFoundation/free-programming-books-search/main/fpb.json"
	defaultMindBooksURL = "https://raw.githubusercontent.com/hackerkid/Mind-Expanding-Books/master/README.md"

	userAgent = "free-coders-books/1.0"

	dbTimeout = 5 * time.Second
	tokenTTL  = 24 * time.Hour

	maxBodyBytes = 1 << 20
)

// app wires handlers to routes. Persistence handlers are nil when the
// server runs without a database; their routes then answer 503.
type app struct {
	catalogHandler  *catalog.HTTPHandler
	mindHandler     *mindbooks.HTTPHandler
	userHandler     *user.HTTPHandler
	bookmarkHandler *bookmark.HTTPHandler
	likeHandler     *like.HTTPHandler
	visitHandler    *visit.HTTPHandler

	jwtSecret string
	db        *pgxpool.Pool
	metrics   *source.Metrics

	visitLimiter *httpx.RateLimitMiddleware
}

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	databaseDSN := os.Getenv("DB_DSN")
	jwtSecret := os.Getenv("JWT_SECRET")
	fpbURL := getEnv("FPB_JSON_URL", defaultFPBURL)
	mindBooksURL := getEnv("MIND_BOOKS_URL", defaultMindBooksURL)
	cacheTTL := getDurationEnv("CACHE_TTL", time.Hour)
	fetchRPS := getIntEnv("FETCH_RPS", 2)
	rateLimitRPS := getIntEnv("RATE_LIMIT_RPS", 20)
	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")

	metrics := source.NewMetrics()
	client := source.NewClient(userAgent, 15*time.Second, fetchRPS, metrics)

	catalogService := catalog.NewService(catalog.HTTPFetch(client, fpbURL), cacheTTL, metrics)
	mindService := mindbooks.NewService(mindbooks.HTTPFetch(client, mindBooksURL), cacheTTL, metrics)

	a := &app{
		catalogHandler: catalog.NewHTTPHandler(catalogService),
		mindHandler:    mindbooks.NewHTTPHandler(mindService),
		jwtSecret:      jwtSecret,
		metrics:        metrics,
		// Visit recording is cheap to abuse, so it gets its own tight limit.
		visitLimiter: httpx.NewRateLimitMiddleware(5.0/60.0, 5, 10000),
	}

	if databaseDSN != "" {
		if jwtSecret == "" {
			log.Fatal("JWT_SECRET is required when DB_DSN is set")
		}
		dbPool := mustOpenDB(databaseDSN)
		defer dbPool.Close()
		a.db = dbPool

		a.userHandler = user.NewHTTPHandler(user.NewService(user.NewPostgresRepo(dbPool, dbTimeout)), jwtSecret, tokenTTL)
		a.bookmarkHandler = bookmark.NewHTTPHandler(bookmark.NewService(bookmark.NewPostgresRepo(dbPool, dbTimeout)))
		a.likeHandler = like.NewHTTPHandler(like.NewService(like.NewPostgresRepo(dbPool, dbTimeout)))
		a.visitHandler = visit.NewHTTPHandler(visit.NewService(visit.NewPostgresRepo(dbPool, dbTimeout)))
	} else {
		log.Println("DB_DSN not set, accounts, bookmarks, likes and visits are disabled")
	}

	handler := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(
			httpx.RecoveryMiddleware(
				httpx.SecurityHeadersMiddleware(
					httpx.CORSMiddleware(corsOrigins)(
						httpx.RequestSizeLimitMiddleware(maxBodyBytes)(
							httpx.NewRateLimitMiddleware(float64(rateLimitRPS), rateLimitRPS*2, 10000).Middleware(
								a.routes(),
							),
						),
					),
				),
			),
		),
	)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func (a *app) routes() http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if a.db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := a.db.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	if a.metrics != nil {
		router.Handle("GET /metrics", promhttp.HandlerFor(a.metrics.Registry, promhttp.HandlerOpts{}))
	}

	router.HandleFunc("GET /api/books", a.catalogHandler.List)
	router.HandleFunc("GET /api/categories", a.catalogHandler.Categories)
	router.HandleFunc("GET /api/categories/{slug}", a.catalogHandler.CategoryBySlug)
	router.HandleFunc("GET /api/languages", a.catalogHandler.Languages)
	router.HandleFunc("GET /api/languages/{code}", a.catalogHandler.LanguageByCode)

	router.HandleFunc("GET /api/mind-books", a.mindHandler.List)
	router.HandleFunc("GET /api/mind-books/categories", a.mindHandler.Categories)
	router.HandleFunc("GET /api/mind-books/top", a.mindHandler.TopRated)

	auth := httpx.AuthMiddleware(a.jwtSecret)

	if a.userHandler != nil {
		router.HandleFunc("POST /api/users/register", a.userHandler.Register)
		router.HandleFunc("POST /api/users/login", a.userHandler.Login)
		router.Handle("GET /api/me", auth(http.HandlerFunc(a.userHandler.Me)))
	} else {
		router.HandleFunc("/api/users/", persistenceUnavailable)
		router.HandleFunc("/api/me", persistenceUnavailable)
	}

	if a.bookmarkHandler != nil {
		router.Handle("GET /api/bookmarks", auth(http.HandlerFunc(a.bookmarkHandler.List)))
		router.Handle("POST /api/bookmarks", auth(http.HandlerFunc(a.bookmarkHandler.Create)))
		router.Handle("DELETE /api/bookmarks", auth(http.HandlerFunc(a.bookmarkHandler.Delete)))
	} else {
		router.HandleFunc("/api/bookmarks", persistenceUnavailable)
	}

	if a.likeHandler != nil {
		router.Handle("GET /api/likes", auth(http.HandlerFunc(a.likeHandler.List)))
		router.Handle("POST /api/likes", auth(http.HandlerFunc(a.likeHandler.Toggle)))
		router.HandleFunc("GET /api/likes/count", a.likeHandler.Counts)
	} else {
		router.HandleFunc("/api/likes", persistenceUnavailable)
		// The frontend polls counts for every page, so answer with zeros
		// instead of an error when there is no database.
		router.HandleFunc("GET /api/likes/count", zeroLikeCounts)
	}

	if a.visitHandler != nil {
		router.Handle("POST /api/visits", a.visitLimiter.Middleware(http.HandlerFunc(a.visitHandler.Record)))
		router.HandleFunc("GET /api/visits", a.visitHandler.Stats)
	} else {
		router.HandleFunc("/api/visits", persistenceUnavailable)
	}

	return router
}

func persistenceUnavailable(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, http.StatusServiceUnavailable, "PERSISTENCE_UNAVAILABLE", "This feature requires a database", nil)
}

func zeroLikeCounts(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int{}
	for _, u := range strings.Split(r.URL.Query().Get("bookUrls"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			counts[u] = 0
		}
	}
	httpx.JSONSuccess(w, counts, nil)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, def)
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using %s", key, v, def)
	}
	return def
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
