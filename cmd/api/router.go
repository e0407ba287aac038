package main

import (
	"context"
	"net/http"
	"time"

	"bookshelf/internal/book"
	"bookshelf/internal/httpx"
	"bookshelf/internal/review"
	"bookshelf/internal/web"
)

type routerDeps struct {
	books     *book.HTTPHandler
	reviews   *review.HTTPHandler
	renderer  httpx.Renderer
	ready     func(context.Context) error
	metrics   *httpx.Metrics
	rateLimit *httpx.RateLimitMiddleware
}

func newRouter(d routerDeps) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", d.metrics.Handler())
	router.Handle("GET /static/", web.StaticHandler())

	router.HandleFunc("GET /{$}", web.LandingHandler(d.renderer))
	router.HandleFunc("GET /books", d.books.List)
	router.HandleFunc("GET /books/{id}", d.books.Get)
	router.HandleFunc("GET /reviews/{title}", d.reviews.Get)

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(d.metrics),
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
	}
	if d.rateLimit != nil {
		middlewares = append(middlewares, d.rateLimit.Middleware)
	}
	return httpx.Chain(middlewares...)(router)
}
