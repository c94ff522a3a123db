package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type RouterOptions struct {
	BasePath       string
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter wires every dashboard route under the base path.
func NewRouter(h *DashboardHandler, opts RouterOptions) http.Handler {
	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Cache-Control"},
			MaxAge:         86400,
		}).Handler)
	}

	routes := func(r chi.Router) {
		r.Get("/", h.Index)
		r.Get("/health", h.Health)
		r.Get("/data/todos.json", h.Artifact)
		r.Get("/api/todos", h.Todos)
		r.Get("/manifest.webmanifest", h.Manifest)
	}

	base := strings.TrimSuffix(NormalizeBasePath(opts.BasePath), "/")
	if base == "" {
		routes(r)
	} else {
		r.Route(base, routes)
		r.Get("/", http.RedirectHandler(base+"/", http.StatusFound).ServeHTTP)
	}

	return r
}

// NormalizeBasePath always returns a path with leading and trailing slashes.
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}

// RequestLogger пишет каждый запрос в zap
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}
