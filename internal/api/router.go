package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/theopenlane/iocscope/internal/lookup"
	"github.com/theopenlane/iocscope/internal/metrics"
)

// defaultRequestTimeout bounds every API request
const defaultRequestTimeout = 30 * time.Second

// RouterConfig holds the dependencies for the API router
type RouterConfig struct {
	// Planner classifies inputs and resolves links; a default planner is used when nil
	Planner *lookup.Planner
	// Notifier shares indicators; sharing is disabled when nil
	Notifier Notifier
	// MaxBodySize is the request body limit in bytes
	MaxBodySize int64
	// MaxShareLinks is the number of lookup links included in shared messages
	MaxShareLinks int
	// RequestTimeout bounds request handling, defaults to 30s
	RequestTimeout time.Duration
}

// NewRouter creates a new chi router with all endpoints and middleware
func NewRouter(cfg RouterConfig) http.Handler {
	h := newHandler(cfg)

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(metrics.Middleware)
	r.Use(middleware.Timeout(timeout))

	// permissive CORS for browser clients
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/types", h.handleTypes)
		r.Get("/sources/{type}", h.handleSources)
		r.Post("/classify", h.handleClassify)
		r.Post("/lookup", h.handleLookup)
		r.Post("/share", h.handleShare)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// requestLogger logs each request through zerolog once it completes
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			log.Debug().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request handled")
		}()

		next.ServeHTTP(ww, r)
	})
}
