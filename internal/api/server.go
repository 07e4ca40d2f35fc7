package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/healthcalc/healthcalc/internal/auth"
	"github.com/healthcalc/healthcalc/internal/config"
	"github.com/healthcalc/healthcalc/internal/engine"
	"github.com/healthcalc/healthcalc/internal/i18n"
	"github.com/healthcalc/healthcalc/internal/metrics"
	"github.com/healthcalc/healthcalc/internal/profile"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// Options wires a Server to its collaborators. Engine and Profiles are
// required; the rest may be nil.
type Options struct {
	Engine   *engine.Engine
	Profiles *profile.Store
	Metrics  *metrics.Registry

	// Fetcher performs remote evaluations; Remote decides which calculators
	// are delegated to it.
	Fetcher engine.Fetcher
	Remote  config.RemoteConfig

	// Hub serves /ws/profile.
	Hub http.Handler

	Auth          config.AuthConfig
	CORS          config.CORSConfig
	DefaultLocale i18n.Locale
}

// Server is the HTTP API of the calculator engine.
type Server struct {
	opts   Options
	router chi.Router

	mu     sync.RWMutex
	locale i18n.Locale
}

// NewServer creates a Server and registers all routes.
func NewServer(opts Options) *Server {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	s := &Server{
		opts:   opts,
		router: chi.NewRouter(),
		locale: opts.DefaultLocale,
	}
	if s.locale == "" {
		s.locale = i18n.Default
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)

	origins := s.opts.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type",
			auth.HeaderAPIKey, auth.HeaderRapidAPI, "X-RapidAPI-Host"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/api/v1/health", s.health)
	s.router.Method(http.MethodGet, "/metrics", s.opts.Metrics.Handler())

	s.router.Group(func(r chi.Router) {
		r.Use(auth.APIKey(s.opts.Auth.Mode, s.opts.Auth.Key()))

		r.Get("/api/v1/calculators", s.listCalculators)
		r.Post("/api/v1/evaluate/{id}", s.evaluate)

		r.Get("/api/v1/profile", s.getProfile)
		r.Put("/api/v1/profile", s.putProfile)
		r.Delete("/api/v1/profile", s.deleteProfile)

		r.Get("/calculate/{path}", s.calculate)

		if s.opts.Hub != nil {
			r.Method(http.MethodGet, "/ws/profile", s.opts.Hub)
		}
	})
}

// Router returns the root handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// SetDefaultLocale changes the locale used when a request names none.
func (s *Server) SetDefaultLocale(l i18n.Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locale != l {
		slog.Info("api: default locale changed", "from", s.locale, "to", l)
	}
	s.locale = l
}

func (s *Server) defaultLocale() i18n.Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// requestLogger logs one line per request with slog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Info("api: request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
