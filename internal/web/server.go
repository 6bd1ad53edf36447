// Package web serves the topic browser as HTML and exports it as a static site.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spool/internal/browser"
	"spool/internal/catalog"
	"spool/internal/layout"
	"spool/internal/telemetry"
)

// Config holds the HTTP listener settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Option customizes a Server.
type Option func(*Server)

// WithCatalog serves cat instead of the embedded catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(s *Server) {
		if cat != nil {
			s.catalog = cat
		}
	}
}

// WithShell replaces the default page chrome.
func WithShell(shell layout.Shell) Option {
	return func(s *Server) {
		s.shell = shell
	}
}

// WithRecorder reports selections and renders through rec.
func WithRecorder(rec *telemetry.Recorder) Option {
	return func(s *Server) {
		s.recorder = rec
	}
}

// Server renders topic pages. Each request gets its own browser; the
// selection lives in the URL.
type Server struct {
	cfg        Config
	catalog    *catalog.Catalog
	shell      layout.Shell
	recorder   *telemetry.Recorder
	logger     *slog.Logger
	tmpl       *templates
	router     chi.Router
	httpServer *http.Server
}

// NewServer builds the router and parses the embedded templates.
func NewServer(cfg Config, opts ...Option) (*Server, error) {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	s := &Server{
		cfg:     cfg,
		catalog: catalog.Default(),
		shell:   layout.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.recorder.Logger()

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s.tmpl = tmpl
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(s.requestLogMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/", s.handleIndex)
	r.Get("/topics/{slug}", s.handleTopic)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))))
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(s.handleNotFound)
	return r
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("serving", slog.String("addr", s.cfg.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	case err, ok := <-serverErr:
		if !ok {
			return nil
		}
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
}

// handleIndex serves ?topic= when it names a catalog topic, else the default.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := s.pageFor(r.Context(), r.URL.Query().Get("topic"))
	s.writePage(w, r, http.StatusOK, s.tmpl.page, page)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	name, ok := s.catalog.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	page := s.pageFor(r.Context(), name)
	s.writePage(w, r, http.StatusOK, s.tmpl.page, page)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	page := browser.Render(s.catalog, "")
	s.writePage(w, r, http.StatusNotFound, s.tmpl.notFound, page)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, t *template.Template, page browser.Page) {
	body, err := s.renderPage(r.Context(), t, page)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "render failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
