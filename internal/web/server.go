package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/aistriu/internal/feedback"
	"codeberg.org/snonux/aistriu/internal/translation"
)

//go:embed templates/*.html
var templateFS embed.FS

// shutdownTimeout bounds how long in-flight requests may drain
const shutdownTimeout = 10 * time.Second

// Config holds the web server dependencies
type Config struct {
	Addr     string
	Provider translation.Provider
	Log      *feedback.Log
	Store    *feedback.Store // may be nil, recent feedback then reads the log
	Logger   *zap.SugaredLogger
}

// Server serves the translation web interface
type Server struct {
	addr     string
	provider translation.Provider
	cache    *translation.Cache
	log      *feedback.Log
	store    *feedback.Store
	logger   *zap.SugaredLogger
	tmpl     *template.Template
	srv      *http.Server
}

// New creates a web server from the given configuration
func New(cfg Config) (*Server, error) {
	if cfg.Provider == nil {
		return nil, fmt.Errorf("translation provider is required")
	}
	if cfg.Log == nil {
		return nil, fmt.Errorf("feedback log is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		addr:     cfg.Addr,
		provider: cfg.Provider,
		cache:    translation.NewCache(),
		log:      cfg.Log,
		store:    cfg.Store,
		logger:   cfg.Logger,
		tmpl:     tmpl,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /translate", s.handleTranslate)
	mux.HandleFunc("POST /feedback", s.handleFeedback)
	mux.HandleFunc("GET /feedback", s.handleRecentFeedback)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.withLogging(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Run serves until the context is cancelled, then drains connections
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Web interface listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("web server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Infof("Shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown failed: %w", err)
	}
	return nil
}

// Handler returns the server's HTTP handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
