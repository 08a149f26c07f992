// Package server exposes rendered icons and the catalog legend over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sofmeright/goaround-icons/src/config"
	"github.com/sofmeright/goaround-icons/src/icons"
	"github.com/sofmeright/goaround-icons/src/version"
)

const shutdownTimeout = 5 * time.Second

// Server serves icon SVGs, the legend and a health probe.
type Server struct {
	cfg      config.ServerConfig
	render   config.RenderConfig
	renderer *icons.Renderer
	logger   *zap.SugaredLogger
	started  time.Time
}

// New creates a server from loaded configuration.
func New(cfg *config.Config, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	// Query strings are untrusted: fills are always escaped here.
	opts := cfg.Render.Options()
	opts.Escape = true
	return &Server{
		cfg:      cfg.Server,
		render:   cfg.Render,
		renderer: icons.NewRenderer(opts),
		logger:   logger,
		started:  time.Now(),
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /icons/svg", s.handleIcon)
	mux.HandleFunc("GET /icons/{type}", s.handleIconByType)
	mux.HandleFunc("GET /api/icons", s.handleLegend)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return s.logRequests(mux)
}

// Run listens on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		opts := s.renderer.Options()
		s.logger.Infow("Icon server listening", "addr", ln.Addr().String(),
			"default_color", opts.DefaultColor,
			"strict_color", opts.StrictColor,
			"escape", opts.Escape)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Infow("Icon server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debugw("HTTP request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// handleIcon serves /icons/svg?type=B738&category=A3&color=%23ff0000&rotation=45.
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.writeIcon(w, q.Get("type"), q.Get("category"), q.Get("color"), q.Get("rotation"))
}

// handleIconByType serves /icons/B738 and /icons/B738.svg with the same query options.
func (s *Server) handleIconByType(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	code := trimSVGExt(r.PathValue("type"))
	s.writeIcon(w, code, q.Get("category"), q.Get("color"), q.Get("rotation"))
}

func trimSVGExt(name string) string {
	return strings.TrimSuffix(name, ".svg")
}

func (s *Server) writeIcon(w http.ResponseWriter, typeCode, category, color, rotation string) {
	deg := s.render.Rotation
	if rotation != "" {
		v, err := strconv.ParseFloat(rotation, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid rotation %q", rotation))
			return
		}
		deg = v
	}

	svg, err := s.renderer.Render(typeCode, category, color, deg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if s.cfg.CacheMaxAge > 0 {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(s.cfg.CacheMaxAge))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(svg)); err != nil {
		s.logger.Debugw("Failed to write icon response", "error", err)
	}
}

func (s *Server) handleLegend(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, icons.NewLegend()); err != nil {
		s.logger.Warnw("Failed to write legend", "error", err)
	}
}

// HealthResponse is the body of /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Icons   int    `json:"icons"`
	Uptime  string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Message: "icon catalog loaded",
		Version: version.Version,
		Icons:   len(icons.IDs()),
		Uptime:  time.Since(s.started).Truncate(time.Second).String(),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		s.logger.Warnw("Failed to write health response", "error", err)
	}
}
