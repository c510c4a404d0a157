package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	httpShutdownTimeout   = 5 * time.Second
	httpReadHeaderTimeout = 5 * time.Second
)

// HTTPServer exposes the bot's health and metrics
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	r := chi.NewRouter()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           r,
			ReadHeaderTimeout: httpReadHeaderTimeout,
		},
		bot: bot,
	}

	r.Get("/healthz", srv.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return srv
}

// Start starts the HTTP server in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord internal HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord internal HTTP server failed", "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord internal HTTP server shutdown failed", "error", err)
	}
}
