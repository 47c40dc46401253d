// Package api exposes the lab sessions over HTTP.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/liquidswrds/csec3330-labs/pkg/auth"
	"github.com/liquidswrds/csec3330-labs/pkg/config"
	"github.com/liquidswrds/csec3330-labs/pkg/logging"
	"github.com/liquidswrds/csec3330-labs/pkg/metrics"
)

// Server represents the HTTP API server
type Server struct {
	manager         *SessionManager
	tokens          *auth.TokenManager
	logger          logging.Logger
	metricsRegistry *metrics.Registry
	startTime       time.Time
	version         string
	port            int
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, logger logging.Logger) (*Server, error) {
	var tokens *auth.TokenManager
	if cfg.Sessions.TokenSecret != "" {
		tm, err := auth.NewTokenManager(cfg.Sessions.TokenSecret, cfg.Sessions.TokenDuration)
		if err != nil {
			return nil, fmt.Errorf("token manager: %w", err)
		}
		tokens = tm
	}

	return &Server{
		manager:         NewSessionManager(cfg.Sessions.MaxSessions, cfg.Sessions.SessionTTL),
		tokens:          tokens,
		logger:          logger.With(logging.Component("api")),
		metricsRegistry: metrics.DefaultRegistry(),
		startTime:       time.Now(),
		version:         "1.0.0",
		port:            cfg.Server.Port,
	}, nil
}

// Handler builds the routing table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.metricsRegistry.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	// Lab catalog and reference material
	mux.HandleFunc("/labs", s.handleLabs)
	mux.HandleFunc("/labs/", s.handleLab) // /labs/{id}, /labs/{id}/dataflows, /labs/{id}/threats

	// Session endpoints
	mux.HandleFunc("/sessions", s.handleSessions)
	mux.HandleFunc("/sessions/", s.requireSession(s.handleSession)) // /sessions/{id}/...

	return s.loggingMiddleware(s.metricsMiddleware(mux))
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf(":%d", s.port)
}

// Start starts the HTTP server and blocks until it exits.
func (s *Server) Start() error {
	addr := s.Addr()
	s.logger.Info("api server starting",
		logging.String("addr", addr),
		logging.String("version", s.version))

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}
