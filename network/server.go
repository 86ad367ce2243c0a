package network

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/luca-patrignani/hand-scorer/application"
)

// Server exposes a ScoringService over HTTP.
type Server struct {
	service   *application.ScoringService
	logger    *slog.Logger
	server    *http.Server
	tlsConfig *tls.Config
	timeout   time.Duration
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithTLS serves HTTPS with the given certificate.
func WithTLS(cert tls.Certificate) ServerOption {
	return func(s *Server) {
		s.tlsConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}
}

// WithTimeout bounds the time spent on each request.
func WithTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.timeout = timeout
	}
}

func NewServer(service *application.ScoringService, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		service: service,
		logger:  logger,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.server = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: s.timeout,
	}
	return s
}

// Router builds the chi router with every route and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	h := &handlers{service: s.service, logger: s.logger}
	r.Route("/api", func(r chi.Router) {
		r.Post("/score", h.score)
		r.Post("/showdown", h.showdown)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.Error("failed to write health check response", "error", err)
		}
	})
	return r
}

// Start serves on l in the background until Close is called.
func (s *Server) Start(l net.Listener) {
	if s.tlsConfig != nil {
		l = tls.NewListener(l, s.tlsConfig)
	}
	s.logger.Info("serving", "address", l.Addr().String(), "tls", s.tlsConfig != nil)
	go func() {
		err := s.server.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server stopped", "error", err)
		}
	}()
}

// Close shuts the server down, waiting for in-flight requests until ctx ends.
func (s *Server) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", RequestIDFrom(r.Context()),
		)
	})
}
