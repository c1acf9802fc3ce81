package httpapi

import (
	"time"

	"github.com/baditaflorin/go_answer_normalization/internal/ports"
	"github.com/valyala/fasthttp"
)

// ServerConfig tunes the fasthttp server.
type ServerConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int
	// Concurrency 0 means fasthttp's default.
	Concurrency int
}

// Server runs the API over fasthttp.
type Server struct {
	logger ports.Logger
	server *fasthttp.Server
}

// NewServer creates a server around handler.
func NewServer(logger ports.Logger, handler *Handler, cfg ServerConfig) *Server {
	return &Server{
		logger: logger,
		server: &fasthttp.Server{
			Handler:               handler.Handle,
			Name:                  "AnswerNormalizer",
			ReadTimeout:           cfg.ReadTimeout,
			WriteTimeout:          cfg.WriteTimeout,
			MaxRequestBodySize:    cfg.MaxRequestSize,
			Concurrency:           cfg.Concurrency,
			TCPKeepalive:          true,
			TCPKeepalivePeriod:    3 * time.Minute,
			MaxIdleWorkerDuration: 10 * time.Second,
		},
	}
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("Server listening", "address", addr)
	return s.server.ListenAndServe(addr)
}

// Shutdown stops accepting connections and waits for open ones to finish.
func (s *Server) Shutdown() error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown()
}
