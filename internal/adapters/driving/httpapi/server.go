package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/custodia-labs/designctx-cli/internal/logger"
)

// Server serves the REST API.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a server on addr. A non-empty token enables Bearer
// auth on every route except the health check.
func NewServer(addr string, ports *Ports, token string) (*Server, error) {
	router, err := NewRouter(ports, token)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run starts the server and blocks until ctx is cancelled or the
// listener fails. Cancellation shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown: %v", err)
		}
	}()

	logger.Info("HTTP API listening on %s", s.httpServer.Addr)

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
