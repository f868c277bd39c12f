// Package server wraps the HTTP server lifecycle: start, serve, and
// signal-driven graceful shutdown with a bounded drain.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Zitteraal/chesskeep/internal/config"
	"github.com/Zitteraal/chesskeep/internal/nlog"
)

type Server struct {
	running atomic.Bool

	logger  nlog.Logger
	handler http.Handler
	server  *http.Server

	stopFromOutsideChan chan struct{}
	doneFromInsideChan  chan struct{}
}

func New(handler http.Handler, logger nlog.Logger) *Server {
	return &Server{
		logger:              logger,
		handler:             handler,
		stopFromOutsideChan: make(chan struct{}),
		doneFromInsideChan:  make(chan struct{}),
	}
}

func (s *Server) IsRunning() bool {
	return s.running.Load()
}

func (s *Server) Logf(format string, v ...any) {
	s.logger.Logf(format, v...)
}

// Run serves until ctx is cancelled or Stop is called, then drains in-flight
// requests for up to ten seconds. Blocks for the lifetime of the server.
func (s *Server) Run(ctx context.Context, cfg *config.Config) error {
	s.server = &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        s.handler,
		ReadTimeout:    time.Duration(cfg.ReadTimeout * int64(time.Second)),
		WriteTimeout:   time.Duration(cfg.WriteTimeout * int64(time.Second)),
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		select {
		case <-ctx.Done():
			s.Logf("Received stop signal. Shutting down...")
		case <-s.stopFromOutsideChan:
			s.Logf("Server was asked to stop. Shutting down...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.Logf("Error during shutdown... %v", err)
		}
		close(s.doneFromInsideChan)
	}()

	s.running.Store(true)
	s.Logf("HTTP server listening on %s", cfg.ListenAddr)

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		s.running.Store(false)
		return fmt.Errorf("http server: %w", err)
	}

	<-s.doneFromInsideChan
	s.running.Store(false)
	return nil
}

// Stop shuts the server down and waits for the drain to finish.
func (s *Server) Stop() {
	close(s.stopFromOutsideChan)
	<-s.doneFromInsideChan
	s.running.Store(false)
}
