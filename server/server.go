package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	boardAuth "github.com/MrEthical07/boardAuth"
	"github.com/MrEthical07/boardAuth/board"
	"github.com/MrEthical07/boardAuth/middleware"
)

// Options tunes the handler. Zero values take defaults.
type Options struct {
	MaxBodyBytes int64
	// Metrics is mounted at GET /metrics when non-nil.
	Metrics http.Handler
}

const defaultMaxBodyBytes = 1 << 20

// Server routes HTTP requests to the engine and board service.
type Server struct {
	engine  *boardAuth.Engine
	boards  *board.Service
	maxBody int64
	handler http.Handler
}

// New builds the route table.
func New(engine *boardAuth.Engine, boards *board.Service, opts Options) *Server {
	s := &Server{
		engine:  engine,
		boards:  boards,
		maxBody: opts.MaxBodyBytes,
	}
	if s.maxBody <= 0 {
		s.maxBody = defaultMaxBodyBytes
	}

	guard := middleware.Guard(engine)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/board", s.handleGetBoard)
	mux.Handle("POST /api/board", guard(http.HandlerFunc(s.handleReplaceBoard)))
	mux.Handle("POST /api/board/add", guard(http.HandlerFunc(s.handleAddTask)))
	mux.Handle("POST /api/board/move", guard(http.HandlerFunc(s.handleMoveTask)))
	mux.Handle("POST /api/board/update", guard(http.HandlerFunc(s.handleUpdateTask)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics)
	}

	s.handler = middleware.RequestContext(mux)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, cfg boardAuth.ServerConfig) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, cfg)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, cfg boardAuth.ServerConfig) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Printf("boardAuth: listening on %s", ln.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
