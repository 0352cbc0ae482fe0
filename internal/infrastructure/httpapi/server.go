// Package httpapi exposes the application handlers as a JSON REST API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/firstsource-health/firstsource-core/internal/application/handlers"
	"github.com/firstsource-health/firstsource-core/internal/infrastructure/config"
)

// Handlers groups the use case handlers served by the API.
type Handlers struct {
	Articles *handlers.ArticleHandler
	Myths    *handlers.MythHandler
	Accounts *handlers.AccountHandler
	Chat     *handlers.ChatHandler
}

// Server serves the REST API.
type Server struct {
	cfg      config.ServerConfig
	handlers Handlers
	logger   *zap.Logger
}

// NewServer creates a new Server.
func NewServer(cfg config.ServerConfig, h Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		handlers: h,
		logger:   logger,
	}
}

// Handler returns the API's http.Handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/articles", s.listArticles)
	mux.HandleFunc("PUT /api/articles/{id}/view", s.registerView)
	mux.HandleFunc("GET /api/myths", s.listMyths)
	mux.HandleFunc("POST /api/auth/signup", s.signup)
	mux.HandleFunc("POST /api/auth/login", s.login)
	mux.HandleFunc("POST /api/chat", s.chat)
	mux.HandleFunc("GET /api/health", s.health)

	var h http.Handler = mux
	h = s.cors(h)
	h = s.recoverPanics(h)
	h = s.logRequests(h)
	return h
}

// ListenAndServe listens on the configured port and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.logger.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	})
	return g.Wait()
}
