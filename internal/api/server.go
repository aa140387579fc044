// Package api exposes the articles over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/saneatsu/saneatsu.me-sub001/internal/core"
)

// How long in-flight requests are given to complete on shutdown
const shutdownTimeout = 10 * time.Second

type Server struct {
	config      *core.Config
	articles    *core.ArticleService
	suggestions *core.SuggestionService
	limiter     *RateLimiter
}

func NewServer(config *core.Config, store core.ArticleStore) *Server {
	return &Server{
		config:      config,
		articles:    core.NewArticleService(store),
		suggestions: core.NewSuggestionService(store).Configure(config.ConfigFile),
		limiter:     NewRateLimiter(config.ConfigFile.Server.Rate, config.ConfigFile.Server.Burst),
	}
}

// Handler returns the routes wrapped by the middlewares.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	// The literal segment takes precedence over {slug}
	mux.HandleFunc("GET /api/articles/suggestions", s.handleSuggestions)
	mux.HandleFunc("GET /api/articles/{slug}", s.handleArticle)
	return LogMiddleware(RateLimitMiddleware(mux, s.limiter))
}

// ListenAndServe serves until the context is canceled then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		core.CurrentLogger().Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
