package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bloodlink-my/bloodlink/config"
	httpx "github.com/bloodlink-my/bloodlink/internal/http"
)

// HTTPServerOptions contains the dependencies for the HTTP server.
type HTTPServerOptions struct {
	Config   *config.AppConfig
	Services ServiceContainer
	DB       *sql.DB
	Logger   *slog.Logger
}

// NewHTTPServer builds the router and returns an unstarted HTTP server.
func NewHTTPServer(opts HTTPServerOptions) *http.Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpx.RegisterMetrics()

	handler := httpx.NewRouter(httpx.RouterServices{
		Auth:          opts.Services.Auth,
		Principals:    opts.Services.Principals,
		Requests:      opts.Services.Requests,
		Registrations: opts.Services.Registrations,
		Notifications: opts.Services.Notifications,
		Directory:     opts.Services.Directory,
		Codec:         opts.Services.Codec,
		DB:            opts.DB,
		Logger:        logger,
	})

	addr := opts.Config.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// RunHTTPServer serves until ctx is cancelled, then shuts down gracefully.
func RunHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("HTTP server stopped")
	return <-errCh
}
