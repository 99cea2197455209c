package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/dialects-backend/internal/adapter/provider/completion"
	"github.com/heartmarshall/dialects-backend/internal/config"
	chatsvc "github.com/heartmarshall/dialects-backend/internal/service/chat"
	termsvc "github.com/heartmarshall/dialects-backend/internal/service/term"
	"github.com/heartmarshall/dialects-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, opens the store, and serves HTTP until ctx is cancelled, then
// shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("default_provider", cfg.Providers.Default),
	)

	handler, cleanup, err := NewHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler wires the store, the completion gateway, the services and the
// router. The returned cleanup releases the store.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	gateway := completion.NewGateway(logger, cfg.Providers)
	for _, name := range gateway.Providers() {
		if pc := cfg.Providers.ByName()[name]; !pc.KeySet {
			logger.Warn("provider credential not set", slog.String("provider", name))
		}
	}

	terms := termsvc.NewService(logger, st.terms, termsvc.Config{
		DefaultProvider:    cfg.Providers.Default,
		DegradeListOnError: !cfg.Terms.FailListOnError,
	})
	chat := chatsvc.NewService(logger, gateway, st.messages, chatsvc.Config{
		DefaultProvider: cfg.Providers.Default,
		LogMessages:     !cfg.Chat.DisableMessageLog,
		LogTimeout:      cfg.Chat.LogTimeout,
	})

	handler := rest.NewRouter(logger, rest.RouterConfig{
		CORS:              cfg.CORS,
		MaxBodyBytes:      cfg.Server.MaxBodyBytes,
		UnmatchedNotFound: cfg.Router.UnmatchedNotFound,
	}, rest.Handlers{
		Chat:   rest.NewChatHandler(chat, logger),
		Terms:  rest.NewTermHandler(terms, logger),
		Health: rest.NewHealthHandler(st, Version),
	})

	return handler, st.close, nil
}
