package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vpaas/internal/config"

	"github.com/wb-go/wbf/zlog"
)

type App struct {
	name            string
	server          *http.Server
	logger          *zlog.Zerolog
	closers         []io.Closer
	shutdownTimeout time.Duration
}

func newApp(name string, srvCfg config.Server, handler http.Handler, logger *zlog.Zerolog, closers ...io.Closer) *App {
	server := &http.Server{
		Addr:         srvCfg.Addr,
		Handler:      handler,
		ReadTimeout:  srvCfg.ReadTimeout,
		WriteTimeout: srvCfg.WriteTimeout,
		IdleTimeout:  srvCfg.IdleTimeout,
	}

	return &App{
		name:            name,
		server:          server,
		logger:          logger,
		closers:         closers,
		shutdownTimeout: srvCfg.ShutdownTimeout,
	}
}

func (a *App) Run() error {
	a.logger.Info().Str("app", a.name).Str("addr", a.server.Addr).Msg("Starting server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.handleSignals(cancel)

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.logger.Error().Err(err).Str("app", a.name).Msg("Server error")
		a.close()
		return err
	case <-ctx.Done():
		a.logger.Info().Str("app", a.name).Msg("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer shutdownCancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("Server shutdown failed")
		}

		a.close()

		a.logger.Info().Str("app", a.name).Msg("Server stopped gracefully")
		return nil
	}
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Error().Err(err).Str("app", a.name).Msg("Failed to release resource")
		}
	}
}

func (a *App) handleSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	a.logger.Info().Str("signal", sig.String()).Msg("Received signal")
	cancel()
}
