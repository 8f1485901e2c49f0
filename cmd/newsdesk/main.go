package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsdesk/internal/app"
	"newsdesk/internal/app/deps"
	"newsdesk/internal/app/services"
	"newsdesk/internal/config"
	dl "newsdesk/internal/core/domain/logging"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err == nil {
		err = cfg.ValidateServer()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	deps, shutdownDeps := deps.InitDeps(cfg)
	services := services.InitServices(deps)

	httpServer, err := app.InitHttpServer(deps, services)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not init HTTP server.", dl.Entry("err", err))
		shutdownDeps()
		os.Exit(1)
	}
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("defaultLanguage", deps.Config.DefaultLanguage),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	// Event streams never finish on their own.
	deps.SseServer.Close()
	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
