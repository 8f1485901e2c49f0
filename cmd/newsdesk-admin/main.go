package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"newsdesk/internal/app/deps"
	"newsdesk/internal/app/services"
	"newsdesk/internal/cli"
	"newsdesk/internal/config"
	"newsdesk/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.EXIT_FAILURE
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, shutdownDeps := deps.InitAdminDeps(cfg)
	defer shutdownDeps()
	services := services.InitAdminServices(deps)

	commands := cli.New(
		os.Stdin,
		os.Stdout,
		os.Stderr,
		services.CreateUser,
		services.ChangeUser,
		services.DeleteUser,
		func() (bool, error) { return db.Migrate(cfg.PostgresqlURL, cfg.MigrationsPath) },
	)
	return commands.Run(ctx, os.Args[1:])
}
