package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/pagekeeper/internal/client/auth"
	"github.com/iudanet/pagekeeper/internal/client/cli"
	"github.com/iudanet/pagekeeper/internal/client/iocli"
	"github.com/iudanet/pagekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/pagekeeper/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	fs := flag.NewFlagSet("pagekeeper", flag.ExitOnError)
	showVersion := fs.Bool("version", false, "Show version information")
	fs.Usage = func() { cli.PrintUsage(os.Stderr) }

	cfg, args, err := config.Load(fs, os.Args[1:], os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	if len(args) == 0 {
		cli.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", cfg.LogLevel)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Контекст отменяется по Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	cache, err := boltdb.New(ctx, cfg.CachePath, cfg.Namespace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open local cache: %v\n", err)
		os.Exit(1)
	}

	authService := auth.NewService(
		cache,
		auth.NewTokenVault(cache, cfg.Passphrase),
		auth.NewIdentityVerifier(cfg.Identity.Secret, cfg.Identity.Issuer),
		logger,
	)

	app := cli.New(iocli.NewStdio(), cfg, logger, cache, authService, cli.DefaultBackends(cfg, logger))

	// Выполняем команду
	runErr := app.Run(ctx, args[0], args[1:])

	if err := cache.Close(); err != nil {
		logger.Error("failed to close local cache", "error", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("pagekeeper\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
