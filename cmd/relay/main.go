package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/pagekeeper/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", "127.0.0.1:8765", "Listen address")
	key := flag.String("key", os.Getenv("PAGEKEEPER_RELAY_KEY"), "Relay key required from peers (empty: none)")
	frameRate := flag.Int("frame-rate", 600, "Frames per minute allowed per peer")
	connectRate := flag.Int("connect-rate", 60, "Connections per minute allowed per address")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	relay, err := server.NewRelay(server.Config{
		Logger:      logger,
		Key:         *key,
		Version:     Version,
		FrameRate:   *frameRate,
		ConnectRate: *connectRate,
	})
	if err != nil {
		logger.Error("Failed to create relay", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           relay.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down relay")
		relay.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown failed", "error", err)
		}
	}()

	logger.Info("Relay starting", "addr", *addr, "version", Version, "key_required", *key != "")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Relay stopped", "error", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("pagekeeper relay\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
