package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/pagekeeper/internal/client/bus"
	"github.com/iudanet/pagekeeper/internal/client/docstore"
	"github.com/iudanet/pagekeeper/internal/client/docstore/postgres"
	"github.com/iudanet/pagekeeper/internal/client/docstore/sqlite"
	"github.com/iudanet/pagekeeper/internal/client/publisher"
	"github.com/iudanet/pagekeeper/internal/client/sync"
	"github.com/iudanet/pagekeeper/internal/config"
	"github.com/iudanet/pagekeeper/internal/wire"
)

// Backends opens the network layers of a page session.
// Функция, вернувшая nil без ошибки, означает что слой не настроен.
type Backends struct {
	OpenStore func(ctx context.Context) (docstore.Store, error)
	DialBus   func(ctx context.Context) (bus.Bus, error)
	Publisher sync.Publisher
}

// DefaultBackends builds the layers described by the configuration
func DefaultBackends(cfg *config.Config, logger *slog.Logger) Backends {
	b := Backends{
		OpenStore: func(ctx context.Context) (docstore.Store, error) {
			return OpenStore(ctx, cfg.Store, logger)
		},
		DialBus: func(ctx context.Context) (bus.Bus, error) {
			return DialBus(ctx, cfg.Bus, logger)
		},
	}
	if cfg.HasPublisherRepo() {
		b.Publisher = publisher.New(publisher.NewClient(cfg.PublisherConfig()), logger)
	}
	return b
}

// OpenStore opens the document store selected by the DSN
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (docstore.Store, error) {
	if cfg.DSN == "" {
		return nil, nil
	}

	if cfg.IsPostgres() {
		store, err := postgres.New(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	store, err := sqlite.New(ctx, cfg.DSN, logger, sqlite.WithPollInterval(cfg.PollInterval))
	if err != nil {
		return nil, err
	}
	return store, nil
}

// DialBus connects to the broadcast relay
func DialBus(ctx context.Context, cfg config.BusConfig, logger *slog.Logger) (bus.Bus, error) {
	if cfg.RelayURL == "" {
		return nil, nil
	}

	codec, err := wire.NewCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to create codec: %w", err)
	}
	b, err := bus.Dial(ctx, bus.DialConfig{
		URL:     cfg.RelayURL,
		Channel: cfg.Channel,
		Key:     cfg.Key,
	}, codec, logger)
	if err != nil {
		return nil, err
	}
	return b, nil
}
