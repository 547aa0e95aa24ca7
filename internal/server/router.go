// Package server собирает HTTP сервер relay шины.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/pagekeeper/internal/server/handlers"
	"github.com/iudanet/pagekeeper/internal/server/middleware"
	"github.com/iudanet/pagekeeper/internal/wire"
)

// Config параметры relay
type Config struct {
	Logger *slog.Logger
	// Key ключ relay; пустой - без проверки
	Key     string
	Version string
	// FrameRate кадров в минуту на участника
	FrameRate int
	// ConnectRate подключений в минуту с одного адреса
	ConnectRate int
}

// Relay is the assembled relay: router plus the resources it owns.
type Relay struct {
	Handler        http.Handler
	bus            *handlers.BusHandler
	frameLimiter   *middleware.RateLimiter
	connectLimiter *middleware.RateLimiter
}

// NewRelay создает router relay: /healthz и /bus/{channel}
func NewRelay(cfg Config) (*Relay, error) {
	codec, err := wire.NewCodec()
	if err != nil {
		return nil, err
	}

	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 600
	}
	if cfg.ConnectRate <= 0 {
		cfg.ConnectRate = 60
	}

	frameLimiter := middleware.NewRateLimiter(cfg.FrameRate, time.Minute)
	connectLimiter := middleware.NewRateLimiter(cfg.ConnectRate, time.Minute)

	bus := handlers.NewBusHandler(codec, frameLimiter, cfg.Logger)
	health := handlers.NewHealthHandler(cfg.Logger, cfg.Version, bus.Peers)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(cfg.Logger))
	r.Use(middleware.LoggingMiddleware(cfg.Logger, "/healthz"))

	r.Get("/healthz", health.Health)
	r.With(
		middleware.RateLimitMiddleware(connectLimiter, cfg.Logger),
		middleware.RelayKeyMiddleware(cfg.Logger, cfg.Key),
	).Get("/bus/{channel}", bus.Serve)

	return &Relay{
		Handler:        r,
		bus:            bus,
		frameLimiter:   frameLimiter,
		connectLimiter: connectLimiter,
	}, nil
}

// Peers возвращает число подключенных участников
func (r *Relay) Peers() int {
	return r.bus.Peers()
}

// Close отключает участников и останавливает limiters
func (r *Relay) Close() {
	r.bus.Close()
	r.frameLimiter.Stop()
	r.connectLimiter.Stop()
}
