package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/pagekeeper/pkg/api"
)

// HealthHandler обрабатывает health check запросы relay
type HealthHandler struct {
	logger  *slog.Logger
	peers   func() int
	version string
}

// NewHealthHandler создает handler; peers возвращает число подключенных участников
func NewHealthHandler(logger *slog.Logger, version string, peers func() int) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		peers:   peers,
		version: version,
	}
}

// Health обрабатывает GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Status:  "ok",
		Version: h.version,
	}
	if h.peers != nil {
		resp.Peers = h.peers()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
