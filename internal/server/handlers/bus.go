package handlers

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/iudanet/pagekeeper/internal/server/middleware"
	"github.com/iudanet/pagekeeper/internal/validation"
	"github.com/iudanet/pagekeeper/internal/wire"
)

const (
	// peerSendBuffer очередь исходящих кадров одного участника
	peerSendBuffer = 64
	// writeTimeout таймаут записи кадра участнику
	writeTimeout = 5 * time.Second
	// maxFrameSize максимальный размер входящего кадра
	maxFrameSize = 1 << 20
)

// peer участник канала
type peer struct {
	conn    *websocket.Conn
	send    chan []byte
	id      string
	channel string
}

// BusHandler is the same-host relay: fans every frame out to the other
// participants of the same channel. Контент не хранится.
type BusHandler struct {
	codec    *wire.Codec
	limiter  *middleware.RateLimiter
	logger   *slog.Logger
	channels map[string]map[*peer]struct{}
	upgrader websocket.Upgrader
	mu       sync.RWMutex
}

// NewBusHandler создает relay; limiter ограничивает кадры на участника
func NewBusHandler(codec *wire.Codec, limiter *middleware.RateLimiter, logger *slog.Logger) *BusHandler {
	return &BusHandler{
		codec:    codec,
		limiter:  limiter,
		logger:   logger,
		channels: make(map[string]map[*peer]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// Serve обрабатывает GET /bus/{channel}: upgrade до WebSocket и цикл чтения
func (h *BusHandler) Serve(w http.ResponseWriter, r *http.Request) {
	channel := chi.URLParam(r, "channel")
	if err := validation.ValidatePageID(channel); err != nil {
		http.Error(w, "invalid channel name", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(maxFrameSize)

	p := &peer{
		conn:    conn,
		send:    make(chan []byte, peerSendBuffer),
		id:      uuid.New().String(),
		channel: channel,
	}

	h.register(p)
	h.logger.Info("Peer joined", "peer", p.id, "channel", channel)

	go h.writePump(p)
	h.readPump(p)

	h.unregister(p)
	h.logger.Info("Peer left", "peer", p.id, "channel", channel)
}

// Peers возвращает число подключенных участников по всем каналам
func (h *BusHandler) Peers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, peers := range h.channels {
		n += len(peers)
	}
	return n
}

// Close отключает всех участников
func (h *BusHandler) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, peers := range h.channels {
		for p := range peers {
			_ = p.conn.Close()
		}
	}
}

func (h *BusHandler) register(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.channels[p.channel] == nil {
		h.channels[p.channel] = make(map[*peer]struct{})
	}
	h.channels[p.channel][p] = struct{}{}
}

func (h *BusHandler) unregister(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.channels[p.channel][p]; !ok {
		return
	}
	delete(h.channels[p.channel], p)
	if len(h.channels[p.channel]) == 0 {
		delete(h.channels, p.channel)
	}
	// после удаления из канала broadcast больше не пишет в send
	close(p.send)
	h.limiter.Forget(p.id)
}

func (h *BusHandler) readPump(p *peer) {
	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("Peer read failed", "peer", p.id, "error", err)
			}
			return
		}

		if !h.limiter.Allow(p.id) {
			h.logger.Warn("Peer rate limit exceeded, frame dropped", "peer", p.id)
			continue
		}

		if err := h.codec.Validate(data); err != nil {
			h.logger.Warn("Dropped invalid frame", "peer", p.id, "error", err)
			continue
		}

		h.broadcast(p, data)
	}
}

// broadcast рассылает кадр всем участникам канала кроме отправителя.
// Медленный участник теряет кадр, отправитель не блокируется.
func (h *BusHandler) broadcast(from *peer, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for p := range h.channels[from.channel] {
		if p == from {
			continue
		}
		select {
		case p.send <- data:
		default:
			h.logger.Warn("Peer queue full, frame dropped", "peer", p.id)
		}
	}
}

func (h *BusHandler) writePump(p *peer) {
	defer func() {
		_ = p.conn.Close()
	}()

	for data := range p.send {
		if err := p.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return
		}
		if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("Peer write failed", "peer", p.id, "error", err)
			return
		}
	}

	_ = p.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}
