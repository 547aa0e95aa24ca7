package bus

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/wire"
)

const (
	// DefaultWriteTimeout таймаут записи одного кадра
	DefaultWriteTimeout = 5 * time.Second
)

// WSBus is a participant connected to the same-host relay over WebSocket.
type WSBus struct {
	conn      *websocket.Conn
	codec     *wire.Codec
	logger    *slog.Logger
	done      chan struct{}
	handlers  handlers
	writeMu   sync.Mutex
	closeOnce sync.Once
	closed    bool
	closedMu  sync.RWMutex
}

// Compile-time check
var _ Bus = (*WSBus)(nil)

// DialConfig адрес relay и канал
type DialConfig struct {
	// URL адрес relay, например "ws://127.0.0.1:8765"
	URL     string
	Channel string
	// Key ключ relay, если relay запущен с ключом
	Key string
}

// Dial connects to the relay channel
func Dial(ctx context.Context, cfg DialConfig, codec *wire.Codec, logger *slog.Logger) (*WSBus, error) {
	if cfg.Channel == "" {
		return nil, fmt.Errorf("channel cannot be empty")
	}

	endpoint, err := busURL(cfg.URL, cfg.Channel)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if cfg.Key != "" {
		header.Set("Authorization", "Bearer "+cfg.Key)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to relay: %w", err)
	}

	b := &WSBus{
		conn:   conn,
		codec:  codec,
		logger: logger,
		done:   make(chan struct{}),
	}
	go b.readLoop()

	return b, nil
}

// busURL строит адрес канала, http(s) схемы заменяются на ws(s)
func busURL(relayURL, channel string) (string, error) {
	u, err := url.Parse(strings.TrimRight(relayURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid relay url: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("invalid relay url scheme %q", u.Scheme)
	}

	return u.JoinPath("bus", channel).String(), nil
}

// Publish sends the event to the relay
func (b *WSBus) Publish(ctx context.Context, event *models.ChangeEvent) error {
	b.closedMu.RLock()
	closed := b.closed
	b.closedMu.RUnlock()
	if closed {
		return ErrClosed
	}

	data, err := b.codec.Encode(event)
	if err != nil {
		return err
	}

	deadline := time.Now().Add(DefaultWriteTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	if err := b.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := b.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to publish to relay: %w", err)
	}
	return nil
}

// Subscribe registers a handler
func (b *WSBus) Subscribe(handler Handler) func() {
	return b.handlers.add(handler)
}

// Done закрывается, когда соединение с relay потеряно или закрыто
func (b *WSBus) Done() <-chan struct{} {
	return b.done
}

// Close disconnects from the relay
func (b *WSBus) Close() error {
	var err error
	b.closeOnce.Do(func() {
		b.closedMu.Lock()
		b.closed = true
		b.closedMu.Unlock()

		b.writeMu.Lock()
		_ = b.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		b.writeMu.Unlock()

		err = b.conn.Close()
		<-b.done
	})
	return err
}

func (b *WSBus) readLoop() {
	defer close(b.done)

	for {
		_, data, err := b.conn.ReadMessage()
		if err != nil {
			b.closedMu.RLock()
			closed := b.closed
			b.closedMu.RUnlock()

			if !closed && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				b.logger.Warn("Relay connection lost", "error", err)
			}
			return
		}

		event, err := b.codec.Decode(data)
		if err != nil {
			// невалидный кадр отбрасывается, соединение живет дальше
			b.logger.Warn("Dropped invalid bus message", "error", err)
			continue
		}

		b.handlers.dispatch(event)
	}
}
