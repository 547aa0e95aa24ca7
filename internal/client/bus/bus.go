// Package bus реализует Broadcast Bus: publish/subscribe между клиентами одной машины.
package bus

import (
	"context"
	"errors"
	"sync"

	"github.com/iudanet/pagekeeper/internal/models"
)

// ErrClosed is returned by Publish after Close
var ErrClosed = errors.New("bus is closed")

// Handler получает входящее событие
type Handler func(event *models.ChangeEvent)

//go:generate moq -out bus_mock.go . Bus

// Bus is a fire-and-forget publish/subscribe channel.
// Отправитель никогда не получает собственное сообщение.
type Bus interface {
	// Publish отправляет событие всем остальным участникам канала
	Publish(ctx context.Context, event *models.ChangeEvent) error

	// Subscribe регистрирует обработчик; возвращает функцию отписки
	Subscribe(handler Handler) (unsubscribe func())

	// Close отключает участника от канала
	Close() error
}

// handlers набор подписчиков одного участника
type handlers struct {
	items  map[int]Handler
	nextID int
	mu     sync.RWMutex
}

func (h *handlers) add(handler Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.items == nil {
		h.items = make(map[int]Handler)
	}
	id := h.nextID
	h.nextID++
	h.items[id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.items, id)
			h.mu.Unlock()
		})
	}
}

func (h *handlers) dispatch(event *models.ChangeEvent) {
	h.mu.RLock()
	list := make([]Handler, 0, len(h.items))
	for _, handler := range h.items {
		list = append(list, handler)
	}
	h.mu.RUnlock()

	for _, handler := range list {
		// каждый подписчик получает свою копию полей
		copied := *event
		copied.Fields = event.Fields.Clone()
		handler(&copied)
	}
}

// Hub is an in-process broadcast hub keyed by channel name.
type Hub struct {
	channels map[string]map[*LocalBus]struct{}
	mu       sync.RWMutex
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		channels: make(map[string]map[*LocalBus]struct{}),
	}
}

// Open joins the channel and returns a new participant
func (h *Hub) Open(channel string) *LocalBus {
	b := &LocalBus{hub: h, channel: channel}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*LocalBus]struct{})
	}
	h.channels[channel][b] = struct{}{}
	return b
}

func (h *Hub) peers(channel string, except *LocalBus) []*LocalBus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*LocalBus, 0, len(h.channels[channel]))
	for b := range h.channels[channel] {
		if b != except {
			out = append(out, b)
		}
	}
	return out
}

func (h *Hub) leave(b *LocalBus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.channels[b.channel], b)
	if len(h.channels[b.channel]) == 0 {
		delete(h.channels, b.channel)
	}
}

// LocalBus is one participant of an in-process channel.
// Доставка синхронная: Publish возвращается после вызова всех обработчиков.
type LocalBus struct {
	hub      *Hub
	channel  string
	handlers handlers
	closed   bool
	mu       sync.RWMutex
}

// Compile-time check
var _ Bus = (*LocalBus)(nil)

// Publish delivers the event to every other participant of the channel
func (b *LocalBus) Publish(ctx context.Context, event *models.ChangeEvent) error {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, peer := range b.hub.peers(b.channel, b) {
		peer.handlers.dispatch(event)
	}
	return nil
}

// Subscribe registers a handler
func (b *LocalBus) Subscribe(handler Handler) func() {
	return b.handlers.add(handler)
}

// Close leaves the channel
func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.hub.leave(b)
	return nil
}
