package models

import (
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"
)

// Snapshot represents page content: field key -> HTML value.
// Отсутствующий ключ означает "без изменений относительно текущей страницы".
type Snapshot map[string]string

// Clone создает копию snapshot (nil остается пустой map)
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge применяет other поверх s поле за полем (other выигрывает).
// Возвращает новый snapshot, исходные не меняются.
func (s Snapshot) Merge(other Snapshot) Snapshot {
	out := s.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns field keys in sorted order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Field is one named editable content slot of a page.
type Field struct {
	Key      string `json:"key"`      // Key стабильный идентификатор (атрибут data-field)
	Value    string `json:"value"`    // Value текущий HTML
	Original string `json:"original"` // Original HTML на момент начала редактирования
}

// EventType тип события изменения контента
type EventType string

const (
	EventUpdate EventType = "content-update"
	EventReset  EventType = "content-reset"
)

// ChangeEvent describes a change produced by any write path.
// Применяется к странице только если Timestamp строго больше high-water mark страницы.
type ChangeEvent struct {
	Fields    Snapshot  `json:"changes,omitempty"` // Fields измененные поля (частичный snapshot)
	ID        string    `json:"id,omitempty"`      // ID ULID события
	Type      EventType `json:"type"`              // Type update или reset
	Page      string    `json:"page"`              // Page идентификатор страницы
	Origin    string    `json:"origin,omitempty"`  // Origin идентификатор клиента-источника
	Author    string    `json:"author,omitempty"`  // Author identity администратора
	Timestamp int64     `json:"timestamp"`         // Timestamp unix ms
}

// IsReset reports whether receivers must reload from source instead of patching.
func (e *ChangeEvent) IsReset() bool {
	return e.Type == EventReset
}

// EditSession is the admin's local in-progress editing state for one page.
type EditSession struct {
	StartedAt time.Time
	Originals Snapshot
	Page      string
	Active    bool
}

// Credential holds the session state and the publisher token.
// PublisherToken никогда не логируется и не выводится без маски.
type Credential struct {
	ExpiresAt      time.Time
	Identity       string
	PublisherToken string
	Authenticated  bool
}

// HasPublisherToken reports whether commits to the repository are possible.
func (c *Credential) HasPublisherToken() bool {
	return c != nil && c.PublisherToken != ""
}

// MaskedToken returns the publisher token with everything but the last 4 characters hidden.
func (c *Credential) MaskedToken() string {
	if c == nil {
		return ""
	}
	return MaskSecret(c.PublisherToken)
}

// LogValue implements slog.LogValuer so the token never reaches the log.
func (c *Credential) LogValue() slog.Value {
	if c == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.Bool("authenticated", c.Authenticated),
		slog.String("identity", c.Identity),
		slog.String("publisher_token", c.MaskedToken()),
	)
}

// MaskSecret hides a secret leaving only a short suffix.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

// RemoteFileState is a repository file fetched immediately before a publish.
type RemoteFileState struct {
	Path    string
	Content string
	SHA     string // SHA version token, передается обратно при коммите
}

// PageIDFromPath derives page id from URL path: "/about.html" -> "about", "/" -> "index".
func PageIDFromPath(urlPath string) string {
	base := path.Base(strings.TrimSpace(urlPath))
	if base == "." || base == "/" || base == "" {
		return "index"
	}
	return strings.TrimSuffix(base, ".html")
}

// PageFile returns repository file name for a page id.
func PageFile(pageID string) string {
	if pageID == "" || pageID == "index" {
		return "index.html"
	}
	return pageID + ".html"
}
