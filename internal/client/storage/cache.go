package storage

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/models"
)

//go:generate moq -out cache_mock.go . ContentCache

// ContentCache is the durable per-page key/value store (Local Cache).
// Все операции синхронные и локальные: запись в кэш - нижняя гарантия сохранности правок.
type ContentCache interface {
	// LoadSnapshot returns the stored snapshot of the page.
	// Returns an empty snapshot if nothing is stored.
	// Returns an empty snapshot and an error wrapping ErrMalformed if the stored value cannot be parsed.
	LoadSnapshot(ctx context.Context, page string) (models.Snapshot, error)

	// SaveSnapshot replaces the stored snapshot of the page
	SaveSnapshot(ctx context.Context, page string, snapshot models.Snapshot) error

	// GetLastSave returns the page high-water mark, 0 if none.
	// Returns 0 and an error wrapping ErrMalformed if the stored value cannot be parsed.
	GetLastSave(ctx context.Context, page string) (int64, error)

	// SaveLastSave stores the page high-water mark
	SaveLastSave(ctx context.Context, page string, timestamp int64) error

	// SaveContent replaces the snapshot and the high-water mark atomically
	SaveContent(ctx context.Context, page string, snapshot models.Snapshot, timestamp int64) error

	// ClearContent removes the snapshot and stores the high-water mark atomically (reset)
	ClearContent(ctx context.Context, page string, timestamp int64) error
}
