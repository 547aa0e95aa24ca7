package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/models"
)

// LoadSnapshot returns the stored page snapshot.
// Поврежденный JSON не роняет загрузку страницы: возвращается пустой snapshot и ErrMalformed.
func (s *Storage) LoadSnapshot(ctx context.Context, page string) (models.Snapshot, error) {
	raw, ok, err := s.getItem(storage.ContentKey(s.namespace, page))
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !ok {
		return models.Snapshot{}, nil
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: snapshot of page %s: %v", storage.ErrMalformed, page, err)
	}
	if snapshot == nil {
		// "null" в хранилище
		snapshot = models.Snapshot{}
	}

	return snapshot, nil
}

// SaveSnapshot replaces the stored page snapshot
func (s *Storage) SaveSnapshot(ctx context.Context, page string, snapshot models.Snapshot) error {
	data, err := marshalSnapshot(snapshot)
	if err != nil {
		return err
	}

	return s.setItems(map[string]string{
		storage.ContentKey(s.namespace, page): data,
	})
}

// SaveContent replaces the snapshot and the high-water mark in one transaction
func (s *Storage) SaveContent(ctx context.Context, page string, snapshot models.Snapshot, timestamp int64) error {
	data, err := marshalSnapshot(snapshot)
	if err != nil {
		return err
	}

	return s.setItems(map[string]string{
		storage.ContentKey(s.namespace, page):  data,
		storage.LastSaveKey(s.namespace, page): strconv.FormatInt(timestamp, 10),
	})
}

// ClearContent removes the snapshot and stores the high-water mark in one transaction
func (s *Storage) ClearContent(ctx context.Context, page string, timestamp int64) error {
	return s.update(
		map[string]string{storage.LastSaveKey(s.namespace, page): strconv.FormatInt(timestamp, 10)},
		storage.ContentKey(s.namespace, page),
	)
}

func marshalSnapshot(snapshot models.Snapshot) (string, error) {
	if snapshot == nil {
		snapshot = models.Snapshot{}
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return string(data), nil
}

// GetLastSave returns the page high-water mark (0 if none)
func (s *Storage) GetLastSave(ctx context.Context, page string) (int64, error) {
	raw, ok, err := s.getItem(storage.LastSaveKey(s.namespace, page))
	if err != nil {
		return 0, fmt.Errorf("failed to get last save: %w", err)
	}
	if !ok {
		return 0, nil
	}

	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: last save of page %s: %v", storage.ErrMalformed, page, err)
	}

	return ts, nil
}

// SaveLastSave stores the page high-water mark as a decimal string
func (s *Storage) SaveLastSave(ctx context.Context, page string, timestamp int64) error {
	return s.setItems(map[string]string{
		storage.LastSaveKey(s.namespace, page): strconv.FormatInt(timestamp, 10),
	})
}
