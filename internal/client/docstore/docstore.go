// Package docstore описывает Remote Document Store: один документ на страницу
// с push-уведомлениями об изменениях всем подписчикам.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
)

// Document is the stored state of one page.
type Document struct {
	LastModified time.Time
	Content      models.Snapshot
	Page         string
	ModifiedBy   string
	Timestamp    int64
}

// ChangeFunc получает документ после каждого изменения, включая собственные записи
type ChangeFunc func(doc *Document)

// ErrorFunc получает ошибку, после которой подписка прекращена
type ErrorFunc func(err error)

//go:generate moq -out store_mock.go . Store

// Store is a remote per-page document store.
type Store interface {
	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error

	// Read возвращает документ страницы или ErrNotFound
	Read(ctx context.Context, page string) (*Document, error)

	// Write выполняет merge-write: поля, отсутствующие в fields, сохраняются
	Write(ctx context.Context, page string, fields models.Snapshot, timestamp int64, author string) error

	// Subscribe доставляет текущий документ и все последующие изменения.
	// Обработчики вызываются из отдельной goroutine.
	Subscribe(ctx context.Context, page string, onChange ChangeFunc, onError ErrorFunc) (cancel func(), err error)

	// Close останавливает подписки и закрывает соединение
	Close() error
}

// DecodeContent разбирает сохраненное поле content.
// Пустое значение и JSON null дают пустой snapshot.
func DecodeContent(data []byte) (models.Snapshot, error) {
	content := models.Snapshot{}
	if len(data) == 0 {
		return content, nil
	}
	if err := json.Unmarshal(data, &content); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if content == nil {
		content = models.Snapshot{}
	}
	return content, nil
}

// EncodeContent сериализует поля для записи
func EncodeContent(fields models.Snapshot) ([]byte, error) {
	if fields == nil {
		fields = models.Snapshot{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}
	return data, nil
}
