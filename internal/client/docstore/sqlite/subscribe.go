package sqlite

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/iudanet/pagekeeper/internal/client/docstore"
	"github.com/iudanet/pagekeeper/internal/validation"
)

// Subscribe polls the page document and delivers every new revision.
// Первая доставка содержит текущий документ, если он есть.
// Ошибка чтения завершает подписку и передается в onError.
func (s *Store) Subscribe(ctx context.Context, page string, onChange docstore.ChangeFunc, onError docstore.ErrorFunc) (func(), error) {
	if err := validation.ValidatePageID(page); err != nil {
		return nil, err
	}
	if s.ctx.Err() != nil {
		return nil, docstore.ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(s.ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.poll(subCtx, page, onChange, onError)
	}()

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

func (s *Store) poll(ctx context.Context, page string, onChange docstore.ChangeFunc, onError docstore.ErrorFunc) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	var revision int64
	for {
		doc, rev, err := s.readSince(ctx, page, revision)
		switch {
		case err == nil:
			revision = rev
			if ctx.Err() == nil {
				onChange(doc)
			}
		case errors.Is(err, docstore.ErrNotFound):
			// изменений нет
		default:
			if ctx.Err() != nil {
				return
			}
			s.logger.Warn("Document subscription failed", "page", page, "error", err)
			if onError != nil {
				onError(err)
			}
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
