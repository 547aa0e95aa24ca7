package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/pagekeeper/internal/client/docstore"
	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

// upsertQuery сливает поля через json_patch; отметка времени документа не уменьшается.
// revision глобально возрастает, по ней подписчики находят изменения.
const upsertQuery = `
	INSERT INTO documents (page, content, ts, modified_by, last_modified, revision)
	VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(revision), 0) + 1 FROM documents))
	ON CONFLICT(page) DO UPDATE SET
		content = json_patch(documents.content, excluded.content),
		ts = MAX(documents.ts, excluded.ts),
		modified_by = excluded.modified_by,
		last_modified = excluded.last_modified,
		revision = excluded.revision
`

// Read returns the document for the page
func (s *Store) Read(ctx context.Context, page string) (*docstore.Document, error) {
	doc, _, err := s.readSince(ctx, page, 0)
	return doc, err
}

// Write merges fields into the page document
func (s *Store) Write(ctx context.Context, page string, fields models.Snapshot, timestamp int64, author string) error {
	if err := validation.ValidatePageID(page); err != nil {
		return err
	}
	if s.ctx.Err() != nil {
		return docstore.ErrClosed
	}

	content, err := docstore.EncodeContent(fields)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, upsertQuery,
		page,
		string(content),
		timestamp,
		author,
		s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

// readSince возвращает документ, если его revision больше after.
// Если изменений нет, возвращает ErrNotFound.
func (s *Store) readSince(ctx context.Context, page string, after int64) (*docstore.Document, int64, error) {
	if err := validation.ValidatePageID(page); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT content, ts, modified_by, last_modified, revision
		FROM documents
		WHERE page = ? AND revision > ?
	`

	var (
		content      string
		ts           int64
		modifiedBy   string
		lastModified int64
		revision     int64
	)

	err := s.db.QueryRowContext(ctx, query, page, after).Scan(
		&content, &ts, &modifiedBy, &lastModified, &revision,
	)
	if isNoRows(err) {
		return nil, 0, docstore.ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read document: %w", err)
	}

	doc := &docstore.Document{
		Page:         page,
		Timestamp:    ts,
		ModifiedBy:   modifiedBy,
		LastModified: time.UnixMilli(lastModified),
	}

	doc.Content, err = docstore.DecodeContent([]byte(content))
	if err != nil {
		// поврежденный документ отдается с пустым содержимым
		s.logger.Warn("Malformed document content", "page", page, "error", err)
	}

	return doc, revision, nil
}
