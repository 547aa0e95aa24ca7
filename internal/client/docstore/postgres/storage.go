// Package postgres реализует Remote Document Store поверх PostgreSQL.
// Изменения доставляются через LISTEN/NOTIFY.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/iudanet/pagekeeper/internal/client/docstore"
	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const (
	// NotifyChannel канал pg_notify, payload - идентификатор страницы
	NotifyChannel = "pagekeeper_documents"

	operationTimeout     = 5 * time.Second
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
)

// Store represents PostgreSQL document store implementation
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	dsn    string
	wg     sync.WaitGroup
}

// Compile-time check
var _ docstore.Store = (*Store)(nil)

// New connects to PostgreSQL and applies migrations
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("dsn cannot be empty")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, operationTimeout)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", docstore.ErrUnavailable, err)
	}

	storeCtx, cancel := context.WithCancel(context.Background())
	s := &Store{
		db:     db,
		logger: logger,
		ctx:    storeCtx,
		cancel: cancel,
		dsn:    dsn,
	}

	if err := s.runMigrations(); err != nil {
		cancel()
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// runMigrations выполняет миграции из embedded FS
func (s *Store) runMigrations() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	if s.ctx.Err() != nil {
		return docstore.ErrClosed
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", docstore.ErrUnavailable, err)
	}
	return nil
}

// Close stops subscriptions and closes the connection pool
func (s *Store) Close() error {
	s.cancel()
	s.wg.Wait()
	return s.db.Close()
}

// Read returns the document for the page
func (s *Store) Read(ctx context.Context, page string) (*docstore.Document, error) {
	if err := validation.ValidatePageID(page); err != nil {
		return nil, err
	}

	query := `
		SELECT content, ts, modified_by, last_modified
		FROM documents
		WHERE page = $1
	`

	var (
		content []byte
		doc     = &docstore.Document{Page: page}
	)

	err := s.db.QueryRowContext(ctx, query, page).Scan(&content, &doc.Timestamp, &doc.ModifiedBy, &doc.LastModified)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc.Content, err = docstore.DecodeContent(content)
	if err != nil {
		s.logger.Warn("Malformed document content", "page", page, "error", err)
	}

	return doc, nil
}

// Write merges fields into the page document.
// content || EXCLUDED.content сохраняет поля, которых нет в записи.
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

	query := `
		INSERT INTO documents (page, content, ts, modified_by, last_modified)
		VALUES ($1, $2::jsonb, $3, $4, NOW())
		ON CONFLICT (page) DO UPDATE SET
			content = documents.content || EXCLUDED.content,
			ts = GREATEST(documents.ts, EXCLUDED.ts),
			modified_by = EXCLUDED.modified_by,
			last_modified = EXCLUDED.last_modified
	`

	if _, err := s.db.ExecContext(ctx, query, page, string(content), timestamp, author); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Subscribe listens for change notifications of the page.
// Каждое уведомление перечитывает документ; после переподключения документ
// перечитывается, так как уведомления могли быть потеряны.
func (s *Store) Subscribe(ctx context.Context, page string, onChange docstore.ChangeFunc, onError docstore.ErrorFunc) (func(), error) {
	if err := validation.ValidatePageID(page); err != nil {
		return nil, err
	}
	if s.ctx.Err() != nil {
		return nil, docstore.ErrClosed
	}

	failures := make(chan error, 1)
	listener := pq.NewListener(s.dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			if event == pq.ListenerEventConnectionAttemptFailed && err != nil {
				select {
				case failures <- err:
				default:
				}
			}
		})

	if err := listener.Listen(NotifyChannel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("%w: failed to listen: %v", docstore.ErrUnavailable, err)
	}

	subCtx, cancel := context.WithCancel(s.ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() { _ = listener.Close() }()
		s.listen(subCtx, listener, failures, page, onChange, onError)
	}()

	var once sync.Once
	return func() { once.Do(cancel) }, nil
}

func (s *Store) listen(ctx context.Context, listener *pq.Listener, failures <-chan error, page string, onChange docstore.ChangeFunc, onError docstore.ErrorFunc) {
	deliver := func() bool {
		readCtx, cancel := context.WithTimeout(ctx, operationTimeout)
		defer cancel()

		doc, err := s.Read(readCtx, page)
		switch {
		case err == nil:
			if ctx.Err() == nil {
				onChange(doc)
			}
			return true
		case errors.Is(err, docstore.ErrNotFound):
			return true
		case ctx.Err() != nil:
			return false
		default:
			s.logger.Warn("Document subscription failed", "page", page, "error", err)
			if onError != nil {
				onError(err)
			}
			return false
		}
	}

	// начальное состояние документа
	if !deliver() {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-failures:
			s.logger.Warn("Document listener connection failed", "page", page, "error", err)
			if onError != nil {
				onError(fmt.Errorf("%w: %v", docstore.ErrUnavailable, err))
			}
			return
		case n := <-listener.Notify:
			// nil приходит после переподключения
			if n != nil && n.Extra != page {
				continue
			}
			if !deliver() {
				return
			}
		}
	}
}
