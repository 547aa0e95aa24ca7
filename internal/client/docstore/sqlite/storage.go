// Package sqlite реализует Remote Document Store поверх SQLite.
// Push-уведомления эмулируются опросом колонки revision.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/pagekeeper/internal/client/docstore"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// DefaultPollInterval период опроса изменений
const DefaultPollInterval = 500 * time.Millisecond

// Option настраивает Store
type Option func(*Store)

// WithPollInterval задает период опроса подписок
func WithPollInterval(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// Store represents SQLite document store implementation
type Store struct {
	db           *sql.DB
	logger       *slog.Logger
	now          func() time.Time
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	pollInterval time.Duration
}

// Compile-time check
var _ docstore.Store = (*Store)(nil)

// New creates a new SQLite document store.
// dbPath is the path to the SQLite database file shared by all local clients.
func New(ctx context.Context, dbPath string, logger *slog.Logger, opts ...Option) (*Store, error) {
	// Открываем соединение с БД
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", docstore.ErrUnavailable, err)
	}

	// SQLite с WAL mode может поддерживать несколько читателей, но только одного писателя
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	storeCtx, cancel := context.WithCancel(context.Background())
	s := &Store{
		db:           db,
		logger:       logger,
		now:          time.Now,
		ctx:          storeCtx,
		cancel:       cancel,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
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
	goose.SetDialect("sqlite3")
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

// Close stops subscriptions and closes the database connection
func (s *Store) Close() error {
	s.cancel()
	s.wg.Wait()
	return s.db.Close()
}

// DB returns the underlying database connection for testing purposes
func (s *Store) DB() *sql.DB {
	return s.db
}

// isNoRows проверяет отсутствие строки
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
