package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/client/docstore"
	"github.com/iudanet/pagekeeper/internal/models"
)

// setupTestStore подключается к PostgreSQL из PAGEKEEPER_TEST_POSTGRES_DSN
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("PAGEKEEPER_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PAGEKEEPER_TEST_POSTGRES_DSN is not set")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := New(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// testPage уникальная страница, чтобы тесты не мешали друг другу
func testPage() string {
	return "test-" + uuid.New().String()[:8]
}

func TestNew_EmptyDSN(t *testing.T) {
	_, err := New(context.Background(), "  ", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestStore_WriteMergesAndRead(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	page := testPage()

	_, err := s.Read(ctx, page)
	require.ErrorIs(t, err, docstore.ErrNotFound)

	require.NoError(t, s.Write(ctx, page, models.Snapshot{"a": "1", "b": "2"}, 2000, "first@example.com"))
	require.NoError(t, s.Write(ctx, page, models.Snapshot{"b": "<em>two</em>"}, 1500, "second@example.com"))

	doc, err := s.Read(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, models.Snapshot{"a": "1", "b": "<em>two</em>"}, doc.Content)
	assert.Equal(t, int64(2000), doc.Timestamp, "timestamp never goes back")
	assert.Equal(t, "second@example.com", doc.ModifiedBy)
	assert.False(t, doc.LastModified.IsZero())
}

func TestStore_SubscribeReceivesNotifications(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	page := testPage()

	require.NoError(t, s.Write(ctx, page, models.Snapshot{"hero-title": "Initial"}, 1000, "x"))

	var (
		mu   sync.Mutex
		docs []*docstore.Document
	)
	cancel, err := s.Subscribe(ctx, page, func(doc *docstore.Document) {
		mu.Lock()
		defer mu.Unlock()
		docs = append(docs, doc)
	}, nil)
	require.NoError(t, err)
	defer cancel()

	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(docs)
	}

	require.Eventually(t, func() bool { return count() == 1 }, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, s.Write(ctx, page, models.Snapshot{"hero-title": "Changed"}, 1001, "x"))
	require.Eventually(t, func() bool { return count() == 2 }, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	assert.Equal(t, "Changed", docs[1].Content["hero-title"])
	mu.Unlock()

	// другие страницы не доставляются
	require.NoError(t, s.Write(ctx, testPage(), models.Snapshot{"x": "1"}, 1, "x"))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 2, count())
}
