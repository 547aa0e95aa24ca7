package sync

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/client/bus"
	"github.com/iudanet/pagekeeper/internal/client/docstore"
	"github.com/iudanet/pagekeeper/internal/client/page"
	"github.com/iudanet/pagekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/pagekeeper/internal/crdt"
	"github.com/iudanet/pagekeeper/internal/models"
)

const testPageHTML = `<!doctype html>
<html><body>
<h1 data-field="hero-title">Welcome</h1>
<p data-field="hero-subtitle">Original subtitle</p>
<footer data-field="footer">Footer</footer>
</body></html>`

// memStore документное хранилище в памяти с синхронной доставкой подписчикам
type memStore struct {
	docs     map[string]*docstore.Document
	subs     map[int]memSub
	pingErr  error
	writeErr error
	writes   int
	nextID   int
	mu       sync.Mutex
}

type memSub struct {
	onChange docstore.ChangeFunc
	onError  docstore.ErrorFunc
	page     string
}

func newMemStore() *memStore {
	return &memStore{
		docs: make(map[string]*docstore.Document),
		subs: make(map[int]memSub),
	}
}

func (m *memStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pingErr
}

func (m *memStore) Read(ctx context.Context, page string) (*docstore.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[page]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	copied := *doc
	copied.Content = doc.Content.Clone()
	return &copied, nil
}

func (m *memStore) Write(ctx context.Context, page string, fields models.Snapshot, timestamp int64, author string) error {
	m.mu.Lock()
	if m.writeErr != nil {
		m.mu.Unlock()
		return m.writeErr
	}
	doc, ok := m.docs[page]
	if !ok {
		doc = &docstore.Document{Page: page, Content: models.Snapshot{}}
		m.docs[page] = doc
	}
	doc.Content = doc.Content.Merge(fields)
	if timestamp > doc.Timestamp {
		doc.Timestamp = timestamp
	}
	doc.ModifiedBy = author
	doc.LastModified = time.UnixMilli(timestamp)
	m.writes++
	copied := *doc
	copied.Content = doc.Content.Clone()
	m.mu.Unlock()

	m.push(&copied)
	return nil
}

// push доставляет документ подписчикам страницы, как уведомление сервера
func (m *memStore) push(doc *docstore.Document) {
	m.mu.Lock()
	var targets []docstore.ChangeFunc
	for _, sub := range m.subs {
		if sub.page == doc.Page {
			targets = append(targets, sub.onChange)
		}
	}
	m.mu.Unlock()

	for _, fn := range targets {
		copied := *doc
		copied.Content = doc.Content.Clone()
		fn(&copied)
	}
}

// fail сообщает подписчикам об ошибке
func (m *memStore) fail(err error) {
	m.mu.Lock()
	var targets []docstore.ErrorFunc
	for _, sub := range m.subs {
		targets = append(targets, sub.onError)
	}
	m.mu.Unlock()

	for _, fn := range targets {
		fn(err)
	}
}

func (m *memStore) Subscribe(ctx context.Context, page string, onChange docstore.ChangeFunc, onError docstore.ErrorFunc) (func(), error) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = memSub{page: page, onChange: onChange, onError: onError}
	doc, ok := m.docs[page]
	var initial *docstore.Document
	if ok {
		copied := *doc
		copied.Content = doc.Content.Clone()
		initial = &copied
	}
	m.mu.Unlock()

	if initial != nil {
		onChange(initial)
	}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}, nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

func (m *memStore) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// manualClock часы с ручным управлением
type manualClock struct {
	ms int64
	mu sync.Mutex
}

func (c *manualClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.UnixMilli(c.ms)
}

func (c *manualClock) set(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms = ms
}

// testClient один клиент: страница, кэш, сессия и orchestrator
type testClient struct {
	orch     *Orchestrator
	doc      *page.Document
	cache    *boltdb.Storage
	session  *SessionProviderMock
	prompter *PrompterMock
	notifier *NotifierMock
	clock    *manualClock
	cred     *models.Credential
	confirm  bool
	mu       sync.Mutex
}

type clientOption func(*Options)

func withStore(store docstore.Store) clientOption {
	return func(o *Options) { o.Store = store }
}

func withBus(b bus.Bus) clientOption {
	return func(o *Options) { o.Bus = b }
}

func withPublisher(p Publisher) clientOption {
	return func(o *Options) { o.Publisher = p }
}

func newTestClient(t *testing.T, nodeID string, opts ...clientOption) *testClient {
	t.Helper()

	doc, err := page.Parse([]byte(testPageHTML))
	require.NoError(t, err)

	cache, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cache.db"), "sms")
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	c := &testClient{
		doc:     doc,
		cache:   cache,
		clock:   &manualClock{ms: 1000},
		cred:    &models.Credential{Authenticated: true, Identity: "admin@example.com"},
		confirm: true,
	}
	c.session = &SessionProviderMock{
		CredentialFunc: func(ctx context.Context) (*models.Credential, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			copied := *c.cred
			return &copied, nil
		},
	}
	c.prompter = &PrompterMock{
		ConfirmFunc: func(ctx context.Context, message string) bool {
			c.mu.Lock()
			defer c.mu.Unlock()
			return c.confirm
		},
		LoginRequiredFunc: func(ctx context.Context) {},
	}
	c.notifier = &NotifierMock{
		NotifyFunc: func(kind NoticeKind, message string) {},
	}

	options := Options{
		Page:     "index",
		Document: doc,
		Cache:    cache,
		Session:  c.session,
		Clock:    crdt.NewClockWithNodeID(nodeID, c.clock.now),
		Notifier: c.notifier,
		Prompter: c.prompter,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&options)
	}

	c.orch, err = NewOrchestrator(options)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.orch.Close() })

	return c
}

func (c *testClient) setCredential(cred *models.Credential) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cred = cred
}

func (c *testClient) field(t *testing.T, key string) string {
	t.Helper()
	value, ok := c.doc.Get(key)
	require.True(t, ok, "field %s not found", key)
	return value
}

func (c *testClient) start(t *testing.T) {
	t.Helper()
	require.NoError(t, c.orch.Start(context.Background()))
}

func (c *testClient) startEditing(t *testing.T) {
	t.Helper()
	c.start(t)
	require.NoError(t, c.orch.EnterEdit(context.Background()))
}
