// Package sync реализует Sync Orchestrator: единственную точку, которая для
// страницы сводит локальные правки с входящими изменениями и пишет во все
// доступные backends в фиксированном порядке.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/iudanet/pagekeeper/internal/client/bus"
	"github.com/iudanet/pagekeeper/internal/client/docstore"
	"github.com/iudanet/pagekeeper/internal/client/page"
	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/crdt"
	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

// Options are the injected collaborators of one page orchestrator.
// Store и Publisher необязательны.
type Options struct {
	Document  Page
	Cache     storage.ContentCache
	Bus       bus.Bus
	Store     docstore.Store
	Publisher Publisher
	Session   SessionProvider
	Clock     *crdt.Clock
	Sanitizer *page.Sanitizer
	Notifier  Notifier
	Prompter  Prompter
	Logger    *slog.Logger
	Page      string
}

// Orchestrator drives one page: editing state machine, local cache,
// document store, publisher and bus.
//
// Операции сериализованы mutex; сетевые вызовы выполняются вне блокировки,
// поэтому входящие события могут чередоваться с ними. Порядок применения
// входящих событий определяет только high-water mark.
type Orchestrator struct {
	doc       Page
	cache     storage.ContentCache
	bus       bus.Bus
	store     docstore.Store
	publisher Publisher
	session   SessionProvider
	clock     *crdt.Clock
	sanitizer *page.Sanitizer
	notifier  Notifier
	prompter  Prompter
	logger    *slog.Logger
	marks     *crdt.Watermarks

	edit        *models.EditSession
	fields      models.Snapshot
	originals   models.Snapshot
	unsubscribe []func()
	cancelStore func()
	page        string
	caps        Capabilities
	state       State
	mu          sync.Mutex
}

// NewOrchestrator creates an orchestrator in the Uninitialized state
func NewOrchestrator(opts Options) (*Orchestrator, error) {
	if err := validation.ValidatePageID(opts.Page); err != nil {
		return nil, err
	}
	if opts.Document == nil || opts.Cache == nil || opts.Session == nil {
		return nil, fmt.Errorf("document, cache and session are required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = crdt.NewClock()
	}
	if opts.Sanitizer == nil {
		opts.Sanitizer = page.NewSanitizer()
	}

	return &Orchestrator{
		doc:       opts.Document,
		cache:     opts.Cache,
		bus:       opts.Bus,
		store:     opts.Store,
		publisher: opts.Publisher,
		session:   opts.Session,
		clock:     opts.Clock,
		sanitizer: opts.Sanitizer,
		notifier:  opts.Notifier,
		prompter:  opts.Prompter,
		logger:    opts.Logger.With("page", opts.Page),
		marks:     crdt.NewWatermarks(),
		fields:    models.Snapshot{},
		originals: models.Snapshot{},
		page:      opts.Page,
		state:     StateUninitialized,
	}, nil
}

// Start probes backends once, restores the page from the Local Cache and
// subscribes to the document store (when reachable) and the bus.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.state != StateUninitialized {
		o.mu.Unlock()
		return ErrAlreadyStarted
	}
	o.state = StateSyncing
	o.mu.Unlock()

	caps := o.probe(ctx)

	o.mu.Lock()
	o.caps = caps
	o.originals = o.doc.Snapshot()
	o.restoreFromCache(ctx)
	o.mu.Unlock()

	if o.bus != nil {
		unsubscribe := o.bus.Subscribe(func(event *models.ChangeEvent) {
			o.HandleInbound(context.Background(), event)
		})
		o.addUnsubscribe(unsubscribe)
	}

	if caps.DocumentStore {
		o.subscribeStore(ctx)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateSyncing {
		o.state = StateIdle
	}

	o.logger.Info("Sync started",
		"document_store", o.caps.DocumentStore,
		"publisher", o.caps.Publisher,
		"bus", o.caps.Bus,
		"high_water_mark", o.marks.Get(o.page),
	)
	return nil
}

// probe проверяет backends один раз за сессию
func (o *Orchestrator) probe(ctx context.Context) Capabilities {
	caps := Capabilities{
		Bus:       o.bus != nil,
		Publisher: o.publisher != nil,
	}

	if o.store != nil {
		if err := o.store.Ping(ctx); err != nil {
			o.logger.Warn("Document store unavailable, using bus and local cache", "error", err)
		} else {
			caps.DocumentStore = true
		}
	}
	return caps
}

// restoreFromCache применяет сохраненный snapshot и восстанавливает high-water mark.
// Поврежденные данные считаются пустыми.
func (o *Orchestrator) restoreFromCache(ctx context.Context) {
	snapshot, err := o.cache.LoadSnapshot(ctx, o.page)
	if err != nil {
		o.logger.Warn("Failed to load cached content, starting empty", "error", err)
		snapshot = models.Snapshot{}
	}
	if applied := o.doc.Apply(snapshot); len(applied) > 0 {
		o.logger.Debug("Applied cached content", "fields", applied)
	}
	o.fields = o.doc.Snapshot()

	lastSave, err := o.cache.GetLastSave(ctx, o.page)
	if err != nil {
		o.logger.Warn("Failed to load last save timestamp", "error", err)
		lastSave = 0
	}
	o.marks.Restore(o.page, lastSave)
	o.clock.Observe(o.page, lastSave)
}

func (o *Orchestrator) subscribeStore(ctx context.Context) {
	cancel, err := o.store.Subscribe(ctx, o.page,
		func(doc *docstore.Document) {
			o.HandleInbound(context.Background(), &models.ChangeEvent{
				Type:      models.EventUpdate,
				Page:      doc.Page,
				Fields:    doc.Content,
				Timestamp: doc.Timestamp,
				Author:    doc.ModifiedBy,
			})
		},
		o.storeFailed,
	)
	if err != nil {
		o.storeFailed(err)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateClosed || !o.caps.DocumentStore {
		cancel()
		return
	}
	o.cancelStore = cancel
}

// storeFailed переключает сессию на bus + local cache без возврата к хранилищу
func (o *Orchestrator) storeFailed(err error) {
	o.mu.Lock()
	if !o.caps.DocumentStore {
		o.mu.Unlock()
		return
	}
	o.caps.DocumentStore = false
	cancel := o.cancelStore
	o.cancelStore = nil
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	o.logger.Warn("Document store subscription failed, falling back to bus", "error", err)
	o.notify(NoticeWarning, "Real-time sync unavailable, using local fallback")
}

func (o *Orchestrator) addUnsubscribe(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.unsubscribe = append(o.unsubscribe, fn)
}

// Close unsubscribes from every backend. Backends are owned by the caller.
func (o *Orchestrator) Close() error {
	o.mu.Lock()
	if o.state == StateClosed {
		o.mu.Unlock()
		return nil
	}
	o.state = StateClosed
	o.edit = nil
	unsubscribe := o.unsubscribe
	o.unsubscribe = nil
	cancelStore := o.cancelStore
	o.cancelStore = nil
	o.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
	if cancelStore != nil {
		cancelStore()
	}
	return nil
}

// State returns the current state
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Capabilities returns the capability set recorded at Start
func (o *Orchestrator) Capabilities() Capabilities {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.caps
}

// HighWaterMark returns the timestamp of the latest applied event
func (o *Orchestrator) HighWaterMark() int64 {
	return o.marks.Get(o.page)
}

// Fields returns a copy of the in-memory field map
func (o *Orchestrator) Fields() models.Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fields.Clone()
}

// Page returns the page id
func (o *Orchestrator) Page() string {
	return o.page
}

// newEvent создает событие с ULID идентификатором
func (o *Orchestrator) newEvent(kind models.EventType, fields models.Snapshot, ts int64, author string) *models.ChangeEvent {
	return &models.ChangeEvent{
		ID:        ulid.Make().String(),
		Type:      kind,
		Page:      o.page,
		Fields:    fields,
		Timestamp: ts,
		Origin:    o.clock.NodeID(),
		Author:    author,
	}
}

// credential читает текущую сессию; ошибка означает анонимного пользователя
func (o *Orchestrator) credential(ctx context.Context) *models.Credential {
	cred, err := o.session.Credential(ctx)
	if err != nil || cred == nil {
		if err != nil {
			o.logger.Warn("Failed to read session", "error", err)
		}
		return &models.Credential{}
	}
	return cred
}

// persistLocal пишет snapshot и отметку времени в Local Cache.
// merge=true сливает поля с сохраненными, иначе заменяет snapshot целиком.
func (o *Orchestrator) persistLocal(ctx context.Context, fields models.Snapshot, ts int64, merge bool) error {
	snapshot := fields
	if merge {
		stored, err := o.cache.LoadSnapshot(ctx, o.page)
		if err != nil && !errors.Is(err, storage.ErrMalformed) {
			return err
		}
		snapshot = stored.Merge(fields)
	}

	return o.cache.SaveContent(ctx, o.page, snapshot, ts)
}

func (o *Orchestrator) notify(kind NoticeKind, message string) {
	if o.notifier != nil {
		o.notifier.Notify(kind, message)
	}
}
