package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/pagekeeper/internal/client/page"
	"github.com/iudanet/pagekeeper/internal/client/publisher"
	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

// EnterEdit starts an edit session. Without an authenticated session it asks
// the user to sign in and leaves the page untouched.
func (o *Orchestrator) EnterEdit(ctx context.Context) error {
	cred := o.credential(ctx)

	o.mu.Lock()
	switch o.state {
	case StateUninitialized, StateSyncing:
		o.mu.Unlock()
		return ErrNotStarted
	case StateClosed:
		o.mu.Unlock()
		return ErrClosed
	case StateEditing:
		o.mu.Unlock()
		return nil
	}

	if !cred.Authenticated {
		o.mu.Unlock()
		o.logger.Info("Edit mode requires authentication")
		if o.prompter != nil {
			o.prompter.LoginRequired(ctx)
		}
		return ErrAuthRequired
	}

	originals := o.doc.Snapshot()
	o.edit = &models.EditSession{
		Active:    true,
		Page:      o.page,
		Originals: originals,
		StartedAt: time.Now(),
	}
	o.fields = originals.Clone()
	o.doc.SetEditable(true)
	o.state = StateEditing
	o.mu.Unlock()

	o.logger.Info("Edit mode activated", "identity", cred.Identity, "fields", len(originals))
	o.notify(NoticeSuccess, "Edit mode activated")
	return nil
}

// ExitEdit ends the edit session. Page content stays as edited.
func (o *Orchestrator) ExitEdit(ctx context.Context) error {
	o.mu.Lock()
	if o.state != StateEditing {
		o.mu.Unlock()
		return ErrNotEditing
	}
	o.doc.SetEditable(false)
	o.edit = nil
	o.state = StateIdle
	o.mu.Unlock()

	o.logger.Info("Edit mode deactivated")
	o.notify(NoticeSuccess, "Edit mode deactivated")
	return nil
}

// Editing reports whether an edit session is active
func (o *Orchestrator) Editing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state == StateEditing
}

// EditSession returns a copy of the active edit session, nil when idle
func (o *Orchestrator) EditSession() *models.EditSession {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.edit == nil {
		return nil
	}
	session := *o.edit
	session.Originals = o.edit.Originals.Clone()
	return &session
}

// SaveField saves one field: the value is sanitized, applied to the page and
// merged into the Local Cache, then written to the document store and
// broadcast. Каждый сетевой слой пишется независимо.
func (o *Orchestrator) SaveField(ctx context.Context, key, value string) (*SaveReport, error) {
	if err := validation.ValidateFieldKey(key); err != nil {
		return nil, err
	}
	cred := o.credential(ctx)

	o.mu.Lock()
	if o.state != StateEditing {
		o.mu.Unlock()
		return nil, ErrNotEditing
	}

	clean := o.sanitizer.Sanitize(value)
	if err := o.doc.Set(key, clean); err != nil {
		o.mu.Unlock()
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	o.fields[key] = clean

	ts := o.clock.Now(o.page)
	o.marks.Advance(o.page, ts)

	changes := models.Snapshot{key: clean}
	report := &SaveReport{Timestamp: ts}
	report.Local = LayerResult{Attempted: true, Err: o.persistLocal(ctx, changes, ts, true)}
	if report.Local.Err != nil {
		o.logger.Error("Failed to save field locally", "field", key, "error", report.Local.Err)
	}

	useStore := o.caps.DocumentStore && cred.Authenticated
	o.mu.Unlock()

	if useStore {
		report.Store = o.writeStore(ctx, changes, ts, cred.Identity)
	}
	report.Bus = o.broadcast(ctx, o.newEvent(models.EventUpdate, changes, ts, cred.Identity))

	if report.Local.Err != nil {
		o.notify(NoticeError, fmt.Sprintf("Failed to save %s", key))
	} else {
		o.notify(NoticeSuccess, fmt.Sprintf("%s saved successfully", key))
	}
	return report, nil
}

// SaveAll saves every field of the page: whole snapshot to the Local Cache,
// then document store, publisher and bus in this order.
// Локальная запись всегда выполняется до сетевых вызовов.
func (o *Orchestrator) SaveAll(ctx context.Context) (*SaveReport, error) {
	cred := o.credential(ctx)

	o.mu.Lock()
	if o.state != StateEditing {
		o.mu.Unlock()
		return nil, ErrNotEditing
	}

	snapshot := o.doc.Snapshot()
	o.fields = snapshot.Clone()

	ts := o.clock.Now(o.page)
	o.marks.Advance(o.page, ts)

	report := &SaveReport{Timestamp: ts}
	report.Local = LayerResult{Attempted: true, Err: o.persistLocal(ctx, snapshot, ts, false)}
	if report.Local.Err != nil {
		o.logger.Error("Failed to save page locally", "error", report.Local.Err)
	}

	useStore := o.caps.DocumentStore && cred.Authenticated
	usePublisher := o.caps.Publisher && cred.HasPublisherToken()
	o.mu.Unlock()

	// 1. document store
	if useStore {
		report.Store = o.writeStore(ctx, snapshot, ts, cred.Identity)
	}

	// 2. publisher
	if usePublisher {
		result, err := o.publisher.Publish(ctx, publisher.Request{
			Page:    o.page,
			Changes: snapshot,
			Token:   cred.PublisherToken,
			Author:  cred.Identity,
		})
		report.Publisher = LayerResult{Attempted: true, Err: err}
		report.Published = result
		if err != nil {
			o.logger.Error("Publish failed", "error", err, "credential", cred)
			o.notify(NoticeError, "Failed to commit changes. Changes saved locally.")
		} else {
			o.notify(NoticeSuccess, "Changes committed successfully")
		}
	} else if o.caps.Publisher {
		o.logger.Info("No publisher token, commit skipped")
	}

	// 3. bus
	report.Bus = o.broadcast(ctx, o.newEvent(models.EventUpdate, snapshot, ts, cred.Identity))

	if report.Local.Err != nil {
		o.notify(NoticeError, "Failed to save changes")
	} else {
		o.notify(NoticeSuccess, "All changes saved")
	}
	return report, nil
}

// ResetPage restores the originals captured at EnterEdit (or at Start when not
// editing), clears the Local Cache entry and broadcasts a reset.
// Требует подтверждения пользователя.
func (o *Orchestrator) ResetPage(ctx context.Context) (*SaveReport, error) {
	o.mu.Lock()
	switch o.state {
	case StateUninitialized, StateSyncing:
		o.mu.Unlock()
		return nil, ErrNotStarted
	case StateClosed:
		o.mu.Unlock()
		return nil, ErrClosed
	}
	o.mu.Unlock()

	if o.prompter == nil || !o.prompter.Confirm(ctx, "Reset all changes to original content? This cannot be undone.") {
		return nil, ErrResetCancelled
	}

	cred := o.credential(ctx)

	o.mu.Lock()
	if o.state == StateClosed {
		o.mu.Unlock()
		return nil, ErrClosed
	}

	originals := o.originals
	if o.edit != nil {
		originals = o.edit.Originals
	}
	o.doc.Apply(originals)
	o.fields = o.doc.Snapshot()

	ts := o.clock.Now(o.page)
	o.marks.Advance(o.page, ts)

	report := &SaveReport{Timestamp: ts}
	report.Local = LayerResult{Attempted: true, Err: o.clearLocal(ctx, ts)}
	if report.Local.Err != nil {
		o.logger.Error("Failed to clear cached content", "error", report.Local.Err)
	}
	o.mu.Unlock()

	report.Bus = o.broadcast(ctx, o.newEvent(models.EventReset, nil, ts, cred.Identity))

	o.logger.Info("Page reset to original content", "timestamp", ts)
	o.notify(NoticeSuccess, "Page content has been reset to original state")
	return report, nil
}

// clearLocal удаляет snapshot страницы и сохраняет отметку сброса
func (o *Orchestrator) clearLocal(ctx context.Context, ts int64) error {
	return o.cache.ClearContent(ctx, o.page, ts)
}

func (o *Orchestrator) writeStore(ctx context.Context, fields models.Snapshot, ts int64, author string) LayerResult {
	err := o.store.Write(ctx, o.page, fields, ts, author)
	if err != nil {
		o.logger.Warn("Document store write failed", "error", err)
	}
	return LayerResult{Attempted: true, Err: err}
}

func (o *Orchestrator) broadcast(ctx context.Context, event *models.ChangeEvent) LayerResult {
	if o.bus == nil {
		return LayerResult{}
	}
	err := o.bus.Publish(ctx, event)
	if err != nil {
		o.logger.Warn("Broadcast failed", "type", event.Type, "error", err)
	}
	return LayerResult{Attempted: true, Err: err}
}

// compile-time check
var _ Page = (*page.Document)(nil)
