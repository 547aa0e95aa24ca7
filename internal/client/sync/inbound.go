package sync

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/models"
)

// HandleInbound reconciles a remote event against the page high-water mark.
// Событие с timestamp <= отметки отбрасывается (устаревшее или эхо собственной
// записи). Иначе отметка поднимается и сохраняется, а поля применяются к
// странице, если не идет редактирование. Неизвестные ключи игнорируются.
// Returns true if the event advanced the high-water mark.
func (o *Orchestrator) HandleInbound(ctx context.Context, event *models.ChangeEvent) bool {
	if event == nil || event.Page != o.page {
		return false
	}

	o.mu.Lock()
	if o.state == StateClosed || o.state == StateUninitialized {
		o.mu.Unlock()
		return false
	}

	if !o.marks.Advance(o.page, event.Timestamp) {
		o.mu.Unlock()
		o.logger.Debug("Dropped stale event",
			"timestamp", event.Timestamp,
			"high_water_mark", o.marks.Get(o.page),
			"origin", event.Origin,
		)
		return false
	}
	o.clock.Observe(o.page, event.Timestamp)

	editing := o.state == StateEditing
	var (
		applied []string
		notice  string
	)

	switch {
	case editing:
		// правки не перетираются; отметка все равно сохраняется
		if err := o.cache.SaveLastSave(ctx, o.page, event.Timestamp); err != nil {
			o.logger.Warn("Failed to persist high-water mark", "error", err)
		}
		if event.IsReset() {
			notice = "Page was reset by another admin"
		}

	case event.IsReset():
		if err := o.doc.Reload(ctx); err != nil {
			o.logger.Warn("Failed to reload page after reset", "error", err)
		}
		o.fields = o.doc.Snapshot()
		o.originals = o.fields.Clone()
		if err := o.clearLocal(ctx, event.Timestamp); err != nil {
			o.logger.Warn("Failed to clear cached content after reset", "error", err)
		}
		notice = "Page content was reset"

	default:
		clean := make(models.Snapshot, len(event.Fields))
		for key, value := range event.Fields {
			clean[key] = o.sanitizer.Sanitize(value)
		}
		applied = o.doc.Apply(clean)
		stored := models.Snapshot{}
		for _, key := range applied {
			o.fields[key] = clean[key]
			stored[key] = clean[key]
		}
		if err := o.persistLocal(ctx, stored, event.Timestamp, true); err != nil {
			o.logger.Warn("Failed to cache remote content", "error", err)
		}
		if len(applied) > 0 {
			notice = "Content updated by admin"
		}
	}
	o.mu.Unlock()

	o.logger.Info("Applied remote event",
		"type", event.Type,
		"timestamp", event.Timestamp,
		"origin", event.Origin,
		"author", event.Author,
		"fields", applied,
		"suppressed", editing,
	)
	if notice != "" {
		o.notify(NoticeInfo, notice)
	}
	return true
}
