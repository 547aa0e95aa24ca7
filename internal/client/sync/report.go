package sync

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/pagekeeper/internal/client/publisher"
)

// LayerResult итог записи в один backend
type LayerResult struct {
	Err       error
	Attempted bool
}

// OK reports whether the layer was written successfully
func (l LayerResult) OK() bool {
	return l.Attempted && l.Err == nil
}

func (l LayerResult) String() string {
	switch {
	case !l.Attempted:
		return "skipped"
	case l.Err != nil:
		return "failed: " + l.Err.Error()
	default:
		return "ok"
	}
}

// SaveReport describes a save across all layers.
// Каждый слой пишется независимо: ошибка одного не отменяет другие.
type SaveReport struct {
	Published *publisher.Result
	Local     LayerResult
	Store     LayerResult
	Publisher LayerResult
	Bus       LayerResult
	Timestamp int64
}

// Err объединяет ошибки всех слоев
func (r *SaveReport) Err() error {
	return errors.Join(r.Local.Err, r.Store.Err, r.Publisher.Err, r.Bus.Err)
}

// Summary returns the user-facing outcome.
func (r *SaveReport) Summary() string {
	if r.Local.Err != nil {
		return "failed to save locally: " + r.Local.Err.Error()
	}
	if r.Publisher.Attempted && r.Publisher.Err != nil {
		return "saved locally but not published: " + r.Publisher.Err.Error()
	}

	var failed []string
	if r.Store.Attempted && r.Store.Err != nil {
		failed = append(failed, "document store")
	}
	if r.Bus.Attempted && r.Bus.Err != nil {
		failed = append(failed, "broadcast")
	}
	if len(failed) > 0 {
		return fmt.Sprintf("saved locally, %s failed", strings.Join(failed, " and "))
	}
	if r.Published != nil && !r.Published.Unchanged {
		return "saved and published"
	}
	return "saved"
}
