package crdt

import (
	"sync"
)

// Watermarks хранит per-page high-water mark: timestamp последнего примененного события.
// Событие с timestamp <= mark считается устаревшим (или повтором) и не применяется.
// Это единственный механизм упорядочивания входящих изменений (Last-Write-Wins).
type Watermarks struct {
	marks map[string]int64
	mu    sync.RWMutex
}

// NewWatermarks создает пустой набор отметок.
func NewWatermarks() *Watermarks {
	return &Watermarks{
		marks: make(map[string]int64),
	}
}

// Advance raises the page mark to ts when ts is strictly greater.
// Returns true if the event carrying ts must be applied.
func (w *Watermarks) Advance(page string, ts int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ts <= w.marks[page] {
		return false
	}
	w.marks[page] = ts
	return true
}

// Get возвращает текущую отметку страницы (0 если событий еще не было).
func (w *Watermarks) Get(page string) int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.marks[page]
}

// Restore восстанавливает отметку из локального кэша (после перезапуска).
// Отметка никогда не уменьшается.
func (w *Watermarks) Restore(page string, ts int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ts > w.marks[page] {
		w.marks[page] = ts
	}
}
