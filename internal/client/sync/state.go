package sync

// State состояние orchestrator
type State int

const (
	StateUninitialized State = iota
	StateSyncing
	StateIdle
	StateEditing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSyncing:
		return "syncing"
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Capabilities is the backend set probed once at Start.
// Повторная проверка не выполняется: недоступное хранилище остается
// недоступным до конца сессии.
type Capabilities struct {
	DocumentStore bool
	Publisher     bool
	Bus           bool
}
