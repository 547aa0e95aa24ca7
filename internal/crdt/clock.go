package crdt

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock выдает timestamps (unix ms) для исходящих записей.
// Для каждой страницы значения строго возрастают, даже если системные часы
// стоят на месте или уходят назад. Как и в часах Лампорта, наблюдаемые
// удаленные timestamps подтягивают счетчик вперед.
type Clock struct {
	now    func() time.Time
	last   map[string]int64 // последний выданный/увиденный timestamp по странице
	nodeID string
	mu     sync.Mutex
}

// NewClock создает часы на системном времени с уникальным идентификатором узла (UUID).
func NewClock() *Clock {
	return NewClockWithNodeID(uuid.New().String(), time.Now)
}

// NewClockWithNodeID создает часы с заданным идентификатором узла и источником времени.
// Используется для тестирования.
func NewClockWithNodeID(nodeID string, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{
		now:    now,
		last:   make(map[string]int64),
		nodeID: nodeID,
	}
}

// Now returns the next timestamp for the page: max(wall clock, last+1).
func (c *Clock) Now(page string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixMilli()
	if last := c.last[page]; ts <= last {
		ts = last + 1
	}
	c.last[page] = ts
	return ts
}

// Observe учитывает timestamp, полученный от другого клиента или из кэша.
func (c *Clock) Observe(page string, ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ts > c.last[page] {
		c.last[page] = ts
	}
}

// Last возвращает последний известный timestamp страницы без изменения часов.
func (c *Clock) Last(page string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last[page]
}

// NodeID возвращает идентификатор узла (origin identity клиента).
func (c *Clock) NodeID() string {
	return c.nodeID
}
