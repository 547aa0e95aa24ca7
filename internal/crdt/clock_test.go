package crdt

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow возвращает источник времени, который можно двигать вручную
func fixedNow(ms int64) (func() time.Time, func(int64)) {
	var mu sync.Mutex
	current := ms
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return time.UnixMilli(current)
	}
	set := func(v int64) {
		mu.Lock()
		defer mu.Unlock()
		current = v
	}
	return now, set
}

func TestNewClock(t *testing.T) {
	clock := NewClock()

	require.NotNil(t, clock)
	assert.NotEmpty(t, clock.NodeID(), "NodeID should not be empty")
	assert.Equal(t, int64(0), clock.Last("index"))
}

func TestClock_NowFollowsWallClock(t *testing.T) {
	now, set := fixedNow(1000)
	clock := NewClockWithNodeID("node-a", now)

	assert.Equal(t, int64(1000), clock.Now("index"))

	set(2500)
	assert.Equal(t, int64(2500), clock.Now("index"))
	assert.Equal(t, "node-a", clock.NodeID())
}

func TestClock_NowStrictlyIncreasesWithinSameMillisecond(t *testing.T) {
	now, _ := fixedNow(1000)
	clock := NewClockWithNodeID("node-a", now)

	first := clock.Now("index")
	second := clock.Now("index")
	third := clock.Now("index")

	assert.Equal(t, int64(1000), first)
	assert.Equal(t, int64(1001), second)
	assert.Equal(t, int64(1002), third)
}

func TestClock_NowSurvivesWallClockGoingBack(t *testing.T) {
	now, set := fixedNow(5000)
	clock := NewClockWithNodeID("node-a", now)

	assert.Equal(t, int64(5000), clock.Now("about"))

	set(4000)
	assert.Equal(t, int64(5001), clock.Now("about"), "timestamp must never go back")
}

func TestClock_PagesAreIndependent(t *testing.T) {
	now, _ := fixedNow(1000)
	clock := NewClockWithNodeID("node-a", now)

	assert.Equal(t, int64(1000), clock.Now("index"))
	assert.Equal(t, int64(1001), clock.Now("index"))
	assert.Equal(t, int64(1000), clock.Now("about"))
}

func TestClock_Observe(t *testing.T) {
	now, _ := fixedNow(1000)
	clock := NewClockWithNodeID("node-a", now)

	clock.Observe("index", 9000)
	assert.Equal(t, int64(9000), clock.Last("index"))
	assert.Equal(t, int64(9001), clock.Now("index"), "next write must beat the observed one")

	// меньшее значение не откатывает часы
	clock.Observe("index", 10)
	assert.Equal(t, int64(9001), clock.Last("index"))
}

func TestClock_ConcurrentNow(t *testing.T) {
	now, _ := fixedNow(1000)
	clock := NewClockWithNodeID("node-a", now)

	const goroutines = 10
	const ticks = 100

	results := make(chan int64, goroutines*ticks)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < ticks; j++ {
				results <- clock.Now("index")
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for ts := range results {
		assert.False(t, seen[ts], "timestamp %d issued twice", ts)
		seen[ts] = true
	}
	assert.Len(t, seen, goroutines*ticks)
	assert.Equal(t, int64(1000+goroutines*ticks-1), clock.Last("index"))
}
