package processing

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidigest/digest-api/internal/models"
)

type slowRunner struct {
	mu         sync.Mutex
	running    int32
	maxRunning int32
	processed  map[uint]int
	block      chan struct{}
}

func newSlowRunner() *slowRunner {
	return &slowRunner{
		processed: make(map[uint]int),
		block:     make(chan struct{}),
	}
}

func (r *slowRunner) Process(ctx context.Context, videoID uint, digestType models.DigestType) error {
	current := atomic.AddInt32(&r.running, 1)
	for {
		max := atomic.LoadInt32(&r.maxRunning)
		if current <= max || atomic.CompareAndSwapInt32(&r.maxRunning, max, current) {
			break
		}
	}

	<-r.block

	r.mu.Lock()
	r.processed[videoID]++
	r.mu.Unlock()

	atomic.AddInt32(&r.running, -1)
	return nil
}

func (r *slowRunner) countFor(videoID uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.processed[videoID]
}

func TestEnqueueSingleFlightPerVideo(t *testing.T) {
	runner := newSlowRunner()
	dispatcher := NewDispatcher(runner, 4, 0)

	assert.True(t, dispatcher.Enqueue(1, models.DigestTypeSummary))

	// The first run is still blocked, so duplicates must be refused
	require.Eventually(t, func() bool { return dispatcher.InFlight() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, dispatcher.Enqueue(1, models.DigestTypeSummary))
	assert.False(t, dispatcher.Enqueue(1, models.DigestTypeSummary))

	close(runner.block)
	dispatcher.Stop()

	assert.Equal(t, 1, runner.countFor(1))
}

func TestEnqueueAllowsDistinctVideos(t *testing.T) {
	runner := newSlowRunner()
	dispatcher := NewDispatcher(runner, 4, 0)

	assert.True(t, dispatcher.Enqueue(1, models.DigestTypeSummary))
	assert.True(t, dispatcher.Enqueue(2, models.DigestTypeSummary))
	assert.True(t, dispatcher.Enqueue(3, models.DigestTypeSummary))

	close(runner.block)
	dispatcher.Stop()

	assert.Equal(t, 1, runner.countFor(1))
	assert.Equal(t, 1, runner.countFor(2))
	assert.Equal(t, 1, runner.countFor(3))
}

func TestDispatcherBoundsConcurrency(t *testing.T) {
	runner := newSlowRunner()
	dispatcher := NewDispatcher(runner, 2, 0)

	for id := uint(1); id <= 6; id++ {
		require.True(t, dispatcher.Enqueue(id, models.DigestTypeSummary))
	}

	// Give workers time to saturate the semaphore
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&runner.running) == 2
	}, time.Second, 5*time.Millisecond)

	close(runner.block)
	dispatcher.Stop()

	assert.LessOrEqual(t, atomic.LoadInt32(&runner.maxRunning), int32(2))
}

func TestEnqueueAfterStopRefused(t *testing.T) {
	runner := newSlowRunner()
	close(runner.block)
	dispatcher := NewDispatcher(runner, 2, 0)

	dispatcher.Stop()
	assert.False(t, dispatcher.Enqueue(1, models.DigestTypeSummary))
}

func TestStopDrainsConcurrentEnqueues(t *testing.T) {
	runner := newSlowRunner()
	close(runner.block)
	dispatcher := NewDispatcher(runner, 4, 0)

	// Hammer Enqueue from many goroutines while Stop runs, so any gap
	// between recording a run and counting it in the drain would show up
	// as a run completing after Stop returned.
	var accepted int32
	var wg sync.WaitGroup
	for id := uint(1); id <= 50; id++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			if dispatcher.Enqueue(id, models.DigestTypeSummary) {
				atomic.AddInt32(&accepted, 1)
			}
		}(id)
	}

	dispatcher.Stop()
	wg.Wait()

	var processed int32
	for id := uint(1); id <= 50; id++ {
		processed += int32(runner.countFor(id))
	}
	assert.Equal(t, accepted, processed, "every accepted run must finish before Stop returns")
	assert.Zero(t, dispatcher.InFlight())
}

func TestEnqueueAgainAfterRunFinishes(t *testing.T) {
	runner := newSlowRunner()
	close(runner.block)
	dispatcher := NewDispatcher(runner, 2, 0)

	assert.True(t, dispatcher.Enqueue(1, models.DigestTypeSummary))
	require.Eventually(t, func() bool { return dispatcher.InFlight() == 0 }, time.Second, 5*time.Millisecond)

	assert.True(t, dispatcher.Enqueue(1, models.DigestTypeSummary))
	dispatcher.Stop()

	assert.Equal(t, 2, runner.countFor(1))
}
