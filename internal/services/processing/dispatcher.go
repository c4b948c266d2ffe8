package processing

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vidigest/digest-api/internal/models"
)

// Runner is the slice of the orchestrator the dispatcher drives
type Runner interface {
	Process(ctx context.Context, videoID uint, digestType models.DigestType) error
}

// Dispatcher fans pipeline runs out to a bounded set of workers. Each video
// is single-flight: enqueueing a video that is already running is a no-op,
// so concurrent submissions cannot race on the same row.
type Dispatcher struct {
	runner        Runner
	maxConcurrent int
	runTimeout    time.Duration

	mu       sync.Mutex
	inFlight map[uint]struct{}
	stopped  bool

	sem chan struct{}
	wg  sync.WaitGroup
}

// NewDispatcher creates a dispatcher with at most maxConcurrent parallel
// runs. runTimeout bounds a single run; zero means no timeout.
func NewDispatcher(runner Runner, maxConcurrent int, runTimeout time.Duration) *Dispatcher {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &Dispatcher{
		runner:        runner,
		maxConcurrent: maxConcurrent,
		runTimeout:    runTimeout,
		inFlight:      make(map[uint]struct{}),
		sem:           make(chan struct{}, maxConcurrent),
	}
}

// Enqueue schedules a pipeline run for the video and returns immediately.
// It reports whether a new run was started; false means the video already
// has a run in flight or the dispatcher is stopping.
func (d *Dispatcher) Enqueue(videoID uint, digestType models.DigestType) bool {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		log.Printf("[WARN] Dispatcher stopped, dropping run for video %d", videoID)
		return false
	}
	if _, running := d.inFlight[videoID]; running {
		d.mu.Unlock()
		log.Printf("[DEBUG] Video %d already in flight, skipping duplicate run", videoID)
		return false
	}
	d.inFlight[videoID] = struct{}{}
	// Add while holding the lock so Stop cannot observe a zero counter
	// between the in-flight record and the goroutine start.
	d.wg.Add(1)
	d.mu.Unlock()

	runID := uuid.NewString()
	go d.run(runID, videoID, digestType)

	return true
}

// InFlight reports how many runs are currently scheduled or executing
func (d *Dispatcher) InFlight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inFlight)
}

// Stop refuses new runs and waits for in-flight runs to drain
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	d.wg.Wait()
	log.Printf("[DEBUG] Dispatcher drained")
}

func (d *Dispatcher) run(runID string, videoID uint, digestType models.DigestType) {
	defer d.wg.Done()
	defer func() {
		d.mu.Lock()
		delete(d.inFlight, videoID)
		d.mu.Unlock()
	}()

	d.sem <- struct{}{}
	defer func() { <-d.sem }()

	ctx := context.Background()
	if d.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.runTimeout)
		defer cancel()
	}

	log.Printf("[DEBUG] Run %s started for video %d", runID, videoID)
	if err := d.runner.Process(ctx, videoID, digestType); err != nil {
		log.Printf("[ERROR] Run %s for video %d: %v", runID, videoID, err)
		return
	}
	log.Printf("[DEBUG] Run %s finished for video %d", runID, videoID)
}
