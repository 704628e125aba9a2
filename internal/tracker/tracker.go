// Package tracker drives the live elapsed-time display for an active
// session. It ticks on a fixed interval until stopped; Stop is idempotent
// and safe to call from any goroutine.
package tracker

import (
	"sync"
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

var nowFunc = time.Now

// Ticker emits the elapsed time of an active session once per interval.
type Ticker struct {
	mu       sync.RWMutex
	session  *models.HabitSession
	interval time.Duration
	running  bool
	stopChan chan struct{}
}

func New() *Ticker {
	return &Ticker{
		interval: time.Second,
		stopChan: make(chan struct{}),
	}
}

// NewWithInterval is used by tests that need a fast tick.
func NewWithInterval(interval time.Duration) *Ticker {
	return &Ticker{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins ticking for the given session, invoking onTick with the
// elapsed time since the session started. Starting while already running is
// a no-op.
func (t *Ticker) Start(session models.HabitSession, onTick func(elapsed time.Duration)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}

	t.session = &session
	t.running = true
	t.stopChan = make(chan struct{})
	stop := t.stopChan

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.mu.RLock()
				running := t.running
				start := t.session.StartTime
				t.mu.RUnlock()
				if !running {
					return
				}
				onTick(nowFunc().Sub(start))
			}
		}
	}()
}

// Stop cancels the ticker. Calling Stop on an idle ticker is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	t.running = false
	close(t.stopChan)
}

func (t *Ticker) Running() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.running
}

// Elapsed returns the time since the tracked session started, or zero when
// no session is being tracked.
func (t *Ticker) Elapsed() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.session == nil {
		return 0
	}
	return nowFunc().Sub(t.session.StartTime)
}

// Session returns a copy of the tracked session, if any.
func (t *Ticker) Session() (models.HabitSession, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.session == nil {
		return models.HabitSession{}, false
	}
	return *t.session, true
}
