// Package notify serializes achievement-unlock events for one-at-a-time
// display. An evaluation pass may unlock several achievements at once;
// the queue shows them sequentially in the order they were pushed.
package notify

import (
	"sync"
	"time"

	"github.com/username/moneymetrics/src/logger"
	"github.com/username/moneymetrics/src/models"
)

// Queue is a two-state machine: Idle, or Showing one achievement. While
// Showing, new pushes append behind the current notification instead of
// interrupting it. Dismissal (explicit or by timeout) reports the shown
// id, pops the head and immediately shows the next pending entry.
type Queue struct {
	mu      sync.Mutex
	current *models.Achievement
	pending []models.Achievement
	timeout time.Duration
	timer   *time.Timer
	gen     uint64 // bumped whenever the displayed notification changes
	onShown func(id string)
}

// NewQueue builds a queue with the given auto-dismiss timeout; a zero
// timeout disables self-dismissal. onShown is invoked exactly once per
// displayed achievement, at dismissal time, and is where the caller
// records the id in the persisted shown-set.
func NewQueue(timeout time.Duration, onShown func(id string)) *Queue {
	if onShown == nil {
		onShown = func(string) {}
	}
	return &Queue{timeout: timeout, onShown: onShown}
}

// Push appends unlock events and starts showing if the queue was idle.
func (q *Queue) Push(achievements ...models.Achievement) {
	if len(achievements) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, achievements...)
	if q.current == nil {
		q.advanceLocked()
	}
}

// Current returns the achievement being shown, if any.
func (q *Queue) Current() (models.Achievement, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.current == nil {
		return models.Achievement{}, false
	}
	return *q.current, true
}

// Pending returns how many notifications wait behind the current one.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Dismiss closes the current notification, records it as shown and
// shows the next pending one. Dismissing an idle queue is a no-op.
func (q *Queue) Dismiss() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dismissLocked()
}

// Clear drops the current notification and everything pending without
// recording anything as shown. Used on full reset.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stopTimerLocked()
	q.current = nil
	q.pending = nil
	q.gen++
}

func (q *Queue) dismissLocked() {
	if q.current == nil {
		return
	}
	q.stopTimerLocked()
	logger.L.Debug("Achievement notification dismissed", "id", q.current.ID)
	q.onShown(q.current.ID)
	q.current = nil
	q.gen++
	q.advanceLocked()
}

func (q *Queue) advanceLocked() {
	if len(q.pending) == 0 {
		return
	}
	head := q.pending[0]
	q.pending = q.pending[1:]
	q.current = &head
	q.gen++
	if q.timeout > 0 {
		gen := q.gen
		q.timer = time.AfterFunc(q.timeout, func() { q.timeoutDismiss(gen) })
	}
}

// timeoutDismiss runs when the auto-dismiss timer fires. Stop cannot
// cancel a timer whose callback is already blocked on the mutex, so the
// callback carries the generation it was armed for and backs off if the
// display changed in the meantime.
func (q *Queue) timeoutDismiss(gen uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.gen != gen {
		return
	}
	q.dismissLocked()
}

func (q *Queue) stopTimerLocked() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}
