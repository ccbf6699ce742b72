package services

import (
	"sync"
	"time"
)

// IdleTimer fires a callback after a stretch with no activity. Requests
// from the logged-in user are the activity events; the auth middleware
// calls Touch on each one. Stop must be called on logout so no pending
// callback leaks.
type IdleTimer struct {
	mu        sync.Mutex
	timer     *time.Timer
	duration  time.Duration
	onTimeout func()
}

func NewIdleTimer(duration time.Duration, onTimeout func()) *IdleTimer {
	return &IdleTimer{duration: duration, onTimeout: onTimeout}
}

// Start begins (or restarts) the countdown.
func (t *IdleTimer) Start() {
	t.Touch()
}

// Touch resets the countdown.
func (t *IdleTimer) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.duration, t.onTimeout)
}

// Stop cancels the countdown without firing the callback.
func (t *IdleTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
