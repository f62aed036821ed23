package funcz

import (
	"log/slog"
	"sync"
	"time"
)

// Throttler runs a function at most once per interval.
//
// A call made at least interval after the last run runs the function at once.
// A call made earlier schedules a single deferred run at the end of the interval,
// which uses the argument of the latest such call.
// Every call returns the result of the latest run, so a throttled call gets the
// previous result, not the one of the deferred run it scheduled.
//
// The function runs with the Throttler locked and must not call it back.
type Throttler[A, R any] struct {
	fn       func(A) R
	interval time.Duration
	clock    Clock
	logger   *slog.Logger

	mu      sync.Mutex
	called  bool
	last    time.Time // Start of the latest run
	timer   Timer     // Pending deferred run
	gen     uint64    // Bumped to invalidate a timer that cannot be stopped anymore
	pending A
	result  R
}

// Throttle returns a [Throttler] for fn.
//
// Example:
//
//	save := funcz.Throttle(func(doc *Doc) error { return store.Save(doc) }, time.Second)
//	defer save.Stop()
//	for doc := range edits {
//		save.Call(doc)
//	}
func Throttle[A, R any](fn func(A) R, interval time.Duration, opts ...Option) *Throttler[A, R] {
	o := newOptions(opts)
	return &Throttler[A, R]{
		fn:       fn,
		interval: interval,
		clock:    o.clock,
		logger:   o.logger,
	}
}

// Call runs or schedules fn and returns the result of its latest run.
func (t *Throttler[A, R]) Call(a A) R {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	wait := t.last.Add(t.interval).Sub(now)
	if !t.called || wait <= 0 {
		t.cancel()
		t.called = true
		t.last = now
		t.result = t.fn(a)
		return t.result
	}

	t.pending = a
	if t.timer == nil {
		gen := t.gen
		t.timer = t.clock.AfterFunc(wait, func() { t.fire(gen) })
	}
	return t.result
}

// Func returns Call as a plain function.
func (t *Throttler[A, R]) Func() func(A) R {
	return t.Call
}

// Stop cancels the pending deferred run, if any.
// Later calls work as before.
func (t *Throttler[A, R]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancel()
}

func (t *Throttler[A, R]) cancel() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
	var zero A
	t.pending = zero
}

func (t *Throttler[A, R]) fire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return
	}

	a := t.pending
	t.cancel()
	t.called = true
	t.last = t.clock.Now()

	// No caller is waiting for a deferred run.
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("throttled function panicked", "panic", r)
		}
	}()
	t.logger.Debug("running deferred call", "interval", t.interval)
	t.result = t.fn(a)
}
