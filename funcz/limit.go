package funcz

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Limit returns a function that runs fn at most once per every on average,
// allowing bursts of up to burst calls.
//
// Unlike [Throttle], a call over the limit does not return early:
// it blocks until it may run or ctx is done.
func Limit[A, R any](fn func(A) R, every time.Duration, burst int) func(context.Context, A) (R, error) {
	lim := rate.NewLimiter(rate.Every(every), burst)
	return func(ctx context.Context, a A) (res R, err error) {
		if err = lim.Wait(ctx); err != nil {
			return res, fmt.Errorf("funcz: wait for rate limit: %w", err)
		}
		return fn(a), nil
	}
}

// Delay calls fn(arg) after wait and returns the timer, which can cancel the call.
func Delay[A any](fn func(A), wait time.Duration, arg A, opts ...Option) Timer {
	o := newOptions(opts)
	return o.clock.AfterFunc(wait, func() { fn(arg) })
}
