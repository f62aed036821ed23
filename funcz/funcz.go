// Package funcz provides decorators that change when and how often a function runs.
//
// The decorators returned by [Once] and [Memoize] keep their state in plain variables
// and are not safe for concurrent use; callers sharing one across goroutines must
// serialize the calls themselves. [Throttler] locks internally because its deferred
// call runs on a timer goroutine.
//
// None of the decorators fails by itself. Whatever the wrapped function panics with
// reaches the caller of the call that runs it.
package funcz

// Decorator wraps a function into another one with the same signature.
type Decorator[A, R any] func(next func(A) R) func(A) R

// Chain composes decorators so that the first one is the outermost.
// The result wraps once per call of the returned decorator,
// so stateful decorators keep a single state.
func Chain[A, R any](ds ...Decorator[A, R]) Decorator[A, R] {
	return func(next func(A) R) func(A) R {
		for i := len(ds) - 1; i >= 0; i-- {
			next = ds[i](next)
		}
		return next
	}
}

// Once returns a function that runs fn on its first call only.
// Every later call returns the first result, whatever its argument.
//
// If fn panics, the call is not counted and the next call runs fn again.
func Once[A, R any](fn func(A) R) func(A) R {
	var (
		called bool
		result R
	)
	return func(a A) R {
		if !called {
			result = fn(a)
			called = true
		}
		return result
	}
}
