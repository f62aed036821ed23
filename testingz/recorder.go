package testingz

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Recorder records the arguments of every call made to a function under test.
// It is safe for concurrent use, so it can observe calls made from timer goroutines.
type Recorder[A any] struct {
	mu   sync.Mutex
	args []A
}

// Record stores a call with argument a.
func (r *Recorder[A]) Record(a A) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.args = append(r.args, a)
}

// Func wraps fn so that every call is recorded before fn runs.
func Func[A, R any](r *Recorder[A], fn func(A) R) func(A) R {
	return func(a A) R {
		r.Record(a)
		return fn(a)
	}
}

// Count returns the number of recorded calls.
func (r *Recorder[A]) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.args)
}

// Args returns a copy of the recorded arguments in call order.
func (r *Recorder[A]) Args() []A {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]A(nil), r.args...)
}

// AssertCount checks that exactly n calls were recorded.
func (r *Recorder[A]) AssertCount(t *testing.T, n int, msgf ...any) bool {
	t.Helper()
	return assert.Equal(t, n, r.Count(), msgf...)
}
