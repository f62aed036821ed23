package collections

import (
	"fmt"

	"go.uber.org/multierr"
)

// Invoke calls fn on every item and collects the results.
//
// Unlike the other functions in this package it does not stop at the first failure:
// every item is visited and the errors are combined, each prefixed with its index.
// Use [multierr.Errors] to split the result.
func Invoke[T, R any](items []T, fn func(it T) (R, error)) (res []R, err error) {
	res = make([]R, len(items))
	Each(items, func(it T, i int) {
		r, ierr := fn(it)
		if ierr != nil {
			err = multierr.Append(err, fmt.Errorf("item %d: %w", i, ierr))
			return
		}
		res[i] = r
	})
	return
}
