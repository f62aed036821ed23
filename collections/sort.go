package collections

import (
	"cmp"
	"fmt"
	"slices"
)

// ranked is an item tagged with its sort rank and original position.
type ranked[T, R any] struct {
	value   T
	index   int
	rank    R
	defined bool
}

// SortBy returns a copy of items sorted by the rank computed for each item, ascending.
// The sort is stable: items with equal ranks keep their relative order.
//
//	byAge := collections.SortBy(people, func(p Person, _ int) int { return p.Age })
func SortBy[T any, R cmp.Ordered](items []T, rank func(it T, i int) R) []T {
	return SortByFunc(items, func(it T, i int) (R, bool) {
		return rank(it, i), true
	}, cmp.Compare[R])
}

// SortByFunc is the general form of [SortBy].
//
// rank reports false for an item without a rank; such items are placed after every
// ranked item whatever the direction of compare, in their original order.
// Ties under compare are broken by the original index.
func SortByFunc[T, R any](
	items []T,
	rank func(it T, i int) (R, bool),
	compare func(a, b R) int,
) []T {
	rs := make([]ranked[T, R], len(items))
	Each(items, func(it T, i int) {
		r, ok := rank(it, i)
		rs[i] = ranked[T, R]{value: it, index: i, rank: r, defined: ok}
	})

	slices.SortFunc(rs, func(a, b ranked[T, R]) int {
		switch {
		case a.defined && b.defined:
			if c := compare(a.rank, b.rank); c != 0 {
				return c
			}
		case a.defined:
			return -1
		case b.defined:
			return 1
		}
		return cmp.Compare(a.index, b.index)
	})
	return Map(rs, func(it ranked[T, R]) T { return it.value })
}

// SortByField returns a copy of items sorted by the property called name,
// which is a struct field or a string map key; see [Pluck].
// Items without a value for name are placed last.
//
// The property values must all be numbers or all be strings,
// otherwise [ErrUnorderedRank] is returned.
func SortByField[T any](items []T, name string) ([]T, error) {
	ranks := make([]rank, len(items))
	found := make([]bool, len(items))
	var first *rank
	for i, it := range items {
		v, ok, err := property(it, name)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if !ok {
			continue
		}
		r, err := newRank(v)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if first == nil {
			first = &r
		} else if first.numeric() != r.numeric() {
			return nil, fmt.Errorf("%w: item %d mixes numbers and strings", ErrUnorderedRank, i)
		}
		ranks[i], found[i] = r, true
	}

	return SortByFunc(items, func(_ T, i int) (rank, bool) {
		return ranks[i], found[i]
	}, compareRank), nil
}
