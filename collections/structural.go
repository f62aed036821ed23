package collections

import (
	"reflect"

	"github.com/adobaai/underbar"
)

// Flatten appends the leaves of nested to seed depth-first, left to right, and returns seed.
//
// Any slice or array element, and any *underbar.Slice[any] element, is flattened
// recursively into the same buffer; every other element is appended as is.
// seed is written in place, so holders of it see the result.
// A nil seed starts a new buffer.
//
//	collections.Flatten([]any{[]any{1, []int{2}}, []any{}, 3}, nil) // [1 2 3]
func Flatten(nested []any, seed *underbar.Slice[any]) *underbar.Slice[any] {
	acc := seed
	if acc == nil {
		acc = new(underbar.Slice[any])
	}
	flattenInto(acc, reflect.ValueOf(nested))
	return acc
}

func flattenInto(acc *underbar.Slice[any], rv reflect.Value) {
	for i := range rv.Len() {
		v := rv.Index(i).Interface()
		if s, ok := v.(*underbar.Slice[any]); ok && s != nil {
			flattenInto(acc, reflect.ValueOf(s.Get()))
			continue
		}
		if ev := reflect.ValueOf(v); ev.Kind() == reflect.Slice || ev.Kind() == reflect.Array {
			flattenInto(acc, ev)
			continue
		}
		acc.Append(v)
	}
}

// Zip groups the i-th items of every slice into the i-th row.
// There are as many rows as items in the longest slice;
// a slice too short to fill a cell leaves it absent.
//
//	collections.Zip([]any{"a", "b", "c"}, []any{1, 2})
//	// [[Some(a) Some(1)] [Some(b) Some(2)] [Some(c) None]]
func Zip[T any](seqs ...[]T) [][]underbar.Option[T] {
	height := Fold(seqs, 0, func(acc int, it []T, _ int) int {
		return max(acc, len(it))
	})
	rows := make([][]underbar.Option[T], height)
	for i := range rows {
		row := make([]underbar.Option[T], len(seqs))
		for j, seq := range seqs {
			if i < len(seq) {
				row[j] = underbar.Some(seq[i])
			}
		}
		rows[i] = row
	}
	return rows
}

// Intersection returns the distinct items of the first slice that are present in
// every other slice, in the order of the first slice.
func Intersection[T comparable](seqs ...[]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}
	first, rest := Uniq(seqs[0]), seqs[1:]
	if len(rest) == 0 {
		return first
	}
	return Filter(first, func(it T) bool {
		return Every(rest, func(other []T) bool { return Contains(other, it) })
	})
}

// Difference returns the items of the first slice that are present in none of the
// other slices. Order and duplicates of the first slice are kept.
// With a single slice, that slice itself is returned.
func Difference[T comparable](seqs ...[]T) []T {
	if len(seqs) == 0 {
		return []T{}
	}
	first, rest := seqs[0], seqs[1:]
	if len(rest) == 0 {
		return first
	}
	return Filter(first, func(it T) bool {
		return Every(rest, func(other []T) bool { return !Contains(other, it) })
	})
}
