package collections

import (
	"iter"
	"maps"
	"slices"
)

// Each calls fn for every item in ascending index order.
func Each[T any](items []T, fn func(it T, i int)) {
	for i, it := range items {
		fn(it, i)
	}
}

// EachMap calls fn for every entry of m.
// The order is Go's map iteration order, which is unspecified.
func EachMap[K comparable, V any](m map[K]V, fn func(v V, k K)) {
	for k, v := range m {
		fn(v, k)
	}
}

// EachSeq calls fn for every pair produced by seq.
// A nil seq produces nothing.
func EachSeq[K, V any](seq iter.Seq2[K, V], fn func(v V, k K)) {
	if seq == nil {
		return
	}
	for k, v := range seq {
		fn(v, k)
	}
}

// seqOf adapts a slice to the sequence form used by the fold functions.
func seqOf[T any](items []T) iter.Seq2[int, T] {
	return slices.All(items)
}

func seqOfMap[K comparable, V any](m map[K]V) iter.Seq2[K, V] {
	return maps.All(m)
}
