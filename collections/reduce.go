package collections

import (
	"iter"

	"github.com/adobaai/underbar"
)

// Reduce folds items into a single value by calling fn(acc, it, i) for each item,
// where acc is the value returned by the previous call.
//
// If seed is present the first call receives it as acc.
// Otherwise the first item becomes acc and fn is called from the second item on.
// With no items and no seed the result is absent; Reduce never panics on empty input.
//
//	sum := collections.Reduce([]int{1, 2, 3}, func(acc, n, _ int) int {
//		return acc + n
//	}, underbar.Some(0)) // Some(6)
func Reduce[T any](items []T, fn func(acc, it T, i int) T, seed underbar.Option[T]) underbar.Option[T] {
	return ReduceSeq(seqOf(items), fn, seed)
}

// ReduceMap is like [Reduce] but over the entries of a map.
func ReduceMap[K comparable, V any](
	m map[K]V, fn func(acc, v V, k K) V, seed underbar.Option[V],
) underbar.Option[V] {
	return ReduceSeq(seqOfMap(m), fn, seed)
}

// ReduceSeq is like [Reduce] but over any key-value sequence.
func ReduceSeq[K, V any](seq iter.Seq2[K, V], fn func(acc, v V, k K) V, seed underbar.Option[V]) underbar.Option[V] {
	acc, ok := seed.Get()
	EachSeq(seq, func(v V, k K) {
		if !ok {
			acc, ok = v, true
			return
		}
		acc = fn(acc, v, k)
	})
	if !ok {
		return underbar.None[V]()
	}
	return underbar.Some(acc)
}

// Fold is a seeded [Reduce] whose accumulator may have a different type than the items.
// It always visits every item.
func Fold[T, A any](items []T, seed A, fn func(acc A, it T, i int) A) A {
	return FoldSeq(seqOf(items), seed, fn)
}

// FoldMap is like [Fold] but over the entries of a map.
func FoldMap[K comparable, V, A any](m map[K]V, seed A, fn func(acc A, v V, k K) A) A {
	return FoldSeq(seqOfMap(m), seed, fn)
}

// FoldSeq is like [Fold] but over any key-value sequence.
func FoldSeq[K, V, A any](seq iter.Seq2[K, V], seed A, fn func(acc A, v V, k K) A) A {
	acc := seed
	EachSeq(seq, func(v V, k K) {
		acc = fn(acc, v, k)
	})
	return acc
}
