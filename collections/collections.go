// Package collection provides some useful functions for working with data structures
// that contain multiple elements.
//
// A container is either a slice or a map. A nil slice or map is treated as a container
// with no elements; no function here reports it as an error.
// Functions return new containers and never modify the ones passed in,
// except for [Extend], [Defaults] and [Flatten] which document their in-place writes.
//
// Many languages have their own collection library:
//   - C#: https://learn.microsoft.com/en-us/dotnet/csharp/programming-guide/concepts/collections
//   - Rust: https://doc.rust-lang.org/std/collections/index.html
//   - Swift: https://github.com/apple/swift-collections
//   - Kotlin: https://kotlinlang.org/api/latest/jvm/stdlib/kotlin.collections/
//   - Python3: https://docs.python.org/3/library/collections.html
//   - JavaScript: https://underscorejs.org
package collections

import (
	"slices"

	"github.com/samber/lo"
)

// Identity returns v.
// It is the default iterator where a function needs one and the caller did not pass it.
func Identity[T any](v T) T {
	return v
}

// First returns the first item, or false if items is empty.
func First[T any](items []T) (T, bool) {
	return lo.First(items)
}

// FirstN returns a copy of the first n items.
func FirstN[T any](items []T, n int) []T {
	return slices.Clone(lo.Slice(items, 0, max(n, 0)))
}

// Last returns the last item, or false if items is empty.
func Last[T any](items []T) (T, bool) {
	return lo.Last(items)
}

// LastN returns a copy of the last n items.
func LastN[T any](items []T, n int) []T {
	start := max(len(items)-n, 0)
	return slices.Clone(items[start:])
}

// Filter iterates over items, returning an array of all items predicate returns truthy for.
func Filter[V any](items []V, predicate func(it V) bool) []V {
	result := make([]V, 0, len(items))
	Each(items, func(it V, _ int) {
		if predicate(it) {
			result = append(result, it)
		}
	})
	return result
}

// Reject is the opposite of [Filter].
func Reject[V any](items []V, predicate func(it V) bool) []V {
	return Filter(items, func(it V) bool { return !predicate(it) })
}

// Map returns a slice containing the results of applying the given transform function
// to each item in the original slice.
func Map[T, R any](items []T, transform func(it T) R) []R {
	res := make([]R, len(items))
	Each(items, func(it T, i int) {
		res[i] = transform(it)
	})
	return res
}

// Uniq returns a duplicate-free copy of items, keeping the first occurrence of each.
func Uniq[T comparable](items []T) []T {
	if items == nil {
		return []T{}
	}
	return lo.Uniq(items)
}

// IndexOf returns the index of the first item equal to target, or -1.
func IndexOf[T comparable](items []T, target T) int {
	return lo.IndexOf(items, target)
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](items []T) []T {
	return lo.Shuffle(slices.Clone(items))
}
