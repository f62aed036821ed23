package collections

import (
	"iter"
	"reflect"
)

// Truthy reports whether v is not the zero value of its dynamic type.
// A nil interface, pointer, map, slice, func or chan is not truthy.
func Truthy[T any](v T) bool {
	rv := reflect.ValueOf(v)
	return rv.IsValid() && !rv.IsZero()
}

// Contains reports whether any item equals target.
func Contains[T comparable](items []T, target T) bool {
	return Some(items, func(it T) bool { return it == target })
}

// ContainsMap reports whether any value of m equals target.
func ContainsMap[K, V comparable](m map[K]V, target V) bool {
	return SomeMap(m, func(v V) bool { return v == target })
}

// Every reports whether pred holds for every item; it is true for no items.
// A nil pred tests the items themselves with [Truthy].
//
// Every stops at the first item pred rejects, so pred may see fewer items than
// a full scan would pass it. The result is the same.
func Every[T any](items []T, pred func(it T) bool) bool {
	return everySeq(seqOf(items), pred)
}

// EveryMap is like [Every] but over the values of a map.
func EveryMap[K comparable, V any](m map[K]V, pred func(v V) bool) bool {
	return everySeq(seqOfMap(m), pred)
}

// Some reports whether pred holds for at least one item; it is false for no items.
// A nil pred tests the items themselves with [Truthy].
func Some[T any](items []T, pred func(it T) bool) bool {
	pred = orTruthy(pred)
	return !Every(items, func(it T) bool { return !pred(it) })
}

// SomeMap is like [Some] but over the values of a map.
func SomeMap[K comparable, V any](m map[K]V, pred func(v V) bool) bool {
	pred = orTruthy(pred)
	return !EveryMap(m, func(v V) bool { return !pred(v) })
}

func everySeq[K, V any](seq iter.Seq2[K, V], pred func(V) bool) bool {
	pred = orTruthy(pred)
	for _, v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

func orTruthy[T any](pred func(T) bool) func(T) bool {
	if pred == nil {
		return Truthy[T]
	}
	return pred
}
