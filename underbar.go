// Package underbar provides some basic types shared by the collection and function helpers.
package underbar

import "fmt"

// Slice is a generic slice type that allows operations on slices via pointers.
//
// A *Slice is an owned buffer: helpers that accept one append to it in place,
// so every holder of the pointer observes the result.
type Slice[T any] []T

// NewSlice returns a buffer holding a copy of elems.
func NewSlice[T any](elems ...T) *Slice[T] {
	s := make(Slice[T], len(elems))
	copy(s, elems)
	return &s
}

func (a *Slice[T]) Append(elems ...T) {
	*a = append(*a, elems...)
}

func (a *Slice[T]) Get() []T {
	return *a
}

func (a *Slice[T]) Len() int {
	return len(*a)
}

// Option is a value that is either present or absent.
//
// The zero Option is absent.
type Option[T any] struct {
	v  T
	ok bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

func (o Option[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value if present, otherwise def.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// MustGet returns the value and panics if it is absent.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("underbar: value is absent")
	}
	return o.v
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}
