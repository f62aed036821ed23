// Package testingz provides helpers for writing concise tests.
package testingz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adobaai/underbar"
)

// ErrAbsent is the error held by a [Result] made from an absent [underbar.Option].
var ErrAbsent = errors.New("testingz: value is absent")

// Result provides some useful methods to write concise code in tests.
type Result[T any] struct {
	t   *testing.T
	v   T
	err error
}

func R[T any](v T, err error) *Result[T] {
	return &Result[T]{
		v:   v,
		err: err,
	}
}

// O converts an Option to a Result; an absent Option fails with [ErrAbsent].
func O[T any](o underbar.Option[T]) *Result[T] {
	v, ok := o.Get()
	if !ok {
		return R(v, ErrAbsent)
	}
	return R(v, nil)
}

func (r *Result[T]) V() T {
	return r.v
}

func (r *Result[T]) NoError(t *testing.T, msgf ...any) *Result[T] {
	t.Helper()
	require.NoError(t, r.err, msgf...)
	r.t = t
	return r
}

// Present is [Result.NoError] for results made with [O].
func (r *Result[T]) Present(t *testing.T, msgf ...any) *Result[T] {
	t.Helper()
	return r.NoError(t, msgf...)
}

// Absent checks the result was made with [O] from an absent Option.
func (r *Result[T]) Absent(t *testing.T, msgf ...any) *Result[T] {
	t.Helper()
	return r.ErrorIs(t, ErrAbsent, msgf...)
}

func (r *Result[T]) ErrorIs(t *testing.T, target error, msgf ...any) *Result[T] {
	t.Helper()
	require.ErrorIs(t, r.err, target, msgf...)
	r.t = t
	return r
}

func (r *Result[T]) ErrorContains(t *testing.T, s string, msgf ...any) *Result[T] {
	t.Helper()
	require.ErrorContains(t, r.err, s, msgf...)
	r.t = t
	return r
}

func (r *Result[T]) Equal(v T, msgf ...any) *Result[T] {
	r.t.Helper()
	require.Equal(r.t, v, r.v, msgf...)
	return r
}

func (r *Result[T]) Do(f func(t *testing.T, it T)) *Result[T] {
	f(r.t, r.v)
	return r
}
