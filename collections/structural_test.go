package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adobaai/underbar"
)

func TestFlatten(t *testing.T) {
	t.Run("Nested", func(t *testing.T) {
		got := Flatten([]any{[]any{1, []any{2}}, []any{}, []any{3}}, nil)
		assert.Equal(t, []any{1, 2, 3}, got.Get())
	})

	t.Run("Deep", func(t *testing.T) {
		nested := []any{"a", []any{[]any{[]any{[]any{"b"}}}, "c"}, [2]string{"d", "e"}, []int{4, 5}}
		got := Flatten(nested, nil)
		assert.Equal(t, []any{"a", "b", "c", "d", "e", 4, 5}, got.Get())
	})

	t.Run("Seed", func(t *testing.T) {
		seed := underbar.NewSlice[any](0)
		got := Flatten([]any{[]any{1}}, seed)
		assert.Same(t, seed, got)
		assert.Equal(t, []any{0, 1}, seed.Get())
	})

	t.Run("SeedIsNotFlattened", func(t *testing.T) {
		seed := underbar.NewSlice[any]("x", []any{"y", "z"})
		Flatten([]any{[]any{[]any{"a", "b"}, "c"}, []any{[]any{}, "e"}}, seed)
		assert.Equal(t, []any{"x", []any{"y", "z"}, "a", "b", "c", "e"}, seed.Get())
	})

	t.Run("Buffer", func(t *testing.T) {
		inner := underbar.NewSlice[any](2, []any{3})
		got := Flatten([]any{1, inner, nil}, nil)
		assert.Equal(t, []any{1, 2, 3, nil}, got.Get())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, 0, Flatten(nil, nil).Len())
	})
}

func TestZip(t *testing.T) {
	some, none := underbar.Some[any], underbar.None[any]

	got := Zip([]any{"a", "b", "c"}, []any{1, 2})
	assert.Equal(t, [][]underbar.Option[any]{
		{some("a"), some(1)},
		{some("b"), some(2)},
		{some("c"), none()},
	}, got)

	t.Run("Ragged", func(t *testing.T) {
		got := Zip([]int{1}, nil, []int{7, 8})
		assert.Equal(t, [][]underbar.Option[int]{
			{underbar.Some(1), underbar.None[int](), underbar.Some(7)},
			{underbar.None[int](), underbar.None[int](), underbar.Some(8)},
		}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, [][]underbar.Option[int]{}, Zip[int]())
		assert.Equal(t, [][]underbar.Option[int]{}, Zip([]int{}, []int{}))
	})
}

func TestIntersection(t *testing.T) {
	assert.Equal(t, []int{2, 3}, Intersection([]int{1, 2, 2, 3}, []int{2, 3, 4}))
	assert.Equal(t, []int{3}, Intersection([]int{1, 2, 3}, []int{2, 3}, []int{3, 4}))
	assert.Equal(t, []string{"b", "a"}, Intersection([]string{"b", "a", "b"}, []string{"a", "b"}))
	assert.Equal(t, []int{1, 2}, Intersection([]int{1, 2, 1}))
	assert.Equal(t, []int{}, Intersection[int]())
	assert.Empty(t, Intersection([]int{1, 2}, nil))
}

func TestDifference(t *testing.T) {
	assert.Equal(t, []int{1}, Difference([]int{1, 2, 3}, []int{2}, []int{3}))
	assert.Equal(t, []int{1, 1, 4}, Difference([]int{1, 2, 1, 4}, []int{2, 3}))
	assert.Equal(t, []int{}, Difference[int]())
	assert.Equal(t, []int{1, 2}, Difference([]int{1, 2}, nil))

	t.Run("Single", func(t *testing.T) {
		only := []int{3, 3, 1}
		got := Difference(only)
		assert.Equal(t, only, got)
		got[0] = 9
		assert.Equal(t, 9, only[0])
	})
}
