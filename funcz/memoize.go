package funcz

import (
	"fmt"

	"github.com/maypok86/otter/v2"
)

// memoKey identifies an argument by its dynamic type and its printed form,
// so that 1 and "1" passed as any are different keys.
type memoKey struct {
	typ string
	str string
}

func keyOf(a any) memoKey {
	return memoKey{typ: fmt.Sprintf("%T", a), str: fmt.Sprint(a)}
}

// Memoize returns a function that caches the result of fn for every argument.
//
// fn must be a pure function of a primitive argument: arguments are told apart by
// their type and their string form. The cache is never evicted and lives as long as
// the returned function.
func Memoize[A, R any](fn func(A) R) func(A) R {
	memo := make(map[memoKey]R)
	return func(a A) R {
		k := keyOf(a)
		if r, ok := memo[k]; ok {
			return r
		}
		r := fn(a)
		memo[k] = r
		return r
	}
}

// MemoizeBounded is like [Memoize] but keeps at most about maxSize results,
// evicting the least valuable ones. Keys are compared with ==.
// Unlike Memoize it is safe for concurrent use, although two concurrent calls
// with the same new key may both run fn.
func MemoizeBounded[K comparable, R any](fn func(K) R, maxSize int) func(K) R {
	cache := otter.Must(&otter.Options[K, R]{
		MaximumSize: maxSize,
	})
	return func(k K) R {
		if r, ok := cache.GetIfPresent(k); ok {
			return r
		}
		r := fn(k)
		cache.Set(k, r)
		return r
	}
}
