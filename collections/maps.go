package collections

import "maps"

// Extend copies every entry of srcs into dst, later sources overwriting earlier ones,
// and returns dst. Nil sources are skipped.
// A nil dst is replaced with a new map.
func Extend[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	return merge(true, dst, srcs)
}

// Defaults is like [Extend] but never overwrites a key dst already has.
func Defaults[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	return merge(false, dst, srcs)
}

func merge[K comparable, V any](overwrite bool, dst map[K]V, srcs []map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		if overwrite {
			maps.Copy(dst, src)
			continue
		}
		EachMap(src, func(v V, k K) {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		})
	}
	return dst
}
