package collections

import (
	"cmp"
	"fmt"
	"reflect"
)

// property reads the property called name from v: a struct field, or an entry of
// a string-keyed map. Pointers and interfaces are followed.
// found is false when v holds no value for name, that is a nil v, a nil pointer
// on the way, or a missing map key.
func property(v any, name string) (res reflect.Value, found bool, err error) {
	rv, ok := deref(reflect.ValueOf(v))
	if !ok {
		return
	}

	switch rv.Kind() {
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			err = fmt.Errorf("%w: %s has no exported field %q", ErrInvalidSelector, rv.Type(), name)
			return
		}
		f, ferr := rv.FieldByIndexErr(sf.Index)
		if ferr != nil {
			// A nil embedded pointer holds no fields.
			return
		}
		res, found = deref(f)
		return
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			err = fmt.Errorf("%w: map key type %s is not a string", ErrInvalidSelector, kt)
			return
		}
		e := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !e.IsValid() {
			return
		}
		res, found = deref(e)
		return
	default:
		err = fmt.Errorf("%w: cannot read %q of %s", ErrInvalidSelector, name, rv.Type())
		return
	}
}

func deref(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

// Pluck returns the property called name of every item.
// Items without a value for name contribute nil.
//
//	ages, err := collections.Pluck(people, "Age")
func Pluck[T any](items []T, name string) ([]any, error) {
	res := make([]any, len(items))
	for i, it := range items {
		v, found, err := property(it, name)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if found {
			res[i] = v.Interface()
		}
	}
	return res, nil
}

type rankClass int8

const (
	rankInt rankClass = iota + 1
	rankUint
	rankFloat
	rankString
)

// rank is a property value usable as a sort key.
type rank struct {
	class rankClass
	i     int64
	u     uint64
	f     float64
	s     string
}

func newRank(rv reflect.Value) (r rank, err error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		r = rank{class: rankInt, i: rv.Int(), f: float64(rv.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		r = rank{class: rankUint, u: rv.Uint(), f: float64(rv.Uint())}
	case reflect.Float32, reflect.Float64:
		r = rank{class: rankFloat, f: rv.Float()}
	case reflect.String:
		r = rank{class: rankString, s: rv.String()}
	default:
		err = fmt.Errorf("%w: %s", ErrUnorderedRank, rv.Type())
	}
	return
}

func (r rank) numeric() bool {
	return r.class != rankString
}

func compareRank(a, b rank) int {
	switch {
	case a.class == rankString:
		return cmp.Compare(a.s, b.s)
	case a.class == rankInt && b.class == rankInt:
		return cmp.Compare(a.i, b.i)
	case a.class == rankUint && b.class == rankUint:
		return cmp.Compare(a.u, b.u)
	default:
		return cmp.Compare(a.f, b.f)
	}
}
