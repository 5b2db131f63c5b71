package sum

import (
	"hash/maphash"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	seed      = maphash.MakeSeed()
	exportAll = cmp.Exporter(func(reflect.Type) bool { return true })
)

// Equal compares two payloads with the payload's own notion of equality:
// an Equal(T) bool method when T has one, == for comparable values and a
// structural comparison for everything else (slices, maps, structs holding
// them). NaN equals NaN so that every payload equals itself.
func Equal[T any](a, b T) bool {
	if e, ok := any(a).(equaler[T]); ok {
		return e.Equal(b)
	}

	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == nil && vb == nil
	}

	ta, tb := reflect.TypeOf(va), reflect.TypeOf(vb)
	if ta != tb {
		return false
	}
	if rv := reflect.ValueOf(va); rv.Comparable() {
		return va == vb || equalNaN(rv, reflect.ValueOf(vb))
	}

	return cmp.Equal(va, vb, exportAll, cmpopts.EquateNaNs())
}

// Hash returns a hash consistent with Equal. Payloads implementing Hasher
// are asked directly; comparable payloads are hashed by value. Payloads
// compared by an Equal method, structurally or holding a NaN only get a
// per-type hash, since their content cannot be hashed in agreement with
// their equality.
func Hash[T any](v T) uint64 {
	x := any(v)
	if x == nil {
		return 0
	}
	if h, ok := x.(Hasher); ok {
		return h.Hash()
	}
	if _, ok := x.(equaler[T]); ok {
		return typeHash[T]()
	}
	if rv := reflect.ValueOf(x); rv.Comparable() && !hasNaN(rv) {
		return maphash.Comparable(seed, x)
	}
	return typeHash[T]()
}

func typeHash[T any]() uint64 {
	return xxhash.Sum64String(TypeName[T]())
}

// equalNaN is == on two comparable values of the same type, except that
// NaN floats are equal to each other. Pointers and channels keep identity.
func equalNaN(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Float32, reflect.Float64:
		return equalFloat(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		x, y := a.Complex(), b.Complex()
		return equalFloat(real(x), real(y)) && equalFloat(imag(x), imag(y))
	case reflect.Array:
		for i := range a.Len() {
			if !equalNaN(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range a.NumField() {
			if !equalNaN(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		return ea.Type() == eb.Type() && equalNaN(ea, eb)
	default:
		return a.Equal(b)
	}
}

func equalFloat(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

func hasNaN(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return math.IsNaN(real(c)) || math.IsNaN(imag(c))
	case reflect.Array:
		for i := range v.Len() {
			if hasNaN(v.Index(i)) {
				return true
			}
		}
		return false
	case reflect.Struct:
		for i := range v.NumField() {
			if hasNaN(v.Field(i)) {
				return true
			}
		}
		return false
	case reflect.Interface:
		return !v.IsNil() && hasNaN(v.Elem())
	default:
		return false
	}
}
