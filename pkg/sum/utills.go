package sum

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

var ErrNilValue = errors.New("sum: nil payload")

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// MustNotBeNil panics with ErrNilValue when v is nil. Nil maps and slices are
// valid payloads and pass.
func MustNotBeNil[T any](v T, what string) {
	if IsNil(v) {
		panic(fmt.Errorf("%w: %s of type %s", ErrNilValue, what, TypeName[T]()))
	}
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	if e, ok := err.(interface{ WrappedErrors() []error }); ok {
		return e.WrappedErrors()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// TypeName renders the static type T the way it appears in String output.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
