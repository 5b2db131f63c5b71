package sum

import (
	"fmt"

	"github.com/pkg/errors"
)

// PanicError is a recovered panic turned into an error. When the panic value
// is itself an error, errors.Is and errors.As see through to it.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// FromPanic wraps a value returned by recover. The stack of the recovering
// goroutine is attached and printed with %+v.
func FromPanic(p any) error {
	return errors.WithStack(&PanicError{Value: p})
}
