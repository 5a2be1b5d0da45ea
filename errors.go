package generator

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrReentrant is returned by Resume when the computation is already
	// running, that is, when the body of the computation resumes itself.
	ErrReentrant = errors.New("generator: resume of a running computation")

	// ErrNilBody is returned by New when the computation body is nil.
	ErrNilBody = errors.New("generator: nil computation body")
)

// PanicError is the failure signaled when a computation body panics instead
// of suspending or returning. It is delivered exactly once, by the Resume
// call that observed the panic; the computation is Completed afterwards and
// later resumptions report plain completion.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{value: v, stack: debug.Stack()}
}

// Value returns the value the body panicked with.
func (e *PanicError) Value() any { return e.value }

// Stack returns the formatted stack trace of the body's goroutine, captured
// at the point of the panic.
func (e *PanicError) Stack() []byte { return e.stack }

func (e *PanicError) Error() string {
	return fmt.Sprintf("generator: computation panicked: %v", e.value)
}

// Unwrap returns the panic value when it is an error, so that errors.Is and
// errors.As see through the capture.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
