package core

import (
	"errors"
	"fmt"

	"github.com/toejough/throws/internal/format"
)

// Thrown is what a callable threw: a recovered panic value, or the non-nil error a
// func() error returned. A nil *Thrown means nothing was thrown.
type Thrown struct {
	// Value is the raw panic value or returned error.
	Value any
	// Frames is the call stack at the panic, innermost first. It is empty for returned
	// errors.
	Frames []format.Frame
	// Returned is true when Value came from a return rather than a panic.
	Returned bool
}

// Err returns the thrown value as an error. A value that is not an error is wrapped in a
// *PanicError.
func (t *Thrown) Err() error {
	if t == nil {
		return nil
	}

	if err, ok := t.Value.(error); ok {
		return err
	}

	return &PanicError{Value: t.Value}
}

// Message returns the thrown error's message.
func (t *Thrown) Message() string {
	if t == nil {
		return ""
	}

	return t.Err().Error()
}

// Name returns the dynamic type of the raw thrown value, e.g. *errors.errorString.
func (t *Thrown) Name() string {
	if t == nil {
		return ""
	}

	return fmt.Sprintf("%T", t.Value)
}

// Report renders the throw as a "name: message" line.
func (t *Thrown) Report() string {
	if t == nil {
		return ""
	}

	return t.Name() + ": " + t.Message()
}

// PanicError wraps a panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// Capture runs fn once and returns what it panicked with, or nil if it returned.
// The panic is never re-raised.
func Capture(fn func()) (thrown *Thrown) {
	defer func() {
		if recovered := recover(); recovered != nil {
			thrown = &Thrown{Value: recovered, Frames: captureStack(0)}
		}
	}()

	fn()

	return nil
}

// CaptureReturned runs fn once. A panic is captured as with Capture; otherwise a non-nil
// returned error is captured as thrown.
func CaptureReturned(fn func() error) *Thrown {
	var returned error

	thrown := Capture(func() { returned = fn() })
	if thrown != nil || returned == nil {
		return thrown
	}

	return &Thrown{Value: returned, Returned: true}
}

// callableOf accepts the callables the front ends take.
func callableOf(fn any) (func() *Thrown, error) {
	switch callable := fn.(type) {
	case func():
		if callable == nil {
			break
		}

		return func() *Thrown { return Capture(callable) }, nil
	case func() error:
		if callable == nil {
			break
		}

		return func() *Thrown { return CaptureReturned(callable) }, nil
	}

	return nil, fmt.Errorf("%w, received %T instead", ErrInvalidCallable, fn)
}

// errorChainHas reports whether err, or anything it wraps, is assignable to a variable of
// type target.
func errorChainHas(err error, target any) bool {
	return err != nil && errors.As(err, target)
}
