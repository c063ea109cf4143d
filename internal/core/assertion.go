package core

import (
	"github.com/sirupsen/logrus"
)

// TestReporter is the minimal interface throws needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Assertion checks what a callable throws and fails the test when the check does not hold.
type Assertion struct {
	t       TestReporter
	capture func() *Thrown
	negated bool
	opts    []Option
}

// Expect starts an assertion about fn, which must be a func() or a func() error. Options
// registered for t with Configure apply first, then opts.
//
// Expect panics if fn is not a supported callable.
func Expect(t TestReporter, fn any, opts ...Option) *Assertion {
	capture, err := callableOf(fn)
	if err != nil {
		panic(err)
	}

	return &Assertion{
		t:       t,
		capture: capture,
		opts:    append(registeredOptions(t), opts...),
	}
}

// Not returns an assertion with the opposite expectation.
func (a *Assertion) Not() *Assertion {
	negated := *a
	negated.negated = !a.negated

	return &negated
}

// ToThrow asserts that the callable throws. With no arguments anything thrown passes.
// args[0] narrows the expectation: a string the message must contain, a *regexp.Regexp
// it must match, an ErrorType the error must be or wrap, or an error value it must equal
// structurally. args[1] is an optional func(error) called with the thrown error when the
// expectation matches.
//
// It returns the thrown error, or nil if nothing was thrown. An unsupported expectation
// panics with an error wrapping ErrInvalidExpectation; the callable has already run.
func (a *Assertion) ToThrow(args ...any) error {
	a.t.Helper()

	return a.check("ToThrow", args)
}

// ToThrowError is ToThrow under the other name.
func (a *Assertion) ToThrowError(args ...any) error {
	a.t.Helper()

	return a.check("ToThrowError", args)
}

func (a *Assertion) check(name string, args []any) error {
	a.t.Helper()

	thrown := a.capture()

	expected, callback, err := ParseArgs(name, args)
	if err != nil {
		cfg := NewConfig(a.opts...)
		cfg.Logger.WithFields(logrus.Fields{"matcher": name}).WithError(err).Warn("invalid throw expectation")

		panic(err)
	}

	result := EvaluateThrown(name, thrown, expected, callback, a.opts...)
	if result.Pass == a.negated {
		a.t.Fatalf("%s", result.Message())
	}

	return thrown.Err()
}
