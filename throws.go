// Package throws asserts what a callable throws: whether it panics (or returns a non-nil
// error) and whether that matches an expected message, pattern, error type, or error value.
//
//	throws.Expect(t, func() { parse("") }).ToThrow("empty input")
//	throws.Expect(t, load).Not().ToThrow()
//	throws.Expect(t, open).ToThrow(throws.TypeOf[*fs.PathError](), func(err error) {
//	    // inspect err
//	})
//
// This is the public API entry point. Implementation lives in internal/core.
package throws

import (
	"github.com/sirupsen/logrus"
	"github.com/toejough/throws/internal/core"
)

// Types re-exported from internal/core.

// Assertion checks what a callable throws and fails the test when the check does not hold.
type Assertion = core.Assertion

// ErrorHandler receives the thrown error after a successful match.
type ErrorHandler = core.ErrorHandler

// ErrorType carries a Go type as an expectation.
type ErrorType = core.ErrorType

// Expectation is a classified expectation.
type Expectation = core.Expectation

// ExpectedKind says which comparison an Expectation selects.
type ExpectedKind = core.ExpectedKind

// MatchResult is a verdict plus a lazily built failure message.
type MatchResult = core.MatchResult

// Option adjusts how failures are presented and logged.
type Option = core.Option

// PanicError wraps a panic value that was not an error.
type PanicError = core.PanicError

// TestReporter is the minimal interface throws needs from test frameworks.
type TestReporter = core.TestReporter

// Thrown is what a callable threw.
type Thrown = core.Thrown

// Expectation kinds.
const (
	KindAbsent        = core.KindAbsent
	KindPattern       = core.KindPattern
	KindErrorType     = core.KindErrorType
	KindErrorInstance = core.KindErrorInstance
)

// Usage errors.
var (
	ErrInvalidExpectation = core.ErrInvalidExpectation
	ErrInvalidCallable    = core.ErrInvalidCallable
	ErrInvalidCallback    = core.ErrInvalidCallback
	ErrTooManyArgs        = core.ErrTooManyArgs
)

// Functions re-exported from internal/core.

// Expect starts an assertion about fn, a func() or func() error.
func Expect(t TestReporter, fn any, opts ...Option) *Assertion {
	return core.Expect(t, fn, opts...)
}

// Configure registers options for every later Expect(t, ...) in the same test.
func Configure(t TestReporter, opts ...Option) {
	core.Configure(t, opts...)
}

// TypeOf returns an expectation that the thrown error is, or wraps, a T.
func TypeOf[T any]() ErrorType {
	return core.TypeOf[T]()
}

// NoExpectation returns the expectation used when none is given.
func NoExpectation() Expectation {
	return core.NoExpectation()
}

// ParseExpectation classifies raw into an Expectation.
func ParseExpectation(name string, raw any) (Expectation, error) {
	return core.ParseExpectation(name, raw)
}

// Evaluate runs fn once and judges what it threw against expected.
func Evaluate(name string, fn func(), expected Expectation, callback ErrorHandler, opts ...Option) MatchResult {
	return core.Evaluate(name, fn, expected, callback, opts...)
}

// EvaluateThrown judges an already captured throw.
func EvaluateThrown(
	name string,
	thrown *Thrown,
	expected Expectation,
	callback ErrorHandler,
	opts ...Option,
) MatchResult {
	return core.EvaluateThrown(name, thrown, expected, callback, opts...)
}

// Capture runs fn and returns what it panicked with, or nil.
func Capture(fn func()) *Thrown {
	return core.Capture(fn)
}

// CaptureReturned runs fn and returns what it panicked with or the error it returned.
func CaptureReturned(fn func() error) *Thrown {
	return core.CaptureReturned(fn)
}

// DeepEqual compares two thrown values by message and exported fields, ignoring their types.
func DeepEqual(actual, expected any) bool {
	return core.DeepEqual(actual, expected)
}

// WithRootDir sets the directory stack-trace paths are made relative to.
func WithRootDir(dir string) Option {
	return core.WithRootDir(dir)
}

// WithoutStackTrace leaves stack traces out of failure messages.
func WithoutStackTrace() Option {
	return core.WithoutStackTrace()
}

// WithIgnoredFrames leaves frames of functions starting with any of prefixes out of
// stack traces.
func WithIgnoredFrames(prefixes ...string) Option {
	return core.WithIgnoredFrames(prefixes...)
}

// WithColor forces colour on or off.
func WithColor(enabled bool) Option {
	return core.WithColor(enabled)
}

// WithLogger sends evaluation logs to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return core.WithLogger(logger)
}
