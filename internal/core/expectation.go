// Package core provides the internal implementation of the throw matchers: capturing what
// a callable throws, classifying the expectation, and deciding pass or fail.
package core

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/toejough/throws/internal/format"
)

// ExpectedKind says which comparison an Expectation selects.
type ExpectedKind int

// Expectation kinds.
const (
	// KindAbsent asserts only that something was thrown.
	KindAbsent ExpectedKind = iota
	// KindPattern matches the thrown message against a regular expression.
	KindPattern
	// KindErrorType checks the thrown error is, or wraps, a value of a given type.
	KindErrorType
	// KindErrorInstance compares the thrown error structurally with an expected value.
	KindErrorInstance
)

func (k ExpectedKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindPattern:
		return "pattern"
	case KindErrorType:
		return "error type"
	case KindErrorInstance:
		return "error instance"
	default:
		return "ExpectedKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Expectation is what the caller expects the callable to throw. Only the fields for Kind
// are set. The zero value expects that anything at all is thrown.
type Expectation struct {
	Kind ExpectedKind

	// Pattern is set for KindPattern. Literal strings are already escaped and compiled.
	Pattern *regexp.Regexp
	// Source is the string or regexp the pattern was built from.
	Source any
	// Type is set for KindErrorType.
	Type reflect.Type
	// Instance is set for KindErrorInstance.
	Instance any
}

// TypeName names the expectation's kind in a matcher hint.
func (e Expectation) TypeName() string {
	switch e.Kind {
	case KindAbsent:
		return ""
	case KindPattern:
		return format.TypeName(e.Source)
	case KindErrorType:
		return "type"
	case KindErrorInstance:
		return "error"
	default:
		return e.Kind.String()
	}
}

// ErrorType carries a Go type as an expectation. Build one with TypeOf.
type ErrorType struct {
	Type reflect.Type
}

// TypeOf returns an expectation that the thrown error is, or wraps, a T.
// T must implement error or be an interface type.
func TypeOf[T any]() ErrorType {
	return ErrorType{Type: reflect.TypeFor[T]()}
}

// NoExpectation returns the expectation used when none is given.
func NoExpectation() Expectation {
	return Expectation{Kind: KindAbsent}
}

// ParseExpectation classifies raw into an Expectation. name is the matcher name, used in
// the usage error returned for unsupported kinds.
//
// Supported: string (matched literally as a substring), regexp.Regexp or a pointer to one,
// ErrorType or
// reflect.Type, and error values, structs, pointers to structs, or maps (compared
// structurally).
func ParseExpectation(name string, raw any) (Expectation, error) {
	switch value := raw.(type) {
	case string:
		return Expectation{
			Kind:    KindPattern,
			Pattern: regexp.MustCompile(format.EscapeLiteral(value)),
			Source:  value,
		}, nil
	case *regexp.Regexp:
		if value == nil {
			return Expectation{}, invalidExpectation(name, raw)
		}

		return Expectation{Kind: KindPattern, Pattern: value, Source: value}, nil
	case regexp.Regexp:
		return Expectation{Kind: KindPattern, Pattern: &value, Source: &value}, nil
	case ErrorType:
		return typeExpectation(name, value.Type)
	case reflect.Type:
		return typeExpectation(name, value)
	case error:
		if isNil(value) {
			return Expectation{}, invalidExpectation(name, raw)
		}

		return Expectation{Kind: KindErrorInstance, Instance: value}, nil
	}

	if isObject(raw) {
		return Expectation{Kind: KindErrorInstance, Instance: raw}, nil
	}

	return Expectation{}, invalidExpectation(name, raw)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // cached reflect type
	errorInterface = reflect.TypeFor[error]()
)

func typeExpectation(name string, typ reflect.Type) (Expectation, error) {
	if typ == nil {
		return Expectation{}, invalidExpectation(name, nil)
	}

	if typ.Kind() != reflect.Interface && !typ.Implements(errorInterface) {
		return Expectation{}, fmt.Errorf(
			"%w: %s does not implement error and is not an interface type",
			ErrInvalidExpectation, typ,
		)
	}

	return Expectation{Kind: KindErrorType, Type: typ}, nil
}

func invalidExpectation(name string, raw any) error {
	plain := format.Plain()

	return fmt.Errorf("%s\n\n%w.\nExpected: %s, %s or %s.\n%s",
		plain.MatcherHint("."+name, "function", format.TypeName(raw)),
		ErrInvalidExpectation,
		strconv.Quote("string"), strconv.Quote("error (type)"), strconv.Quote("regexp"),
		format.PrintWithType("Got", raw),
	)
}

// isObject reports whether raw is a value that can stand in for an expected error
// instance: a struct, a non-nil pointer to a struct, or a non-nil map.
func isObject(raw any) bool {
	value := reflect.ValueOf(raw)

	//nolint:exhaustive // every other kind is rejected
	switch value.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return !value.IsNil()
	case reflect.Pointer:
		return !value.IsNil() && value.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	//nolint:exhaustive // only nillable kinds matter
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// Usage errors.
var (
	// ErrInvalidExpectation reports an expectation of an unsupported kind.
	ErrInvalidExpectation = errors.New("unexpected argument passed")
	// ErrInvalidCallable reports something other than func() or func() error under test.
	ErrInvalidCallable = errors.New("must pass a func() or func() error")
	// ErrInvalidCallback reports a callback that is not a func(error).
	ErrInvalidCallback = errors.New("callback must be a func(error)")
	// ErrTooManyArgs reports more arguments than an expectation and a callback.
	ErrTooManyArgs = errors.New("too many arguments: expected at most an expectation and a callback")
)
