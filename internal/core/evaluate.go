package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Evaluate runs fn exactly once, captures anything it panics with, and judges it against
// expected. callback is called with the thrown error, before Evaluate returns, only if
// the match passes.
func Evaluate(name string, fn func(), expected Expectation, callback ErrorHandler, opts ...Option) MatchResult {
	return EvaluateThrown(name, Capture(fn), expected, callback, opts...)
}

// EvaluateThrown judges an already captured throw. thrown may be nil.
func EvaluateThrown(
	name string,
	thrown *Thrown,
	expected Expectation,
	callback ErrorHandler,
	opts ...Option,
) MatchResult {
	cfg := NewConfig(opts...)

	result := StrategyFor(expected.Kind).Match(Input{
		Name:     name,
		Thrown:   thrown,
		Expected: expected,
		Callback: callback,
		Config:   cfg,
	})

	cfg.Logger.WithFields(logrus.Fields{
		"matcher": name,
		"kind":    expected.Kind.String(),
		"threw":   thrown != nil,
		"pass":    result.Pass,
	}).Debug("evaluated throw expectation")

	return result
}

// ParseArgs splits the variadic arguments of ToThrow-style calls into an expectation and
// an optional callback. No arguments means no expectation; a nil callback means none.
func ParseArgs(name string, args []any) (Expectation, ErrorHandler, error) {
	const maxArgs = 2

	if len(args) == 0 {
		return NoExpectation(), nil, nil
	}

	if len(args) > maxArgs {
		return Expectation{}, nil, fmt.Errorf("%w, got %d", ErrTooManyArgs, len(args))
	}

	expected, err := ParseExpectation(name, args[0])
	if err != nil {
		return Expectation{}, nil, err
	}

	if len(args) == 1 {
		return expected, nil, nil
	}

	switch callback := args[1].(type) {
	case nil:
		return expected, nil, nil
	case ErrorHandler:
		return expected, callback, nil
	case func(error):
		return expected, callback, nil
	default:
		return Expectation{}, nil, fmt.Errorf("%w, received %T instead", ErrInvalidCallback, args[1])
	}
}
