package core

import (
	"github.com/sirupsen/logrus"
)

// ThrowMatcher is a gomega-compatible matcher: the actual value is the callable, a
// func() or func() error. Compatible with gomega's types.GomegaMatcher via duck typing.
type ThrowMatcher struct {
	// Name appears in message headers.
	Name string
	// Args are the expectation and optional callback, as for Assertion.ToThrow.
	Args []any

	opts   []Option
	result MatchResult
}

// WithOptions adds presentation or logging options and returns the matcher.
func (m *ThrowMatcher) WithOptions(opts ...Option) *ThrowMatcher {
	m.opts = append(m.opts, opts...)

	return m
}

// Match runs the callable once and judges what it threw. Misuse (a value that is not a
// callable, or an unsupported expectation) is returned as an error, which gomega reports
// instead of a pass or fail.
func (m *ThrowMatcher) Match(actual any) (success bool, err error) {
	capture, err := callableOf(actual)
	if err != nil {
		return false, err
	}

	thrown := capture()

	expected, callback, err := ParseArgs(m.Name, m.Args)
	if err != nil {
		NewConfig(m.opts...).Logger.WithFields(logrus.Fields{"matcher": m.Name}).
			WithError(err).Warn("invalid throw expectation")

		return false, err
	}

	m.result = EvaluateThrown(m.Name, thrown, expected, callback, m.opts...)

	return m.result.Pass, nil
}

// FailureMessage explains why the callable did not throw as expected.
func (m *ThrowMatcher) FailureMessage(any) string {
	return m.message()
}

// NegatedFailureMessage explains why the callable threw when it was expected not to.
func (m *ThrowMatcher) NegatedFailureMessage(any) string {
	return m.message()
}

func (m *ThrowMatcher) message() string {
	if m.result.Message == nil {
		return ""
	}

	return m.result.Message()
}
