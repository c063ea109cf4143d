package core_test

import (
	"fmt"

	"github.com/toejough/throws/internal/core"
)

// BaseErr is the error type the other test errors build on.
type BaseErr struct {
	Msg string
}

func (e BaseErr) Error() string { return e.Msg }

// SubErr embeds BaseErr, so it carries the same message and fields.
type SubErr struct {
	BaseErr
}

// SiblingErr also embeds BaseErr but is unrelated to SubErr.
type SiblingErr struct {
	BaseErr
}

// CodedErr adds a field beyond the message.
type CodedErr struct {
	Msg  string
	Code int
}

func (e *CodedErr) Error() string { return fmt.Sprintf("%s (code %d)", e.Msg, e.Code) }

// TimeoutErr implements the timeout interface below.
type TimeoutErr struct{}

func (TimeoutErr) Error() string { return "timed out" }
func (TimeoutErr) Timeout() bool { return true }

type timeout interface {
	Timeout() bool
}

// plain turns off colour and stack traces so messages can be compared exactly.
func plain() []core.Option {
	return []core.Option{core.WithColor(false), core.WithoutStackTrace()}
}

func panicsWith(value any) func() {
	return func() { panic(value) }
}

func noop() {}

// mustParse classifies raw or panics.
func mustParse(raw any) core.Expectation {
	expected, err := core.ParseExpectation("ToThrow", raw)
	if err != nil {
		panic(err)
	}

	return expected
}
