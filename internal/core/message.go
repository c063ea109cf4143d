package core

import (
	"reflect"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/throws/internal/format"
)

// message builds the failure text for one evaluation. pass selects the negated wording:
// a passing result is only reported by an assertion that expected no match.
type message struct {
	in    Input
	pass  bool
	style format.Style
}

func newMessage(in Input, pass bool) message {
	return message{in: in, pass: pass, style: in.Config.style()}
}

func (m message) header() string {
	matcher := "." + m.in.Name
	if m.pass {
		matcher = ".not" + matcher
	}

	return m.style.MatcherHint(matcher, "function", m.in.Expected.TypeName()) + "\n\n"
}

func (m message) expectedLine(what string) string {
	if m.pass {
		return "Expected the function not to throw " + what
	}

	return "Expected the function to throw " + what
}

func (m message) throwAnything() string {
	return m.header() + m.expectedLine("an error.") + "\n" + m.actual()
}

func (m message) throwMatching(expected any) string {
	return m.header() +
		m.expectedLine("an error matching:") + "\n" +
		"  " + m.style.PrintExpected(expected) + "\n" +
		m.actual()
}

func (m message) throwType(typ reflect.Type) string {
	return m.header() +
		m.expectedLine("an error of type:") + "\n" +
		"  " + m.style.PrintExpected(typ.String()) + "\n" +
		m.actual()
}

// actual reports what the callable really did.
func (m message) actual() string {
	if m.in.Thrown == nil {
		return "But it did not throw anything."
	}

	text, _ := format.SeparateMessageFromStack(m.in.Thrown.Report())

	verb := "Instead, it threw:\n"
	if m.in.Thrown.Returned {
		verb = "Instead, it returned:\n"
	}

	return verb + m.style.Received("  "+text+format.FormatStackTrace(m.in.Thrown.Frames, m.in.Config.stackOptions()))
}

// propertyDiff shows which compared properties differ between expected and received.
func (m message) propertyDiff(expected any, received error) string {
	diff := textdiff.Unified(
		"expected", "received",
		describeProperties(Properties(expected)),
		describeProperties(Properties(received)),
	)
	if diff == "" {
		return ""
	}

	return "\n\nDifference:\n" + strings.TrimRight(diff, "\n")
}
