// Package format holds the presentation helpers used to build throw-matcher failure
// messages: matcher hints, coloured value printing, and stack-trace rendering.
package format

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	gomegaformat "github.com/onsi/gomega/format"
)

// Style colours the parts of a failure message.
// Expected values are green, received values are red, and the hint punctuation is dimmed.
type Style struct {
	expected *color.Color
	received *color.Color
	dim      *color.Color
}

// NewStyle returns a Style. A nil enabled leaves the decision to fatih/color, which turns
// colour off for NO_COLOR and for non-terminal output.
func NewStyle(enabled *bool) Style {
	style := Style{
		expected: color.New(color.FgGreen),
		received: color.New(color.FgRed),
		dim:      color.New(color.Faint),
	}

	if enabled == nil {
		return style
	}

	for _, c := range []*color.Color{style.expected, style.received, style.dim} {
		if *enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return style
}

// Plain returns a Style that never colours.
func Plain() Style {
	off := false

	return NewStyle(&off)
}

// Expected colours text describing the expected value.
func (s Style) Expected(text string) string {
	return s.expected.Sprint(text)
}

// Received colours text describing what actually happened.
func (s Style) Received(text string) string {
	return s.received.Sprint(text)
}

// Dim fades hint punctuation.
func (s Style) Dim(text string) string {
	return s.dim.Sprint(text)
}

// MatcherHint renders the first line of a failure message, e.g.
// expect(function).not.ToThrow(string).
func (s Style) MatcherHint(matcher, received, expected string) string {
	return s.Dim("expect(") +
		s.Received(received) +
		s.Dim(")"+matcher+"(") +
		s.Expected(expected) +
		s.Dim(")")
}

// PrintExpected stringifies v and colours it as expected.
func (s Style) PrintExpected(v any) string {
	return s.Expected(Stringify(v))
}

// PrintWithType renders a labelled value together with its Go type, e.g.
//
//	Got:
//	    <int>: 111
func PrintWithType(label string, v any) string {
	return label + ":\n" + gomegaformat.Object(v, 1)
}

// EscapeLiteral escapes every regexp metacharacter in s so the compiled pattern matches s
// literally. Bytes that are not valid UTF-8 become \x{FFFD}, the rune the regexp engine
// reads for them, so the pattern always compiles.
func EscapeLiteral(s string) string {
	var out strings.Builder

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			out.WriteString(`\x{FFFD}`)
		} else {
			out.WriteString(regexp.QuoteMeta(s[:size]))
		}

		s = s[size:]
	}

	return out.String()
}

// Stringify renders v the way failure messages print expectations.
func Stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(value)
	case *regexp.Regexp:
		return "/" + value.String() + "/"
	case reflect.Type:
		return value.String()
	case error:
		return fmt.Sprintf("[%T: %s]", value, value.Error())
	default:
		return strings.TrimSpace(gomegaformat.Object(v, 0))
	}
}

// TypeName classifies v into the short type names used in matcher hints.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case *regexp.Regexp:
		return "regexp"
	case reflect.Type:
		return "type"
	case error:
		return "error"
	}

	//nolint:exhaustive // everything else is reported by kind name
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "number"
	case reflect.Func:
		return "function"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct, reflect.Pointer:
		return "object"
	default:
		return reflect.ValueOf(v).Kind().String()
	}
}
