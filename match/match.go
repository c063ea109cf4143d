// Package match provides gomega matchers that assert what a callable throws.
// This package is designed to be dot-imported alongside gomega:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/throws/match"
//	)
//
//	Expect(func() { parse("") }).To(Throw("empty input"))
//	Expect(func() error { return save(doc) }).NotTo(Throw())
package match

import (
	"github.com/onsi/gomega/types"
	"github.com/toejough/throws/internal/core"
)

// Matcher is the matcher returned by Throw and ThrowError.
type Matcher = core.ThrowMatcher

// Compile-time check that Matcher satisfies gomega's matcher interface.
var _ types.GomegaMatcher = (*Matcher)(nil)

// Throw succeeds when the actual callable (a func() or func() error) panics, or returns a
// non-nil error, matching the optional expectation in args[0]:
//
//   - a string the message must contain, matched literally
//   - a *regexp.Regexp the message must match
//   - an error type from throws.TypeOf, which the error must be or wrap
//   - an error value the thrown error must equal structurally
//
// args[1] may be a func(error), called with the thrown error when the match succeeds.
func Throw(args ...any) *Matcher {
	return &Matcher{Name: "Throw", Args: args}
}

// ThrowError is Throw under the other name.
func ThrowError(args ...any) *Matcher {
	return &Matcher{Name: "ThrowError", Args: args}
}
