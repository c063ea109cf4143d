package core_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/toejough/throws/internal/core"
)

func TestThrowMatcher_Match(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := (&core.ThrowMatcher{Name: "Throw", Args: []any{"apple"}}).WithOptions(plain()...)

	ok, err := matcher.Match(panicsWith(errors.New("apple")))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())
	g.Expect(matcher.NegatedFailureMessage(nil)).To(HavePrefix("expect(function).not.Throw(string)"))
}

func TestThrowMatcher_FailureMessage(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	matcher := (&core.ThrowMatcher{Name: "Throw", Args: []any{"banana"}}).WithOptions(plain()...)

	ok, err := matcher.Match(panicsWith(errors.New("apple")))

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
	g.Expect(matcher.FailureMessage(nil)).To(Equal(
		"expect(function).Throw(string)\n\n" +
			"Expected the function to throw an error matching:\n" +
			"  \"banana\"\n" +
			"Instead, it threw:\n" +
			"  *errors.errorString: apple",
	))
}

func TestThrowMatcher_NotACallable(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, actual := range []any{"foo", nil, func(string) {}, func() string { return "bar" }} {
		ok, err := (&core.ThrowMatcher{Name: "Throw"}).Match(actual)

		g.Expect(ok).To(BeFalse())
		g.Expect(err).To(MatchError(core.ErrInvalidCallable))
	}
}

func TestThrowMatcher_InvalidExpectationIsAnError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	logger, hook := test.NewNullLogger()

	matcher := (&core.ThrowMatcher{Name: "Throw", Args: []any{111}}).WithOptions(core.WithLogger(logger))

	ok, err := matcher.Match(noop)

	g.Expect(ok).To(BeFalse())
	g.Expect(err).To(MatchError(core.ErrInvalidExpectation))
	g.Expect(hook.LastEntry()).NotTo(BeNil())
	g.Expect(hook.LastEntry().Level).To(Equal(logrus.WarnLevel))
}

func TestThrowMatcher_MessageBeforeMatch(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect((&core.ThrowMatcher{Name: "Throw"}).FailureMessage(nil)).To(BeEmpty())
}
