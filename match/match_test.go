package match_test

import (
	"errors"
	"regexp"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/throws"
	. "github.com/toejough/throws/match"
)

type parseError struct {
	Line int
}

func (e *parseError) Error() string { return "parse failed" }

func TestThrow_WithGomega(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(func() { panic(errors.New("apple")) }).To(Throw())
	g.Expect(func() {}).NotTo(Throw())
	g.Expect(func() { panic(errors.New("apple")) }).To(Throw("apple"))
	g.Expect(func() { panic(errors.New("banana")) }).NotTo(Throw("apple"))
	g.Expect(func() { panic(errors.New("apple")) }).To(ThrowError(regexp.MustCompile(`^app`)))
	g.Expect(func() { panic(&parseError{Line: 3}) }).To(Throw(throws.TypeOf[*parseError]()))
	g.Expect(func() { panic(&parseError{Line: 3}) }).To(Throw(&parseError{Line: 3}))
	g.Expect(func() { panic(&parseError{Line: 3}) }).NotTo(Throw(&parseError{Line: 4}))
	g.Expect(func() error { return &parseError{} }).To(Throw("parse failed"))
}

func TestThrow_CallbackWithGomega(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(func() { panic(&parseError{Line: 7}) }).To(Throw(throws.TypeOf[*parseError](), func(err error) {
		var parsed *parseError

		g.Expect(errors.As(err, &parsed)).To(BeTrue())
		g.Expect(parsed.Line).To(Equal(7))
	}))
}

func TestThrow_FailureReachesGomega(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var failures []string

	recorder := NewGomega(func(message string, _ ...int) {
		failures = append(failures, message)
	})

	recorder.Expect(func() { panic(errors.New("apple")) }).
		To(Throw("banana").WithOptions(throws.WithColor(false), throws.WithoutStackTrace()))
	recorder.Expect(func() {}).
		To(ThrowError(throws.TypeOf[*parseError]()).WithOptions(throws.WithColor(false)))

	g.Expect(failures).To(HaveLen(2))
	g.Expect(failures[0]).To(ContainSubstring(`"banana"`))
	g.Expect(failures[0]).To(ContainSubstring("*errors.errorString: apple"))
	g.Expect(failures[1]).To(ContainSubstring("expect(function).ThrowError(type)"))
	g.Expect(failures[1]).To(ContainSubstring("But it did not throw anything."))
}

func TestThrow_MisuseReachesGomega(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var failures []string

	recorder := NewGomega(func(message string, _ ...int) {
		failures = append(failures, message)
	})

	recorder.Expect("not a function").To(Throw())
	recorder.Expect(func() {}).NotTo(Throw(111))

	g.Expect(failures).To(HaveLen(2))
	g.Expect(failures[0]).To(ContainSubstring("must pass a func() or func() error"))
	g.Expect(failures[1]).To(ContainSubstring("unexpected argument passed"))
}
