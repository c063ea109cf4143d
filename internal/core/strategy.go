package core

import (
	"reflect"
)

// ErrorHandler receives the thrown error after a successful match.
type ErrorHandler func(err error)

// MatchResult is a strategy's verdict. Message describes the result as a failure: when
// Pass is true it explains why a negated assertion fails, otherwise why a plain one does.
// It is only built when called.
type MatchResult struct {
	Pass    bool
	Message func() string
}

// Input is everything a Strategy needs to judge one evaluation.
type Input struct {
	// Name is the matcher name used in message headers, e.g. ToThrow.
	Name     string
	Thrown   *Thrown
	Expected Expectation
	Callback ErrorHandler
	Config   Config
}

// Strategy judges a thrown value against one kind of expectation.
type Strategy interface {
	Match(in Input) MatchResult
}

// StrategyFor returns the strategy that handles kind.
func StrategyFor(kind ExpectedKind) Strategy {
	switch kind {
	case KindAbsent:
		return absenceStrategy{}
	case KindPattern:
		return patternStrategy{}
	case KindErrorType:
		return typeStrategy{}
	case KindErrorInstance:
		return instanceStrategy{}
	default:
		panic("no strategy for expectation kind " + kind.String())
	}
}

// absenceStrategy passes when anything was thrown.
type absenceStrategy struct{}

func (absenceStrategy) Match(in Input) MatchResult {
	pass := in.Thrown != nil

	return MatchResult{Pass: pass, Message: func() string {
		return newMessage(in, pass).throwAnything()
	}}
}

// patternStrategy passes when the thrown message contains a match for the pattern.
type patternStrategy struct{}

func (patternStrategy) Match(in Input) MatchResult {
	err := in.Thrown.Err()
	pass := err != nil && in.Expected.Pattern.MatchString(err.Error())

	notify(pass, in.Callback, err)

	return MatchResult{Pass: pass, Message: func() string {
		return newMessage(in, pass).throwMatching(in.Expected.Source)
	}}
}

// instanceStrategy passes when the thrown error is structurally equal to the expected
// value. The dynamic types are not compared.
type instanceStrategy struct{}

func (instanceStrategy) Match(in Input) MatchResult {
	err := in.Thrown.Err()
	pass := err != nil && DeepEqual(err, in.Expected.Instance)

	notify(pass, in.Callback, err)

	return MatchResult{Pass: pass, Message: func() string {
		msg := newMessage(in, pass)
		text := msg.throwMatching(in.Expected.Instance)

		if !pass && err != nil {
			text += msg.propertyDiff(in.Expected.Instance, err)
		}

		return text
	}}
}

// typeStrategy passes when the thrown error is, or wraps, a value of the expected type.
// For an interface type, anything in the chain implementing it will do.
type typeStrategy struct{}

func (typeStrategy) Match(in Input) MatchResult {
	var err error
	if in.Thrown != nil {
		err, _ = in.Thrown.Value.(error)
	}

	pass := errorChainHas(err, reflect.New(in.Expected.Type).Interface())

	notify(pass, in.Callback, err)

	return MatchResult{Pass: pass, Message: func() string {
		return newMessage(in, pass).throwType(in.Expected.Type)
	}}
}

func notify(pass bool, callback ErrorHandler, err error) {
	if pass && callback != nil {
		callback(err)
	}
}
