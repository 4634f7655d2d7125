package validation

import (
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

// Outcome is the result of applying a Checker to one value. It carries both
// the failure message and the message a negation of the rule would report,
// so callers never depend on state left behind by a previous rule.
type Outcome struct {
	Rule           string
	Passed         bool
	Message        string
	NegatedMessage string
	// Details replace Message in the error report when the rule produces
	// more than one entry (e.g. Each over rules).
	Details []Entry
	// Err is set when the rule could not be evaluated for the value, e.g. a
	// length check on a number. An Outcome with Err never passes.
	Err error
}

// Negate returns the outcome of the negated rule: the verdict flips and the
// two messages swap. An outcome carrying Err stays failed.
func (o Outcome) Negate() Outcome {
	return Outcome{
		Rule:           o.Rule,
		Passed:         !o.Passed && o.Err == nil,
		Message:        o.NegatedMessage,
		NegatedMessage: o.Message,
		Err:            o.Err,
	}
}

// FailureMessage returns the message to report for a failed outcome, or
// fallback when the rule did not provide one.
func (o Outcome) FailureMessage(fallback string) string {
	if o.Message != "" {
		return o.Message
	}
	if fallback != "" {
		return fallback
	}
	return constants.MessageFallback
}

// messenger exposes the static messages of a rule, used when the rule
// panics before producing an Outcome.
type messenger interface {
	messages() (message, negated string)
}

// Apply runs c against value. A panic inside the rule is recovered and
// reported as a failed Outcome wrapping errors.ErrRulePanicked.
func Apply(c Checker, value any) (o Outcome) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		o = Outcome{
			Rule: c.Name(),
			Err: errorc.With(
				errors.ErrRulePanicked,
				errorc.String(errors.ErrorFieldRuleName, c.Name()),
				errorc.String(errors.ErrorFieldCause, fmt.Sprint(p)),
			),
		}
		if m, ok := c.(messenger); ok {
			o.Message, o.NegatedMessage = m.messages()
		}
	}()

	o = c.Check(value)
	if o.Err != nil {
		o.Passed = false
	}
	return o
}
