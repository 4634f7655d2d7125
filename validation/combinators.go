package validation

import (
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

// ThenClause is the consequence of an If rule.
type ThenClause struct {
	schema Schema
}

// Then wraps the schema applied to the enclosing record when the condition
// of an If rule holds.
func Then(schema Schema) ThenClause {
	return ThenClause{schema: schema}
}

type conditional struct {
	condition Checker
	then      Schema
}

// If builds a conditional rule. When condition passes for the field value,
// the Then schema is validated against the record holding the field and its
// errors are reported under the field. It panics on invalid arguments, see
// NewIf.
func If(condition Rule, then ThenClause) Rule {
	r, err := NewIf(condition, then)
	if err != nil {
		panic(err)
	}
	return r
}

// NewIf is like If but returns the configuration error instead of panicking.
func NewIf(condition Rule, then ThenClause) (Rule, error) {
	if condition == nil {
		return nil, errors.ErrNilRule
	}
	c, ok := condition.(Checker)
	if !ok {
		return nil, errorc.With(
			errors.ErrInvalidRule,
			errorc.String(errors.ErrorFieldRuleName, constants.RuleIf),
			errorc.String(errors.ErrorFieldParameter, condition.Name()),
		)
	}
	if then.schema == nil {
		return nil, errorc.With(errors.ErrMissingParameter, errorc.String(errors.ErrorFieldRuleName, constants.RuleIf))
	}
	return &conditional{condition: c, then: then.schema}, nil
}

func (*conditional) spec() {}

func (*conditional) Kind() Kind { return KindConditional }

func (*conditional) Name() string { return constants.RuleIf }

func (c *conditional) Condition() Checker { return c.condition }

func (c *conditional) Then() Schema { return c.then }

// Each applies spec to every element of a collection. spec is either a
// check rule or Rules of check rules, applied to every element, or a
// Schema, validating every element as a nested record. It panics on other
// specs, see NewEach.
func Each(spec Spec) Rule {
	r, err := NewEach(spec)
	if err != nil {
		panic(err)
	}
	return r
}

// NewEach is like Each but returns the configuration error instead of
// panicking.
func NewEach(spec Spec) (Rule, error) {
	switch s := spec.(type) {
	case nil:
		return nil, errors.ErrNilRule
	case Schema:
		if s == nil {
			return nil, errorc.With(errors.ErrMissingParameter, errorc.String(errors.ErrorFieldRuleName, constants.RuleEach))
		}
		return &eachSchema{schema: s}, nil
	case Rules:
		return newEachRules(s)
	case Rule:
		return newEachRules(Rules{s})
	default:
		return nil, errorc.With(errors.ErrInvalidRule, errorc.String(errors.ErrorFieldRuleName, constants.RuleEach))
	}
}

func newEachRules(rules Rules) (Rule, error) {
	if len(rules) == 0 {
		return nil, errorc.With(errors.ErrMissingParameter, errorc.String(errors.ErrorFieldRuleName, constants.RuleEach))
	}
	checks := make([]Checker, 0, len(rules))
	texts := make([]string, 0, len(rules))
	for _, r := range rules {
		if r == nil {
			return nil, errors.ErrNilRule
		}
		c, ok := r.(Checker)
		if !ok {
			return nil, errorc.With(
				errors.ErrInvalidRule,
				errorc.String(errors.ErrorFieldRuleName, constants.RuleEach),
				errorc.String(errors.ErrorFieldParameter, r.Name()),
			)
		}
		checks = append(checks, c)
		msg := constants.MessageFallback
		if m, ok := c.(messenger); ok {
			msg, _ = m.messages()
		}
		texts = append(texts, msg)
	}
	joined := strings.Join(texts, " and ")
	return &eachRules{
		rules:   rules,
		checks:  checks,
		message: constants.MessageEachPrefix + joined,
		negated: constants.MessageNotEach + joined,
	}, nil
}

// eachRules applies check rules to every element and reports one entry per
// failing (element, rule) pair.
type eachRules struct {
	rules   Rules
	checks  []Checker
	message string
	negated string
}

func (*eachRules) spec() {}

func (*eachRules) Kind() Kind { return KindEach }

func (*eachRules) Name() string { return constants.RuleEach }

func (e *eachRules) Rules() Rules { return e.rules }

func (*eachRules) Schema() Schema { return nil }

func (e *eachRules) messages() (string, string) { return e.message, e.negated }

func (e *eachRules) Check(value any) Outcome {
	o := Outcome{Rule: constants.RuleEach, Message: e.message, NegatedMessage: e.negated}
	items, ok := Items(value)
	if !ok {
		o.Err = typeMismatch(constants.RuleEach, value, "collection")
		return o
	}
	for _, item := range items {
		for _, c := range e.checks {
			r := Apply(c, item.Value)
			if r.Passed {
				continue
			}
			if len(r.Details) == 0 {
				o.Details = append(o.Details, Message(constants.MessageEachPrefix+r.FailureMessage("")))
				continue
			}
			for _, d := range r.Details {
				if m, ok := d.(Message); ok {
					d = Message(constants.MessageEachPrefix + string(m))
				}
				o.Details = append(o.Details, d)
			}
		}
	}
	o.Passed = len(o.Details) == 0
	return o
}

// eachSchema validates every element of a collection as a nested record.
// Evaluation needs the schema walker, so it is not a Checker.
type eachSchema struct {
	schema Schema
}

func (*eachSchema) spec() {}

func (*eachSchema) Kind() Kind { return KindEach }

func (*eachSchema) Name() string { return constants.RuleEach }

func (*eachSchema) Rules() Rules { return nil }

func (e *eachSchema) Schema() Schema { return e.schema }
