package validation

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

// check is a plain value predicate with messages fixed at construction.
type check struct {
	name    string
	message string
	negated string
	fn      func(value any) (bool, error)
}

func (c *check) spec() {}

func (c *check) Kind() Kind { return KindCheck }

func (c *check) Name() string { return c.name }

func (c *check) Check(value any) Outcome {
	ok, err := c.fn(value)
	return Outcome{
		Rule:           c.name,
		Passed:         ok && err == nil,
		Message:        c.message,
		NegatedMessage: c.negated,
		Err:            err,
	}
}

func (c *check) messages() (string, string) { return c.message, c.negated }

// RuleOption customizes the messages of a custom rule.
type RuleOption func(*ruleMessages)

type ruleMessages struct {
	message      string
	negated      string
	fixedMessage bool
}

// WithMessage sets the failure message of a custom rule. For NewRule it
// replaces the text of the error returned by the rule function.
func WithMessage(msg string) RuleOption {
	return func(m *ruleMessages) {
		m.message = msg
		m.fixedMessage = true
	}
}

// WithNegatedMessage sets the message reported when Not of a custom rule fails.
func WithNegatedMessage(msg string) RuleOption {
	return func(m *ruleMessages) { m.negated = msg }
}

func newRuleMessages(opts []RuleOption) ruleMessages {
	m := ruleMessages{message: constants.MessageFallback, negated: constants.MessageFallback}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// typedRule adapts a function over a concrete type T to a Checker.
type typedRule[T any] struct {
	name      string
	fieldType reflect.Type
	fn        func(value T) error
	msgs      ruleMessages
}

// NewRule builds a custom rule from a function over values of type T.
// The rule fails with the text of the returned error, unless WithMessage is
// given. Values that are not of type T fail with errors.ErrRuleTypeMismatch.
func NewRule[T any](name string, fn func(value T) error, opts ...RuleOption) (Rule, error) {
	if name == "" || fn == nil {
		return nil, errors.ErrInvalidRule
	}

	// Capture the static type of T even when T is an interface.
	fieldType := reflect.TypeOf((*T)(nil)).Elem()

	return &typedRule[T]{
		name:      name,
		fieldType: fieldType,
		fn:        fn,
		msgs:      newRuleMessages(opts),
	}, nil
}

func (r *typedRule[T]) spec() {}

func (r *typedRule[T]) Kind() Kind { return KindCheck }

func (r *typedRule[T]) Name() string { return r.name }

// FieldType returns the type of values the rule accepts.
func (r *typedRule[T]) FieldType() reflect.Type { return r.fieldType }

func (r *typedRule[T]) Check(value any) Outcome {
	o := Outcome{Rule: r.name, Message: r.msgs.message, NegatedMessage: r.msgs.negated}
	v, ok := value.(T)
	if !ok {
		o.Err = errorc.With(
			errors.ErrRuleTypeMismatch,
			errorc.String(errors.ErrorFieldRuleName, r.name),
			errorc.String(errors.ErrorFieldValueType, typeName(value)),
			errorc.String(errors.ErrorFieldFieldType, r.fieldType.String()),
		)
		return o
	}
	if err := r.fn(v); err != nil {
		if !r.msgs.fixedMessage {
			o.Message = err.Error()
		}
		return o
	}
	o.Passed = true
	return o
}

func (r *typedRule[T]) messages() (string, string) { return r.msgs.message, r.msgs.negated }

// Func builds a custom rule from a predicate over arbitrary values. A
// non-nil error marks the value as unsupported and fails the rule.
// It panics with errors.ErrInvalidRule if name is empty or fn is nil.
func Func(name string, fn func(value any) (bool, error), opts ...RuleOption) Rule {
	if name == "" || fn == nil {
		panic(errors.ErrInvalidRule)
	}
	msgs := newRuleMessages(opts)
	return &check{name: name, message: msgs.message, negated: msgs.negated, fn: fn}
}

// typeMismatch reports that rule cannot be applied to value; want describes
// the kinds of values the rule accepts.
func typeMismatch(rule string, value any, want string) error {
	return errorc.With(
		errors.ErrRuleTypeMismatch,
		errorc.String(errors.ErrorFieldRuleName, rule),
		errorc.String(errors.ErrorFieldValueType, typeName(value)),
		errorc.String(errors.ErrorFieldFieldType, want),
	)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
