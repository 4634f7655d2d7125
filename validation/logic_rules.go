package validation

import (
	"math"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

// Truthy passes for true, non-zero numbers, non-empty strings and
// collections, non-nil pointers and any other non-zero value. Empty slices
// and maps are falsy, as in Python truthiness and unlike JavaScript's !!
// coercion.
var Truthy Rule = &check{
	name:    constants.RuleTruthy,
	message: "must be True-equivalent value",
	negated: "must be False-equivalent value",
	fn: func(value any) (bool, error) {
		return truthy(value), nil
	},
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return !rv.IsNil()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	default:
		return !rv.IsZero()
	}
}

type negation struct {
	inner Checker
}

// Not inverts rule. A failing Not reports the negated message of rule.
// It panics on rules that cannot be negated, see NewNot.
func Not(rule Rule) Rule {
	r, err := NewNot(rule)
	if err != nil {
		panic(err)
	}
	return r
}

// NewNot is like Not but returns errors.ErrNilRule for a nil rule and
// errors.ErrNotNegatable for Required, If, nested schemas and Each over a
// schema.
func NewNot(rule Rule) (Rule, error) {
	if rule == nil {
		return nil, errors.ErrNilRule
	}
	c, ok := rule.(Checker)
	if !ok {
		return nil, errorc.With(errors.ErrNotNegatable, errorc.String(errors.ErrorFieldRuleName, rule.Name()))
	}
	return &negation{inner: c}, nil
}

func (*negation) spec() {}

func (*negation) Kind() Kind { return KindCheck }

func (*negation) Name() string { return constants.RuleNot }

func (n *negation) Check(value any) Outcome {
	return Apply(n.inner, value).Negate()
}

func (n *negation) messages() (string, string) {
	if m, ok := n.inner.(messenger); ok {
		msg, neg := m.messages()
		return neg, msg
	}
	return constants.MessageFallback, constants.MessageFallback
}
