package validation

import (
	"slices"

	"github.com/ygrebnov/ruleset/constants"
)

// Kind identifies the variant of a Rule. The evaluator dispatches on it.
type Kind uint8

const (
	KindCheck Kind = iota + 1
	KindRequired
	KindConditional
	KindSchema
	KindEach
)

func (k Kind) String() string {
	switch k {
	case KindCheck:
		return "check"
	case KindRequired:
		return constants.RuleRequired
	case KindConditional:
		return "conditional"
	case KindSchema:
		return constants.RuleSchema
	case KindEach:
		return constants.RuleEach
	default:
		return "unknown"
	}
}

// Spec is what a Schema assigns to a field: a single Rule, an ordered
// sequence of Rules, or a nested Schema. The set of implementations is
// closed to this package.
type Spec interface {
	spec()
}

// Rule is a single element of a Spec.
type Rule interface {
	Spec
	Kind() Kind
	Name() string
}

// Checker is a Rule that can be applied to a single value.
type Checker interface {
	Rule
	Check(value any) Outcome
}

// Conditional is implemented by rules built with If.
type Conditional interface {
	Rule
	Condition() Checker
	Then() Schema
}

// Iteration is implemented by rules built with Each. Exactly one of Rules
// and Schema is non-nil.
type Iteration interface {
	Rule
	Rules() Rules
	Schema() Schema
}

// Rules is an ordered sequence of rules applied to the same field.
// Failures are reported in sequence order.
type Rules []Rule

func (Rules) spec() {}

// HasRequired reports whether rs contains the Required sentinel.
func (rs Rules) HasRequired() bool {
	for _, r := range rs {
		if r != nil && r.Kind() == KindRequired {
			return true
		}
	}
	return false
}

// Schema maps field names to specs. A Schema used as a Rule validates the
// field's value as a nested record.
type Schema map[string]Spec

func (Schema) spec() {}

func (Schema) Kind() Kind { return KindSchema }

func (Schema) Name() string { return constants.RuleSchema }

// Fields returns the schema's field names in sorted order.
func (s Schema) Fields() []string {
	fields := make([]string, 0, len(s))
	for k := range s {
		fields = append(fields, k)
	}
	slices.Sort(fields)
	return fields
}

type required struct{}

func (required) spec() {}

func (required) Kind() Kind { return KindRequired }

func (required) Name() string { return constants.RuleRequired }

// Required marks a field as mandatory. It is a presence check on the record
// and is never applied to a value; listing it in Rules makes a missing field
// report only the presence failure.
var Required Rule = required{}
