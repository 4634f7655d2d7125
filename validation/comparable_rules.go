package validation

import (
	"cmp"
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

// Equals passes when the value equals target. Numbers compare by value
// across Go numeric kinds.
func Equals(target any) Rule {
	t := render(target)
	return &check{
		name:    constants.RuleEquals,
		message: "must be equal to " + t,
		negated: "must not be equal to " + t,
		fn: func(value any) (bool, error) {
			return equalValues(value, target), nil
		},
	}
}

// In passes when the value equals one of items. It panics with
// errors.ErrMissingParameter when no items are given.
func In[T any](items ...T) Rule {
	if len(items) == 0 {
		panic(errorc.With(errors.ErrMissingParameter, errorc.String(errors.ErrorFieldRuleName, constants.RuleIn)))
	}
	list := render(items)
	return &check{
		name:    constants.RuleIn,
		message: "must be one of " + list,
		negated: "must not be one of " + list,
		fn: func(value any) (bool, error) {
			for _, item := range items {
				if equalValues(value, item) {
					return true, nil
				}
			}
			return false, nil
		},
	}
}

type bounds struct {
	inclusive bool
}

// BoundOption controls whether the bounds of a comparison rule are part of
// the accepted range.
type BoundOption func(*bounds)

// Inclusive accepts values equal to the bound.
func Inclusive() BoundOption {
	return func(b *bounds) { b.inclusive = true }
}

// Exclusive rejects values equal to the bound.
func Exclusive() BoundOption {
	return func(b *bounds) { b.inclusive = false }
}

func newBounds(inclusive bool, opts []BoundOption) bounds {
	b := bounds{inclusive: inclusive}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Range passes when start <= value <= end. Pass Exclusive to make both
// bounds strict.
func Range[T cmp.Ordered](start, end T, opts ...BoundOption) Rule {
	b := newBounds(true, opts)
	between := fmt.Sprintf("fall between %v and %v", start, end)
	return &check{
		name:    constants.RuleRange,
		message: "must " + between,
		negated: "must not " + between,
		fn: func(value any) (bool, error) {
			lo, ok := compareValues(value, start)
			if !ok {
				return false, typeMismatch(constants.RuleRange, value, fmt.Sprintf("%T", start))
			}
			hi, _ := compareValues(value, end)
			if b.inclusive {
				return lo >= 0 && hi <= 0, nil
			}
			return lo > 0 && hi < 0, nil
		},
	}
}

// GreaterThan passes when value > bound, or value >= bound with Inclusive.
func GreaterThan[T cmp.Ordered](bound T, opts ...BoundOption) Rule {
	return boundRule(constants.RuleGreaterThan, "greater than", bound, 1, newBounds(false, opts))
}

// LessThan passes when value < bound, or value <= bound with Inclusive.
func LessThan[T cmp.Ordered](bound T, opts ...BoundOption) Rule {
	return boundRule(constants.RuleLessThan, "less than", bound, -1, newBounds(false, opts))
}

// boundRule builds a one-sided comparison; sign is the required sign of
// compare(value, bound).
func boundRule(name, relation string, bound any, sign int, b bounds) Rule {
	text := fmt.Sprintf("%s %v", relation, bound)
	if b.inclusive {
		text = fmt.Sprintf("%s or equal to %v", relation, bound)
	}
	return &check{
		name:    name,
		message: "must be " + text,
		negated: "must not be " + text,
		fn: func(value any) (bool, error) {
			c, ok := compareValues(value, bound)
			if !ok {
				return false, typeMismatch(name, value, fmt.Sprintf("%T", bound))
			}
			return c == sign || (b.inclusive && c == 0), nil
		},
	}
}
