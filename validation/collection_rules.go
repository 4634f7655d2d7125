package validation

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/ygrebnov/errorc"
	"golang.org/x/text/unicode/norm"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

// Length checks the length of strings, slices, arrays, maps and channels.
// A zero bound is unset: Length(3, 0) requires at least 3 elements and
// Length(0, 3) at most 3. Strings are measured in characters after NFC
// normalization. It panics on invalid bounds, see NewLength.
func Length(minimum, maximum int) Rule {
	r, err := NewLength(minimum, maximum)
	if err != nil {
		panic(err)
	}
	return r
}

// NewLength is like Length but returns errors.ErrInvalidLength when both
// bounds are zero and errors.ErrNegativeLength when either is negative.
func NewLength(minimum, maximum int) (Rule, error) {
	if minimum == 0 && maximum == 0 {
		return nil, errors.ErrInvalidLength
	}
	if minimum < 0 || maximum < 0 {
		return nil, errorc.With(
			errors.ErrNegativeLength,
			errorc.String(errors.ErrorFieldParameter, fmt.Sprintf("%d, %d", minimum, maximum)),
		)
	}

	var message, negated string
	switch {
	case minimum > 0 && maximum > 0:
		message = fmt.Sprintf("must be between %d and %d elements in length", minimum, maximum)
		negated = fmt.Sprintf("must not be between %d and %d elements in length", minimum, maximum)
	case minimum > 0:
		message = fmt.Sprintf("must be at least %d elements in length", minimum)
		negated = fmt.Sprintf("must be at most %d elements in length", minimum-1)
	default:
		message = fmt.Sprintf("must be at most %d elements in length", maximum)
		negated = fmt.Sprintf("must be at least %d elements in length", maximum+1)
	}

	return &check{
		name:    constants.RuleLength,
		message: message,
		negated: negated,
		fn: func(value any) (bool, error) {
			n, ok := lengthOf(value)
			if !ok {
				return false, typeMismatch(constants.RuleLength, value, "string or collection")
			}
			if minimum > 0 && n < minimum {
				return false, nil
			}
			if maximum > 0 && n > maximum {
				return false, nil
			}
			return true, nil
		},
	}, nil
}

func lengthOf(v any) (int, bool) {
	if s, ok := asString(v); ok {
		return utf8.RuneCountInString(norm.NFC.String(s)), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// Contains passes when a string value contains item as a substring, a
// slice or array value has an element equal to item, or a map value has
// item as a key.
func Contains(item any) Rule {
	text := fmt.Sprint(item)
	return &check{
		name:    constants.RuleContains,
		message: "must contain " + text,
		negated: "must not contain " + text,
		fn: func(value any) (bool, error) {
			if s, ok := asString(value); ok {
				sub, isString := asString(item)
				if !isString {
					sub = text
				}
				return strings.Contains(norm.NFC.String(s), norm.NFC.String(sub)), nil
			}
			if value == nil {
				return false, typeMismatch(constants.RuleContains, value, "string or collection")
			}
			rv := reflect.ValueOf(value)
			switch rv.Kind() {
			case reflect.Slice, reflect.Array:
				for i := range rv.Len() {
					if equalValues(rv.Index(i).Interface(), item) {
						return true, nil
					}
				}
				return false, nil
			case reflect.Map:
				iter := rv.MapRange()
				for iter.Next() {
					if equalValues(iter.Key().Interface(), item) {
						return true, nil
					}
				}
				return false, nil
			default:
				return false, typeMismatch(constants.RuleContains, value, "string or collection")
			}
		},
	}
}
