package validation

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

// embedDepth bounds the walk through anonymous struct fields.
const embedDepth = 8

// InstanceOf passes when the dynamic type of the value is t, implements t
// when t is an interface, or embeds t.
func InstanceOf(t reflect.Type) Rule {
	if t == nil {
		panic(errorc.With(errors.ErrMissingParameter, errorc.String(errors.ErrorFieldRuleName, constants.RuleInstanceOf)))
	}
	return &check{
		name:    constants.RuleInstanceOf,
		message: "must be an instance of " + t.String() + " or its subtypes",
		negated: "must not be an instance of " + t.String() + " or its subtypes",
		fn: func(value any) (bool, error) {
			if value == nil {
				return false, nil
			}
			return derives(reflect.TypeOf(value), t, embedDepth), nil
		},
	}
}

// TypeOf is InstanceOf for the static type T.
func TypeOf[T any]() Rule {
	return InstanceOf(reflect.TypeOf((*T)(nil)).Elem())
}

// SubclassOf passes when the value is a reflect.Type that implements or
// embeds base. base itself does not pass.
func SubclassOf(base reflect.Type) Rule {
	if base == nil {
		panic(errorc.With(errors.ErrMissingParameter, errorc.String(errors.ErrorFieldRuleName, constants.RuleSubclassOf)))
	}
	return &check{
		name:    constants.RuleSubclassOf,
		message: "must be a subtype of " + base.String(),
		negated: "must not be a subtype of " + base.String(),
		fn: func(value any) (bool, error) {
			t, ok := value.(reflect.Type)
			if !ok || t == nil {
				return false, typeMismatch(constants.RuleSubclassOf, value, "reflect.Type")
			}
			return t != base && derives(t, base, embedDepth), nil
		},
	}
}

// IsSubtype is SubclassOf for the static type T.
func IsSubtype[T any]() Rule {
	return SubclassOf(reflect.TypeOf((*T)(nil)).Elem())
}

func derives(t, base reflect.Type, depth int) bool {
	if t == base {
		return true
	}
	if base.Kind() == reflect.Interface && t.Implements(base) {
		return true
	}
	if depth == 0 {
		return false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if derives(f.Type, base, depth-1) || derives(ft, base, depth-1) {
			return true
		}
	}
	return false
}
