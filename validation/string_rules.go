package validation

import (
	"regexp"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

// Pattern passes when the value matches the regular expression expr.
// It panics if expr does not compile.
func Pattern(expr string) Rule {
	r, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return r
}

// NewPattern is like Pattern but returns errors.ErrInvalidPattern instead of
// panicking.
func NewPattern(expr string) (Rule, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errorc.With(
			errors.ErrInvalidPattern,
			errorc.String(errors.ErrorFieldParameter, expr),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	return PatternRegexp(re), nil
}

// PatternRegexp is Pattern for an already compiled expression.
func PatternRegexp(re *regexp.Regexp) Rule {
	if re == nil {
		panic(errorc.With(errors.ErrMissingParameter, errorc.String(errors.ErrorFieldRuleName, constants.RulePattern)))
	}
	return &check{
		name:    constants.RulePattern,
		message: "must match regex /" + re.String() + "/",
		negated: "must not match regex /" + re.String() + "/",
		fn: func(value any) (bool, error) {
			if b, ok := value.([]byte); ok {
				return re.Match(b), nil
			}
			s, ok := asString(value)
			if !ok {
				return false, typeMismatch(constants.RulePattern, value, "string")
			}
			return re.MatchString(s), nil
		},
	}
}

// Blank passes when the value is the empty string.
var Blank Rule = &check{
	name:    constants.RuleBlank,
	message: "must be an empty string",
	negated: "must not be an empty string",
	fn: func(value any) (bool, error) {
		s, ok := asString(value)
		return ok && s == "", nil
	},
}
