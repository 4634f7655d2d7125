package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors for rule construction misuses. Use errors.Is to match.
var (
	ErrInvalidRule      = namespace.NewError("rule must have non-empty name and non-nil function")
	ErrNilRule          = namespace.NewError("nil rule")
	ErrInvalidLength    = namespace.NewError("length must have a non-zero minimum or maximum")
	ErrNegativeLength   = namespace.NewError("length cannot have negative bounds")
	ErrInvalidPattern   = namespace.NewError("invalid pattern")
	ErrMissingParameter = namespace.NewError("missing rule parameter")
	ErrNotNegatable     = namespace.NewError("rule cannot be negated")
	ErrInvalidSchema    = namespace.NewError("invalid schema")
)

// Errors produced while rules run. The evaluator converts them into
// validation failures; they never reach callers of Validate.
var (
	ErrRuleTypeMismatch = namespace.NewError("rule type mismatch")
	ErrRulePanicked     = namespace.NewError("rule panicked")
)

// Errors returned by the public entry points.
var (
	ErrInvalidRecord    = namespace.NewError("record must be a map with string keys or a struct")
	ErrNilObject        = namespace.NewError("nil object")
	ErrValidationFailed = namespace.NewError("validation failed")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentRule   = "rule"
	keySegmentSchema = "schema"
)

// Exported structured error field keys
var (
	ErrorFieldRuleName  = newKey("name", keySegmentRule)       // ruleset.rule.name
	ErrorFieldFieldType = newKey("field_type", keySegmentRule) // ruleset.rule.field_type
	ErrorFieldValueType = newKey("value_type", keySegmentRule) // ruleset.rule.value_type
	ErrorFieldParameter = newKey("parameter", keySegmentRule)  // ruleset.rule.parameter
)

var (
	ErrorFieldSchemaField = newKey("field", keySegmentSchema) // ruleset.schema.field
)

var (
	ErrorFieldRecordType = newKey("record_type")
	ErrorFieldCause      = newKey("cause")
)
