package ruleset

import (
	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/errors"
)

const Namespace = constants.Namespace

// Sentinel errors re-exported for callers that only import this package.
// Use errors.Is to match.
var (
	ErrInvalidSchema    = errors.ErrInvalidSchema
	ErrInvalidRecord    = errors.ErrInvalidRecord
	ErrNilObject        = errors.ErrNilObject
	ErrValidationFailed = errors.ErrValidationFailed
	ErrInvalidRule      = errors.ErrInvalidRule
	ErrInvalidLength    = errors.ErrInvalidLength
	ErrNegativeLength   = errors.ErrNegativeLength
	ErrInvalidPattern   = errors.ErrInvalidPattern
	ErrNotNegatable     = errors.ErrNotNegatable
)
