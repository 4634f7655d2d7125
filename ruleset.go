package ruleset

import (
	"context"
	"fmt"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/errors"
	"github.com/ygrebnov/ruleset/internal/core"
	"github.com/ygrebnov/ruleset/validation"
)

// Aliases for the schema and report types so that most callers only import
// this package and validation for the rule constructors.
type (
	Schema = validation.Schema
	Rules  = validation.Rules
	Rule   = validation.Rule
	Errors = validation.Errors
	Result = validation.Result
)

var defaultService = core.NewService(core.Options{})

// Validate applies schema to record. It reports whether the record is valid
// and the errors of every failing field; valid is true iff errs is empty.
func Validate(schema Schema, record map[string]any) (valid bool, errs Errors) {
	// A background context never cancels, so Validate cannot fail.
	errs, _ = defaultService.Validate(context.Background(), schema, record)
	return errs.Empty(), errs
}

// ValidateContext is Validate for any record: a map with string keys, a
// struct or a pointer to a struct. It returns ctx.Err() if ctx is canceled
// and errors.ErrInvalidRecord if record cannot be converted.
func ValidateContext(ctx context.Context, schema Schema, record any) (Result, error) {
	return validateWith(ctx, defaultService, schema, record)
}

func validateWith(ctx context.Context, svc *core.Service, schema Schema, record any) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rec, err := toRecord(record)
	if err != nil {
		return Result{}, err
	}
	errs, err := svc.Validate(ctx, schema, rec)
	if err != nil {
		return Result{}, err
	}
	return validation.NewResult(errs), nil
}

func toRecord(record any) (map[string]any, error) {
	rec, ok := core.AsRecord(record)
	if !ok {
		return nil, errorc.With(
			errors.ErrInvalidRecord,
			errorc.String(errors.ErrorFieldRecordType, fmt.Sprintf("%T", record)),
		)
	}
	return rec, nil
}
