package ruleset

import (
	"context"

	"github.com/ygrebnov/ruleset/internal/core"
)

// Validator is a checked schema bound to its evaluation options. It is
// immutable and safe for concurrent use.
type Validator struct {
	schema Schema
	svc    *core.Service
}

// New checks that schema is well formed and returns a Validator for it.
// A nil schema, an empty field name or a nil rule at any depth yields
// errors.ErrInvalidSchema.
func New(schema Schema, opts ...Option) (*Validator, error) {
	if err := core.CheckSchema(schema); err != nil {
		return nil, err
	}
	var o core.Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Validator{schema: schema, svc: core.NewService(o)}, nil
}

// Schema returns the schema v was built with.
func (v *Validator) Schema() Schema { return v.schema }

// Check validates a record, as Validate does.
func (v *Validator) Check(record map[string]any) (bool, Errors) {
	errs, _ := v.svc.Validate(context.Background(), v.schema, record)
	return errs.Empty(), errs
}

// Result validates any record accepted by ValidateContext.
func (v *Validator) Result(ctx context.Context, record any) (Result, error) {
	return validateWith(ctx, v.svc, v.schema, record)
}

// Validate validates record and returns nil when it is valid. Failures are
// returned as a *validation.Error listing every message by path; if the
// context is canceled, ctx.Err() is returned.
func (v *Validator) Validate(ctx context.Context, record any) error {
	res, err := v.Result(ctx, record)
	if err != nil {
		return err
	}
	return res.Errors.Err()
}
