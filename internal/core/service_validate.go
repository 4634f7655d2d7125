package core

import (
	"context"

	"github.com/ygrebnov/ruleset/constants"
	"github.com/ygrebnov/ruleset/validation"
)

// Validate applies schema to record and returns the errors of every field
// that failed. Fields are visited in sorted order. The only error returned
// is the context's.
func (s *Service) Validate(
	ctx context.Context,
	schema validation.Schema,
	record map[string]any,
) (validation.Errors, error) {
	errs := validation.Errors{}
	for _, field := range schema.Fields() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := s.validateField(ctx, schema[field], field, record)
		if err != nil {
			return nil, err
		}
		errs.Add(field, entries...)
	}
	return errs, nil
}

// validateField evaluates the spec of a single field.
func (s *Service) validateField(
	ctx context.Context,
	spec validation.Spec,
	key string,
	record map[string]any,
) ([]validation.Entry, error) {
	value, present := record[key]

	switch sp := spec.(type) {
	case validation.Rules:
		if !present {
			// An absent field is optional unless Required is listed.
			if sp.HasRequired() {
				return []validation.Entry{validation.Message(s.presence)}, nil
			}
			return nil, nil
		}
		var entries []validation.Entry
		for _, r := range sp {
			if r == nil {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			e, err := s.applyRule(ctx, r, value, record)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e...)
		}
		return entries, nil

	case validation.Rule:
		if sp.Kind() == validation.KindRequired {
			if !present {
				return []validation.Entry{validation.Message(s.presence)}, nil
			}
			return nil, nil
		}
		return s.applyRule(ctx, sp, value, record)

	default:
		return nil, nil
	}
}

// applyRule dispatches r on its kind. value is the field value and record
// the record holding it.
func (s *Service) applyRule(
	ctx context.Context,
	r validation.Rule,
	value any,
	record map[string]any,
) ([]validation.Entry, error) {
	switch r.Kind() {
	case validation.KindRequired:
		return nil, nil

	case validation.KindSchema:
		if nested, ok := r.(validation.Schema); ok {
			return s.validateNested(ctx, nested, value)
		}

	case validation.KindConditional:
		if c, ok := r.(validation.Conditional); ok {
			// A condition that cannot be evaluated counts as not met.
			if !validation.Apply(c.Condition(), value).Passed {
				return nil, nil
			}
			errs, err := s.Validate(ctx, c.Then(), record)
			if err != nil || errs.Empty() {
				return nil, err
			}
			return []validation.Entry{errs}, nil
		}

	case validation.KindEach:
		if it, ok := r.(validation.Iteration); ok && it.Schema() != nil {
			return s.validateItems(ctx, it.Schema(), value)
		}
	}

	if c, ok := r.(validation.Checker); ok {
		return s.applyCheck(c, value), nil
	}
	return []validation.Entry{validation.Message(s.fallback)}, nil
}

// applyCheck runs a value check, recovering panics, and converts a failed
// Outcome into entries.
func (s *Service) applyCheck(c validation.Checker, value any) []validation.Entry {
	o := validation.Apply(c, value)
	if o.Passed {
		return nil
	}
	if len(o.Details) > 0 {
		return o.Details
	}
	return []validation.Entry{validation.Message(o.FailureMessage(s.fallback))}
}

// validateNested validates value as a record. Values that are not records
// are validated as an empty record.
func (s *Service) validateNested(
	ctx context.Context,
	schema validation.Schema,
	value any,
) ([]validation.Entry, error) {
	errs, err := s.Validate(ctx, schema, recordOrEmpty(value))
	if err != nil || errs.Empty() {
		return nil, err
	}
	return []validation.Entry{errs}, nil
}

// validateItems validates every element of a collection as a record and
// reports failing elements by their original index or key.
func (s *Service) validateItems(
	ctx context.Context,
	schema validation.Schema,
	value any,
) ([]validation.Entry, error) {
	items, ok := validation.Items(value)
	if !ok {
		return []validation.Entry{validation.Message(constants.MessageCollection)}, nil
	}

	var failed validation.ItemErrors
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		errs, err := s.Validate(ctx, schema, recordOrEmpty(item.Value))
		if err != nil {
			return nil, err
		}
		if !errs.Empty() {
			failed = append(failed, validation.ItemError{Key: item.Key, Errors: errs})
		}
	}
	if len(failed) == 0 {
		return nil, nil
	}
	return []validation.Entry{failed}, nil
}

func recordOrEmpty(value any) map[string]any {
	if rec, ok := AsRecord(value); ok {
		return rec
	}
	return map[string]any{}
}
