package core

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/errors"
	"github.com/ygrebnov/ruleset/validation"
)

// CheckSchema reports errors.ErrInvalidSchema for a nil schema, an empty
// field name or a nil spec or rule, at any depth. The offending field path
// is attached to the error.
func CheckSchema(schema validation.Schema) error {
	if schema == nil {
		return errors.ErrInvalidSchema
	}
	return checkSchema(schema, "")
}

func checkSchema(schema validation.Schema, prefix string) error {
	for _, field := range schema.Fields() {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		if field == "" {
			return invalidSchema(path, errors.ErrInvalidRule)
		}

		switch sp := schema[field].(type) {
		case nil:
			return invalidSchema(path, errors.ErrNilRule)
		case validation.Rules:
			for _, r := range sp {
				if err := checkRule(r, path); err != nil {
					return err
				}
			}
		case validation.Rule:
			if err := checkRule(sp, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkRule(r validation.Rule, path string) error {
	if r == nil {
		return invalidSchema(path, errors.ErrNilRule)
	}
	switch v := r.(type) {
	case validation.Schema:
		if v == nil {
			return invalidSchema(path, errors.ErrNilRule)
		}
		return checkSchema(v, path)
	case validation.Conditional:
		return checkSchema(v.Then(), path)
	case validation.Iteration:
		if s := v.Schema(); s != nil {
			return checkSchema(s, path)
		}
	}
	return nil
}

func invalidSchema(path string, cause error) error {
	return errorc.With(
		errors.ErrInvalidSchema,
		errorc.String(errors.ErrorFieldSchemaField, path),
		errorc.Error(errors.ErrorFieldCause, cause),
	)
}
