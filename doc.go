// Package ruleset validates records against declarative schemas.
//
// A Schema maps field names to a single rule, an ordered validation.Rules
// sequence or a nested Schema. Rules are built with the constructors of the
// validation package and composed with Not, If and Each:
//
//	schema := ruleset.Schema{
//		"name": validation.Rules{validation.Required, validation.Length(1, 32)},
//		"tags": validation.Each(validation.Pattern(`^[a-z]+$`)),
//	}
//	valid, errs := ruleset.Validate(schema, record)
//
// Validation never stops at the first failure: the returned validation.Errors
// holds every failing field with its messages in rule order, nested errors
// for nested schemas and per-item errors for Each over a schema.
package ruleset
