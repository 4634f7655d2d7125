package ruleset

import (
	"context"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/ruleset/errors"
)

// Binding is a reusable Validator for values of type T, which must be a
// struct or a map with string keys. Struct fields are named by their json
// tag, or by the Go field name when there is none.
type Binding[T any] struct {
	v *Validator
}

// NewBinding constructs a Binding for the type parameter T.
func NewBinding[T any](schema Schema, opts ...Option) (*Binding[T], error) {
	// Obtain the reflect.Type for T. The zero value of *T is never dereferenced.
	var zero *T
	typ := reflect.TypeOf(zero).Elem()
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct && (typ.Kind() != reflect.Map || typ.Key().Kind() != reflect.String) {
		return nil, errorc.With(errors.ErrInvalidRecord, errorc.String(errors.ErrorFieldRecordType, typ.String()))
	}

	v, err := New(schema, opts...)
	if err != nil {
		return nil, err
	}
	return &Binding[T]{v: v}, nil
}

// Validate validates obj with the provided context. If validation fails, a
// *validation.Error is returned; if the context is canceled, ctx.Err() is
// returned.
func (b *Binding[T]) Validate(ctx context.Context, obj *T) error {
	if obj == nil {
		return errors.ErrNilObject
	}
	return b.v.Validate(ctx, obj)
}

// Result validates obj and returns the full error report.
func (b *Binding[T]) Result(ctx context.Context, obj *T) (Result, error) {
	if obj == nil {
		return Result{}, errors.ErrNilObject
	}
	return b.v.Result(ctx, obj)
}
