package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/ygrebnov/ruleset/validation"
)

func validate(t *testing.T, s *Service, schema v.Schema, record map[string]any) v.Errors {
	t.Helper()
	errs, err := s.Validate(context.Background(), schema, record)
	require.NoError(t, err)
	return errs
}

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	s := NewService(Options{})
	assert.Equal(t, "must be present", s.presence)
	assert.Equal(t, "failed validation", s.fallback)

	s = NewService(Options{PresenceMessage: "is required", FallbackMessage: "is invalid"})
	assert.Equal(t, "is required", s.presence)
	assert.Equal(t, "is invalid", s.fallback)
}

func TestService_Validate_Presence(t *testing.T) {
	t.Parallel()

	s := NewService(Options{})

	tests := []struct {
		name   string
		schema v.Schema
		record map[string]any
		want   v.Errors
	}{
		{
			name:   "single required absent",
			schema: v.Schema{"foo": v.Required},
			record: map[string]any{},
			want:   v.Errors{"foo": {v.Message("must be present")}},
		},
		{
			name:   "single required present with nil value",
			schema: v.Schema{"foo": v.Required},
			record: map[string]any{"foo": nil},
			want:   v.Errors{},
		},
		{
			name:   "sequence with required absent reports only presence",
			schema: v.Schema{"foo": v.Rules{v.Required, v.Length(5, 0), v.Truthy}},
			record: map[string]any{},
			want:   v.Errors{"foo": {v.Message("must be present")}},
		},
		{
			name:   "sequence without required is optional",
			schema: v.Schema{"foo": v.Rules{v.Truthy, v.Length(5, 0)}},
			record: map[string]any{"bar": 1},
			want:   v.Errors{},
		},
		{
			name:   "single rule applies to missing value",
			schema: v.Schema{"foo": v.Truthy},
			record: map[string]any{},
			want:   v.Errors{"foo": {v.Message("must be True-equivalent value")}},
		},
		{
			name:   "nil record",
			schema: v.Schema{"foo": v.Required},
			record: nil,
			want:   v.Errors{"foo": {v.Message("must be present")}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate(t, s, tt.schema, tt.record))
		})
	}

	custom := NewService(Options{PresenceMessage: "is required"})
	assert.Equal(t, []string{"is required"}, validate(t, custom, v.Schema{"a": v.Required}, nil).Messages("a"))
}

func TestService_Validate_SequenceOrder(t *testing.T) {
	t.Parallel()

	s := NewService(Options{})
	errs := validate(t, s, v.Schema{
		"foo": v.Rules{v.Required, v.Length(5, 0), v.TypeOf[[]any]()},
	}, map[string]any{"foo": 5})

	assert.Equal(t, []string{
		"must be at least 5 elements in length",
		"must be an instance of []interface {} or its subtypes",
	}, errs.Messages("foo"))
}

func TestService_Validate_Nested(t *testing.T) {
	t.Parallel()

	s := NewService(Options{})
	schema := v.Schema{
		"foo": v.Schema{"bar": v.Rules{v.Required, v.Equals(1)}},
	}

	assert.Empty(t, validate(t, s, schema, map[string]any{"foo": map[string]any{"bar": 1}}))

	errs := validate(t, s, schema, map[string]any{"foo": map[string]any{"bar": 2}})
	assert.Equal(t, v.Errors{"foo": {v.Errors{"bar": {v.Message("must be equal to 1")}}}}, errs)

	// Missing or non-mapping values are validated as an empty record.
	want := v.Errors{"foo": {v.Errors{"bar": {v.Message("must be present")}}}}
	assert.Equal(t, want, validate(t, s, schema, map[string]any{}))
	assert.Equal(t, want, validate(t, s, schema, map[string]any{"foo": 42}))

	type inner struct {
		Bar int `json:"bar"`
	}
	assert.Empty(t, validate(t, s, schema, map[string]any{"foo": inner{Bar: 1}}))
	assert.Empty(t, validate(t, s, schema, map[string]any{"foo": &inner{Bar: 1}}))
}

func TestService_Validate_Conditional(t *testing.T) {
	t.Parallel()

	s := NewService(Options{})
	schema := v.Schema{
		"foo": v.If(v.Equals(1), v.Then(v.Schema{"bar": v.Required})),
	}

	assert.Empty(t, validate(t, s, schema, map[string]any{"foo": 1, "bar": "x"}))
	assert.Empty(t, validate(t, s, schema, map[string]any{"foo": 2}))
	assert.Equal(t,
		v.Errors{"foo": {v.Errors{"bar": {v.Message("must be present")}}}},
		validate(t, s, schema, map[string]any{"foo": 1}),
	)

	// A condition that cannot be evaluated is not met.
	lengthCond := v.Schema{"foo": v.If(v.Length(1, 0), v.Then(v.Schema{"bar": v.Required}))}
	assert.Empty(t, validate(t, s, lengthCond, map[string]any{"foo": 5}))
}

func TestService_Validate_EachSchema(t *testing.T) {
	t.Parallel()

	s := NewService(Options{})
	schema := v.Schema{
		"bar": v.Each(v.Schema{
			"qux": v.Rules{v.Required, v.GreaterThan(3)},
			"zot": v.Required,
		}),
	}

	errs := validate(t, s, schema, map[string]any{
		"bar": []any{
			map[string]any{"qux": 3},
			map[string]any{"qux": 4, "zot": 5},
			map[string]any{"qux": 4},
		},
	})
	assert.Equal(t, v.Errors{"bar": {v.ItemErrors{
		{Key: 0, Errors: v.Errors{
			"qux": {v.Message("must be greater than 3")},
			"zot": {v.Message("must be present")},
		}},
		{Key: 2, Errors: v.Errors{"zot": {v.Message("must be present")}}},
	}}}, errs)

	assert.Empty(t, validate(t, s, schema, map[string]any{"bar": []any{}}))
	assert.Equal(t,
		[]v.Entry{v.Message("must be a collection of mappings")},
		validate(t, s, schema, map[string]any{"bar": 5}).Get("bar"),
	)

	byKey := validate(t, s, schema, map[string]any{"bar": map[string]any{
		"y": map[string]any{"qux": 1, "zot": 1},
		"x": map[string]any{"qux": 9, "zot": 1},
	}})
	items, ok := byKey.Get("bar")[0].(v.ItemErrors)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "y", items[0].Key)
}

func TestService_Validate_EachRulesAndFallback(t *testing.T) {
	t.Parallel()

	s := NewService(Options{FallbackMessage: "is invalid"})
	noMessage := v.Func("nomsg", func(any) (bool, error) { return false, nil }, v.WithMessage(""))
	boom := v.Func("boom", func(any) (bool, error) { panic("kaput") }, v.WithMessage(""))

	errs := validate(t, s, v.Schema{
		"foo":  v.Each(v.Range(0, 10)),
		"nope": noMessage,
		"boom": boom,
	}, map[string]any{"foo": []int{1, 11, 12}, "nope": 1, "boom": 1})

	assert.Equal(t, []string{
		"all values must fall between 0 and 10",
		"all values must fall between 0 and 10",
	}, errs.Messages("foo"))
	assert.Equal(t, []string{"is invalid"}, errs.Messages("nope"))
	assert.Equal(t, []string{"is invalid"}, errs.Messages("boom"))
}

func TestService_Validate_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errs, err := NewService(Options{}).Validate(ctx, v.Schema{"a": v.Required}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, errs)
}

func TestService_Validate_FieldsInSortedOrder(t *testing.T) {
	t.Parallel()

	s := NewService(Options{})
	errs := validate(t, s, v.Schema{"b": v.Required, "a": v.Required, "c": v.Truthy}, map[string]any{"c": 1})
	assert.Equal(t, []string{"a", "b"}, errs.Fields())

	flat := errs.Flatten()
	require.Len(t, flat, 2)
	assert.Equal(t, "a", flat[0].Path)
}
