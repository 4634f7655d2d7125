package ruleset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/ruleset/validation"
)

type bindUser struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Tags  []string `json:"tags,omitempty"`
	Age   int
}

var bindUserSchema = Schema{
	"name":  Rules{validation.Required, validation.Length(1, 16)},
	"email": Rules{validation.Required, validation.Pattern(`^[^@\s]+@[^@\s]+$`)},
	"tags":  validation.Each(validation.Not(validation.Blank)),
	"Age":   validation.Range(0, 150),
}

func TestNewBinding_NonRecordType(t *testing.T) {
	b, err := NewBinding[int](bindUserSchema)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrInvalidRecord)

	b2, err := NewBinding[[]bindUser](bindUserSchema)
	assert.Nil(t, b2)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestNewBinding_InvalidSchema(t *testing.T) {
	b, err := NewBinding[bindUser](nil)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestNewBinding_MapType(t *testing.T) {
	b, err := NewBinding[map[string]any](Schema{"a": validation.Required})
	require.NoError(t, err)

	assert.NoError(t, b.Validate(context.Background(), &map[string]any{"a": 1}))
	assert.ErrorIs(t, b.Validate(context.Background(), &map[string]any{}), ErrValidationFailed)
}

func TestBinding_Validate(t *testing.T) {
	b, err := NewBinding[bindUser](bindUserSchema)
	require.NoError(t, err)

	t.Run("nil object", func(t *testing.T) {
		assert.ErrorIs(t, b.Validate(context.Background(), nil), ErrNilObject)
		_, err := b.Result(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNilObject)
	})

	t.Run("valid object", func(t *testing.T) {
		u := bindUser{Name: "ann", Email: "ann@example.com", Tags: []string{"a"}, Age: 30}
		assert.NoError(t, b.Validate(context.Background(), &u))
	})

	t.Run("nil context falls back to background", func(t *testing.T) {
		u := bindUser{Name: "ann", Email: "ann@example.com"}
		//nolint:staticcheck // exercising nil context handling
		assert.NoError(t, b.Validate(nil, &u))
	})

	t.Run("invalid object", func(t *testing.T) {
		u := bindUser{Email: "nope", Tags: []string{"x", ""}, Age: 200}
		err := b.Validate(context.Background(), &u)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)

		var ve *validation.Error
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, []string{"Age", "email", "name", "tags"}, ve.Fields())
		assert.Equal(t, "must fall between 0 and 150", ve.ForField("Age")[0].Message)
		assert.Equal(t, "all values must not be an empty string", ve.ForField("tags")[0].Message)
	})

	t.Run("result", func(t *testing.T) {
		res, err := b.Result(context.Background(), &bindUser{Name: "ann", Email: "x@y"})
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := b.Validate(ctx, &bindUser{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
