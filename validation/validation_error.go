package validation

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ygrebnov/ruleset/errors"
)

// FieldError is a single validation failure at a path such as "bar[1].qux".
// It unwraps to errors.ErrValidationFailed.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e FieldError) Unwrap() error { return errors.ErrValidationFailed }

// MarshalJSON exports FieldError as an object with path and message fields.
func (e FieldError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	}{
		Path:    e.Path,
		Message: e.Message,
	})
}

// Error accumulates multiple FieldError entries.
// It implements error and unwraps to the joined field errors so errors.Is
// matches errors.ErrValidationFailed.
type Error struct {
	issues []FieldError
}

// Add appends a FieldError.
func (ve *Error) Add(fe FieldError) {
	if ve == nil {
		return
	}
	ve.issues = append(ve.issues, fe)
}

// Len returns the number of accumulated issues.
func (ve *Error) Len() int {
	if ve == nil {
		return 0
	}
	return len(ve.issues)
}

// Empty reports whether there are no issues.
func (ve *Error) Empty() bool { return ve.Len() == 0 }

// Error returns a human-readable, multi-line description of all issues.
func (ve *Error) Error() string {
	if ve == nil {
		return ""
	}
	switch len(ve.issues) {
	case 0:
		return ""
	case 1:
		return ve.issues[0].Error()
	default:
		var b strings.Builder
		b.WriteString("validation failed (\n")
		for i, fe := range ve.issues {
			b.WriteString("  ")
			b.WriteString(fe.Error())
			if i < len(ve.issues)-1 {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n)")
		return b.String()
	}
}

// Unwrap joins the field errors.
func (ve *Error) Unwrap() error {
	if ve == nil {
		return nil
	}
	errs := make([]error, len(ve.issues))
	for i, fe := range ve.issues {
		errs[i] = fe
	}
	return stderrors.Join(errs...)
}

// ForField returns all issues for a given path.
func (ve *Error) ForField(path string) []FieldError {
	if ve == nil {
		return nil
	}
	var out []FieldError
	for _, fe := range ve.issues {
		if fe.Path == path {
			out = append(out, fe)
		}
	}
	return out
}

// Fields returns the paths that have issues (unique, in order of first occurrence).
func (ve *Error) Fields() []string {
	if ve == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, fe := range ve.issues {
		if _, ok := seen[fe.Path]; !ok {
			seen[fe.Path] = struct{}{}
			out = append(out, fe.Path)
		}
	}
	return out
}

// MarshalJSON exports Error as a map of path -> list of messages.
//
//	{
//	  "bar[1].qux": ["must be present"],
//	  "foo":        ["must be at least 5 elements in length"]
//	}
func (ve *Error) MarshalJSON() ([]byte, error) {
	if ve == nil {
		return []byte("null"), nil
	}
	by := make(map[string][]string, len(ve.issues))
	for _, fe := range ve.issues {
		by[fe.Path] = append(by[fe.Path], fe.Message)
	}
	return json.Marshal(by)
}
