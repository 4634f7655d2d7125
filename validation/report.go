package validation

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Entry is one element of a field's error list: a Message, a nested Errors
// for a nested schema or conditional, or ItemErrors for Each over a schema.
type Entry interface {
	entry()
}

// Message is a single failure message.
type Message string

func (Message) entry() {}

// Errors maps field names to their non-empty lists of entries.
type Errors map[string][]Entry

func (Errors) entry() {}

// ItemError holds the errors of one collection element, keyed by its index
// or map key.
type ItemError struct {
	Key    any
	Errors Errors
}

// ItemErrors lists failing collection elements in collection order.
// Passing elements are omitted.
type ItemErrors []ItemError

func (ItemErrors) entry() {}

// Add appends entries to field. Adding no entries is a no-op, so a field
// present in e always has at least one entry.
func (e Errors) Add(field string, entries ...Entry) {
	if len(entries) == 0 {
		return
	}
	e[field] = append(e[field], entries...)
}

// Len returns the number of fields with errors.
func (e Errors) Len() int { return len(e) }

// Empty reports whether there are no errors.
func (e Errors) Empty() bool { return len(e) == 0 }

// Has reports whether field has errors.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the entries of field.
func (e Errors) Get(field string) []Entry { return e[field] }

// Messages returns the plain messages of field, skipping nested entries.
func (e Errors) Messages(field string) []string {
	var out []string
	for _, entry := range e[field] {
		if m, ok := entry.(Message); ok {
			out = append(out, string(m))
		}
	}
	return out
}

// Fields returns the names of fields with errors in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for k := range e {
		fields = append(fields, k)
	}
	slices.Sort(fields)
	return fields
}

// Flatten lists every message with its path, e.g. "foo", "foo.dep" or
// "bar[1].qux". Fields are visited in sorted order.
func (e Errors) Flatten() []FieldError {
	var out []FieldError
	e.flatten("", &out)
	return out
}

func (e Errors) flatten(prefix string, out *[]FieldError) {
	for _, field := range e.Fields() {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		for _, entry := range e[field] {
			switch v := entry.(type) {
			case Message:
				*out = append(*out, FieldError{Path: path, Message: string(v)})
			case Errors:
				v.flatten(path, out)
			case ItemErrors:
				for _, item := range v {
					item.Errors.flatten(fmt.Sprintf("%s[%v]", path, item.Key), out)
				}
			}
		}
	}
}

// Err returns nil when e is empty and an *Error holding the flattened
// messages otherwise.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	ve := &Error{}
	for _, fe := range e.Flatten() {
		ve.Add(fe)
	}
	return ve
}

// String joins the flattened messages with "; ".
func (e Errors) String() string {
	flat := e.Flatten()
	parts := make([]string, len(flat))
	for i, fe := range flat {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

// MarshalJSON exports e as nested objects: messages as strings, nested
// errors as objects and item errors as objects keyed by index.
//
//	{"bar": [{"1": {"qux": ["must be present"]}}], "foo": ["must be present"]}
func (e Errors) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string][]Entry(e))
}

// MarshalJSON exports items as an object keyed by element index or key, in
// collection order.
func (items ItemErrors) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(fmt.Sprint(item.Key))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(item.Errors)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// Result is the outcome of validating a record.
type Result struct {
	Valid  bool
	Errors Errors
}

// NewResult builds a Result; it is valid when errs is empty.
func NewResult(errs Errors) Result {
	if errs == nil {
		errs = Errors{}
	}
	return Result{Valid: errs.Empty(), Errors: errs}
}
