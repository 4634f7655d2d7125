package core

import (
	"reflect"
	"strings"
)

const tagJSON = "json"

// AsRecord converts v into a record. Maps with string keys are copied (a
// map[string]any is returned as is); structs and pointers to structs yield
// their exported fields, named by their json tag when present. Embedded
// structs are flattened; fields of the outer struct win over promoted ones.
// Nested struct values are kept as they are.
func AsRecord(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, true
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		rec := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			rec[iter.Key().String()] = iter.Value().Interface()
		}
		return rec, true
	case reflect.Struct:
		rec := make(map[string]any, rv.NumField())
		structFields(rv, rec)
		return rec, true
	default:
		return nil, false
	}
}

// structFields copies the exported fields of rv into rec, skipping names
// already set.
func structFields(rv reflect.Value, rec map[string]any) {
	typ := rv.Type()
	var embedded []reflect.Value
	for i := 0; i < rv.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" { // Skip unexported fields
			continue
		}
		name, skip := fieldName(field)
		if skip {
			continue
		}
		fv := rv.Field(i)

		// Defer untagged embedded structs so outer fields take precedence.
		if field.Anonymous && name == "" {
			ev := fv
			if ev.Kind() == reflect.Ptr {
				if ev.IsNil() {
					continue
				}
				ev = ev.Elem()
			}
			if ev.Kind() == reflect.Struct {
				embedded = append(embedded, ev)
				continue
			}
		}
		if name == "" {
			name = field.Name
		}
		if _, exists := rec[name]; !exists {
			rec[name] = fv.Interface()
		}
	}
	for _, ev := range embedded {
		structFields(ev, rec)
	}
}

// fieldName returns the json tag name of field, or "" when the tag does not
// set one. skip is true for `json:"-"`.
func fieldName(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get(tagJSON)
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}
