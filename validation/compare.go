package validation

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

type numberKind uint8

const (
	notNumber numberKind = iota
	signedNumber
	unsignedNumber
	floatNumber
)

// number is a numeric value of any Go kind.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func toNumber(v any) number {
	if v == nil {
		return number{}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: signedNumber, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: unsignedNumber, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return number{kind: floatNumber, f: rv.Float()}
	default:
		return number{}
	}
}

func (n number) float() float64 {
	switch n.kind {
	case signedNumber:
		return float64(n.i)
	case unsignedNumber:
		return float64(n.u)
	default:
		return n.f
	}
}

// compare orders n against o. It reports false when either is NaN.
func (n number) compare(o number) (int, bool) {
	switch {
	case n.kind == floatNumber || o.kind == floatNumber:
		a, b := n.float(), o.float()
		if math.IsNaN(a) || math.IsNaN(b) {
			return 0, false
		}
		return cmp.Compare(a, b), true
	case n.kind == signedNumber && o.kind == signedNumber:
		return cmp.Compare(n.i, o.i), true
	case n.kind == unsignedNumber && o.kind == unsignedNumber:
		return cmp.Compare(n.u, o.u), true
	case n.kind == signedNumber:
		if n.i < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(n.i), o.u), true
	default:
		if o.i < 0 {
			return 1, true
		}
		return cmp.Compare(n.u, uint64(o.i)), true
	}
}

func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// compareValues orders a against b. Numbers of any kind compare by value and
// strings lexically; any other combination cannot be ordered.
func compareValues(a, b any) (int, bool) {
	if an, bn := toNumber(a), toNumber(b); an.kind != notNumber && bn.kind != notNumber {
		return an.compare(bn)
	}
	as, aok := asString(a)
	bs, bok := asString(b)
	if aok && bok {
		return strings.Compare(as, bs), true
	}
	return 0, false
}

// equalValues reports whether a and b are equal. Numbers compare by value
// regardless of their Go kind; comparable values of the same type use ==;
// everything else, including structs holding uncomparable dynamic values,
// falls back to reflect.DeepEqual.
func equalValues(a, b any) bool {
	if an, bn := toNumber(a), toNumber(b); an.kind != notNumber && bn.kind != notNumber {
		c, ok := an.compare(bn)
		return ok && c == 0
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		if eq, ok := identical(a, b); ok {
			return eq
		}
	}
	return reflect.DeepEqual(a, b)
}

// identical compares a and b with ==. ok is false when == panics on an
// uncomparable value held in an interface field or element.
func identical(a, b any) (eq, ok bool) {
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return a == b, true
}

// render formats a rule parameter for messages, as JSON when possible.
func render(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// Item is an element of a collection with its original index or map key.
type Item struct {
	Key   any
	Value any
}

// Items lists the elements of a slice, array or map. Map entries are
// ordered by key. A nil value is an empty collection; any other value is
// not a collection and Items reports false.
func Items(container any) ([]Item, bool) {
	if container == nil {
		return nil, true
	}
	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]Item, rv.Len())
		for i := range items {
			items[i] = Item{Key: i, Value: rv.Index(i).Interface()}
		}
		return items, true
	case reflect.Map:
		items := make([]Item, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			items = append(items, Item{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
		}
		slices.SortFunc(items, func(a, b Item) int { return compareKeys(a.Key, b.Key) })
		return items, true
	default:
		return nil, false
	}
}

func compareKeys(a, b any) int {
	if c, ok := compareValues(a, b); ok {
		return c
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
