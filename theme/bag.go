// Package theme defines the property bag every theme is expressed in, the
// catalog of well-known properties, and the built-in default theme.
package theme

import (
	"fmt"

	"github.com/samber/lo"
)

// Bag is an open mapping from property name to a string, number, boolean or
// nested object. Keys outside the well-known catalog are carried through untouched.
type Bag map[string]any

// Clone returns a deep copy of the bag. Nested maps and slices are copied too.
func (b Bag) Clone() Bag {
	if b == nil {
		return nil
	}

	out := make(Bag, len(b))
	for k, v := range b {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Bag:
		return t.Clone()
	case map[string]any:
		return map[string]any(Bag(t).Clone())
	case []any:
		return lo.Map(t, func(item any, _ int) any { return cloneValue(item) })
	default:
		return v
	}
}

// Merge returns a new bag holding b with every key of over laid on top.
// The merge is shallow: a nested object in over replaces the one in b.
func (b Bag) Merge(over Bag) Bag {
	out := make(Bag, len(b)+len(over))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// MergeTruthy is Merge, except that a falsy value in over never replaces a
// truthy value already held by b.
func (b Bag) MergeTruthy(over Bag) Bag {
	out := b.Merge(nil)
	for k, v := range over {
		if !Truthy(v) && Truthy(out[k]) {
			continue
		}
		out[k] = v
	}
	return out
}

// Has reports whether key holds a truthy value.
func (b Bag) Has(key Property) bool {
	return Truthy(b[string(key)])
}

// String returns the value of key rendered as a string, or "" when it is absent or falsy.
func (b Bag) String(key Property) string {
	v, ok := b[string(key)]
	if !ok || !Truthy(v) {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// SetIfAbsent assigns value to key only when the key currently holds no truthy value.
// It reports whether an assignment happened.
func (b Bag) SetIfAbsent(key Property, value any) bool {
	if b.Has(key) || !Truthy(value) {
		return false
	}
	b[string(key)] = value
	return true
}

// Object returns the nested object stored under key, if any.
func (b Bag) Object(key string) (Bag, bool) {
	return AsBag(b[key])
}

// AsBag converts decoded nested objects into a Bag.
func AsBag(v any) (Bag, bool) {
	switch t := v.(type) {
	case Bag:
		return t, t != nil
	case map[string]any:
		return Bag(t), t != nil
	default:
		return nil, false
	}
}

// Truthy mirrors the "is this set" test applied throughout the engine:
// empty strings, zero numbers, false and nil all count as unset.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	case float32:
		return t != 0
	default:
		return true
	}
}
