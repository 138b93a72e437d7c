// Package fields represents schema-less frontmatter values.
//
// Vault notes carry arbitrary key/value frontmatter. Rather than passing raw
// interface{} data around, every value is wrapped in a small tagged union so
// the fields the assembler understands (type, ends, describe) stay
// type-checked while unknown fields survive untouched.
package fields

import (
	"encoding/json"
	"time"

	"github.com/aidanlsb/vaultgraph/internal/wikilink"
)

// Value is a parsed frontmatter value.
type Value struct {
	value interface{}
}

// String creates a string Value.
func String(s string) Value {
	return Value{value: s}
}

// Number creates a number Value.
func Number(n float64) Value {
	return Value{value: n}
}

// Bool creates a boolean Value.
func Bool(b bool) Value {
	return Value{value: b}
}

// Ref creates a reference Value pointing at a note identity.
func Ref(target string) Value {
	return Value{value: refValue{target}}
}

// Array creates an array Value.
func Array(items []Value) Value {
	return Value{value: items}
}

// Map creates a mapping Value.
func Map(m map[string]Value) Value {
	return Value{value: m}
}

// Null creates a null Value.
func Null() Value {
	return Value{value: nil}
}

// refValue distinguishes wikilink-shaped strings from plain strings.
type refValue struct{ target string }

// FromYAML converts a decoded YAML value into a Value.
//
// Strings that are exactly a wikilink literal ("[[target]]" or
// "[[target|display]]") become Ref values carrying the bare target.
func FromYAML(v interface{}) Value {
	switch v := v.(type) {
	case string:
		if target, _, ok := wikilink.ParseExact(v); ok {
			return Ref(target)
		}
		return String(v)
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case float64:
		return Number(v)
	case bool:
		return Bool(v)
	case time.Time:
		// yaml.v3 decodes unquoted ISO dates as time.Time; keep the written form.
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return String(v.Format("2006-01-02"))
		}
		return String(v.Format(time.RFC3339))
	case []interface{}:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			items = append(items, FromYAML(item))
		}
		return Array(items)
	case map[string]interface{}:
		m := make(map[string]Value, len(v))
		for key, item := range v {
			m[key] = FromYAML(item)
		}
		return Map(m)
	case nil:
		return Null()
	default:
		return Null()
	}
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.value == nil
}

// AsString returns the value as a string, if possible.
// Ref values yield their bare target.
func (v Value) AsString() (string, bool) {
	switch x := v.value.(type) {
	case string:
		return x, true
	case refValue:
		return x.target, true
	}
	return "", false
}

// AsNumber returns the value as a number, if possible.
func (v Value) AsNumber() (float64, bool) {
	n, ok := v.value.(float64)
	return n, ok
}

// AsBool returns the value as a boolean, if possible.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.value.(bool)
	return b, ok
}

// AsArray returns the value as an array, if possible.
func (v Value) AsArray() ([]Value, bool) {
	arr, ok := v.value.([]Value)
	return arr, ok
}

// AsMap returns the value as a mapping, if possible.
func (v Value) AsMap() (map[string]Value, bool) {
	m, ok := v.value.(map[string]Value)
	return m, ok
}

// AsRef returns the reference target, if this is a Ref value.
func (v Value) AsRef() (string, bool) {
	r, ok := v.value.(refValue)
	if !ok {
		return "", false
	}
	return r.target, true
}

// IsRef reports whether this is a reference value.
func (v Value) IsRef() bool {
	_, ok := v.value.(refValue)
	return ok
}

// AsStringList flattens the value into a list of strings: an array yields its
// string-able elements, a single string or ref yields a one-element list.
func (v Value) AsStringList() []string {
	if arr, ok := v.AsArray(); ok {
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.AsString(); ok {
				out = append(out, s)
			}
		}
		return out
	}
	if s, ok := v.AsString(); ok {
		return []string{s}
	}
	return nil
}

// Raw returns the underlying value with union wrappers unwrapped.
func (v Value) Raw() interface{} {
	switch x := v.value.(type) {
	case refValue:
		return x.target
	case []Value:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = item.Raw()
		}
		return out
	case map[string]Value:
		out := make(map[string]interface{}, len(x))
		for key, item := range x {
			out[key] = item.Raw()
		}
		return out
	default:
		return x
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}
