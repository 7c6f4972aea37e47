package value

import (
	"math"
	"strconv"
	"strings"
)

// Magnitudes between which numbers are matched in fixed-point notation.
const (
	minFixedNumber = 1e-6
	maxFixedNumber = 1e21
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Supported kinds, in their ordering rank.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Field is a single key-value pair of a map Value.
type Field struct {
	Key   string
	Value Value
}

// Value is a tagged union over JSON-like data.
// The zero Value is null.
type Value struct {
	// kind is the active variant.
	kind Kind
	// boolean holds the KindBool payload.
	boolean bool
	// text holds the KindString payload or the decimal text of a KindNumber.
	text string
	// items holds the KindList payload.
	items []Value
	// keys holds map keys in insertion order.
	keys []string
	// fields holds map values by key.
	fields map[string]Value
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Number wraps the decimal text of a number, e.g. "42" or "-1.5".
func Number(text string) Value {
	return Value{kind: KindNumber, text: text}
}

// Float wraps a float64 using the shortest representation that round-trips.
func Float(f float64) Value {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// Int wraps an int64.
func Int(i int64) Value {
	return Number(strconv.FormatInt(i, 10))
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// List wraps a sequence of values.
func List(items ...Value) Value {
	return Value{kind: KindList, items: items}
}

// Map builds a map Value keeping the order of the given fields.
// A repeated key keeps its first position and its last value.
func Map(fields ...Field) Value {
	v := Value{
		kind:   KindMap,
		keys:   make([]string, 0, len(fields)),
		fields: make(map[string]Value, len(fields)),
	}

	for _, f := range fields {
		v.set(f.Key, f.Value)
	}

	return v
}

func (v *Value) set(key string, val Value) {
	if _, exists := v.fields[key]; !exists {
		v.keys = append(v.keys, key)
	}

	v.fields[key] = val
}

// Kind returns the active variant.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsPrimitive reports whether v is a bool, number or string.
func (v Value) IsPrimitive() bool {
	return v.kind == KindBool || v.kind == KindNumber || v.kind == KindString
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsFloat returns the numeric payload as float64.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

// Items returns the list elements. The slice must not be modified.
func (v Value) Items() []Value {
	return v.items
}

// Keys returns the map keys in insertion order. The slice must not be modified.
func (v Value) Keys() []string {
	return v.keys
}

// Field returns the value stored under key in a map Value.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindMap {
		return Null(), false
	}

	f, ok := v.fields[key]

	return f, ok
}

// Fields returns map entries in insertion order.
func (v Value) Fields() []Field {
	result := make([]Field, 0, len(v.keys))
	for _, k := range v.keys {
		result = append(result, Field{Key: k, Value: v.fields[k]})
	}

	return result
}

// Len returns the number of list items, map entries or string bytes.
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.text)
	case KindList:
		return len(v.items)
	case KindMap:
		return len(v.keys)
	default:
		return 0
	}
}

// IsEmpty reports whether v is null, an empty string, an empty list or an empty map.
// Numbers and booleans are never empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString, KindList, KindMap:
		return v.Len() == 0
	default:
		return false
	}
}

// String renders primitives as plain text and containers as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindNumber, KindString:
		return v.text
	default:
		var sb strings.Builder
		v.writeJSON(&sb)

		return sb.String()
	}
}

// Contains reports whether keyword occurs, case-insensitively, in any primitive
// reachable from v: primitives are matched on their text, lists on any element
// and maps on any value. Null never matches.
func (v Value) Contains(keyword string) bool {
	return v.contains(strings.ToLower(keyword))
}

func (v Value) contains(lowerKeyword string) bool {
	switch v.kind {
	case KindNumber:
		return strings.Contains(strings.ToLower(canonicalNumber(v.text)), lowerKeyword)
	case KindBool, KindString:
		return strings.Contains(strings.ToLower(v.String()), lowerKeyword)
	case KindList:
		for _, item := range v.items {
			if item.contains(lowerKeyword) {
				return true
			}
		}
	case KindMap:
		for _, k := range v.keys {
			if v.fields[k].contains(lowerKeyword) {
				return true
			}
		}
	}

	return false
}

// canonicalNumber renders number text the way JavaScript's String(n) does, so
// "1E5" reads "100000" and "1.50" reads "1.5". Unparsable text is kept as is.
func canonicalNumber(text string) string {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return text
	}

	if f == 0 {
		return "0"
	}

	if abs := math.Abs(f); abs >= minFixedNumber && abs < maxFixedNumber {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// Go writes "1e-07" and "1e+21" where JavaScript writes "1e-7" and "1e+21".
	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")

	return mantissa + "e" + exponent[:1] + strings.TrimLeft(exponent[1:], "0")
}

// Interface converts v back into plain Go values:
// nil, bool, float64, string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		if f, ok := v.AsFloat(); ok {
			return f
		}

		return v.text
	case KindString:
		return v.text
	case KindList:
		result := make([]any, len(v.items))
		for i, item := range v.items {
			result[i] = item.Interface()
		}

		return result
	case KindMap:
		result := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			result[k] = v.fields[k].Interface()
		}

		return result
	default:
		return nil
	}
}
