package value

import (
	"cmp"
	"strconv"
	"strings"
)

// PathSeparator separates the segments of a deep path.
const PathSeparator = "."

// Get resolves a dot-separated path against v.
// Map segments are looked up by key and list segments by decimal index.
// An empty path returns v itself. A missing segment yields (Null, false).
func (v Value) Get(path string) (Value, bool) {
	if path == "" {
		return v, true
	}

	current := v

	for _, segment := range strings.Split(path, PathSeparator) {
		next, ok := current.child(segment)
		if !ok {
			return Null(), false
		}

		current = next
	}

	return current, true
}

func (v Value) child(segment string) (Value, bool) {
	switch v.kind {
	case KindMap:
		return v.Field(segment)
	case KindList:
		index, err := strconv.Atoi(segment)
		if err != nil || index < 0 || index >= len(v.items) {
			return Null(), false
		}

		return v.items[index], true
	default:
		return Null(), false
	}
}

// DeepGet resolves a dot-separated path against arbitrary data and returns
// the result as plain Go values (see Value.Interface).
// It reports false when data cannot be encoded or the path does not exist.
func DeepGet(path string, data any) (any, bool) {
	v, err := Of(data)
	if err != nil {
		return nil, false
	}

	found, ok := v.Get(path)
	if !ok {
		return nil, false
	}

	return found.Interface(), true
}

// Compare orders two values. Values of different kinds are ordered by kind
// (null < bool < number < string < list < map); numbers compare numerically,
// strings lexically, false before true, and containers by their JSON text.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case KindNull:
		return 0
	case KindBool:
		switch {
		case a.boolean == b.boolean:
			return 0
		case !a.boolean:
			return -1
		default:
			return 1
		}
	case KindNumber:
		af, aok := a.AsFloat()
		bf, bok := b.AsFloat()

		if aok && bok {
			return cmp.Compare(af, bf)
		}

		return cmp.Compare(a.text, b.text)
	case KindString:
		return cmp.Compare(a.text, b.text)
	default:
		return cmp.Compare(a.String(), b.String())
	}
}
