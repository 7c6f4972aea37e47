package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnexpectedToken indicates malformed JSON input.
var ErrUnexpectedToken = errors.New("unexpected JSON token")

// Of converts x into a Value.
// Values and common primitives are wrapped directly; anything else goes
// through its JSON encoding, so struct fields are keyed by their JSON names.
func Of(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return Null(), nil
		}

		return *t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	}

	data, err := json.Marshal(x)
	if err != nil {
		return Null(), fmt.Errorf("failed to encode %T: %w", x, err)
	}

	return Parse(data)
}

// MustOf is like Of but panics on error. It is meant for tests and literals.
func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(err)
	}

	return v
}

// Parse decodes JSON text into a Value, preserving object key order.
func Parse(data []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	v, err := decode(decoder)
	if err != nil {
		return Null(), err
	}

	if _, err = decoder.Token(); !errors.Is(err, io.EOF) {
		return Null(), fmt.Errorf("%w: trailing data", ErrUnexpectedToken)
	}

	return v, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	v.writeJSON(&buf)

	return buf.Bytes(), nil
}

func decode(decoder *json.Decoder) (Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return Null(), err
	}

	switch t := token.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeList(decoder)
		case '{':
			return decodeMap(decoder)
		}
	}

	return Null(), fmt.Errorf("%w: %v", ErrUnexpectedToken, token)
}

func decodeList(decoder *json.Decoder) (Value, error) {
	items := make([]Value, 0)

	for decoder.More() {
		item, err := decode(decoder)
		if err != nil {
			return Null(), err
		}

		items = append(items, item)
	}

	// Consume the closing bracket.
	if _, err := decoder.Token(); err != nil {
		return Null(), err
	}

	return List(items...), nil
}

func decodeMap(decoder *json.Decoder) (Value, error) {
	result := Map()

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return Null(), err
		}

		key, ok := token.(string)
		if !ok {
			return Null(), fmt.Errorf("%w: object key %v", ErrUnexpectedToken, token)
		}

		item, err := decode(decoder)
		if err != nil {
			return Null(), err
		}

		result.set(key, item)
	}

	// Consume the closing brace.
	if _, err := decoder.Token(); err != nil {
		return Null(), err
	}

	return result, nil
}

type stringWriter interface {
	io.Writer
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

func (v Value) writeJSON(w stringWriter) {
	switch v.kind {
	case KindNull:
		_, _ = w.WriteString("null")
	case KindBool, KindNumber:
		_, _ = w.WriteString(v.String())
	case KindString:
		writeQuoted(w, v.text)
	case KindList:
		_ = w.WriteByte('[')

		for i, item := range v.items {
			if i > 0 {
				_ = w.WriteByte(',')
			}

			item.writeJSON(w)
		}

		_ = w.WriteByte(']')
	case KindMap:
		_ = w.WriteByte('{')

		for i, k := range v.keys {
			if i > 0 {
				_ = w.WriteByte(',')
			}

			writeQuoted(w, k)
			_ = w.WriteByte(':')
			v.fields[k].writeJSON(w)
		}

		_ = w.WriteByte('}')
	}
}

func writeQuoted(w stringWriter, s string) {
	// json.Marshal never fails for strings.
	quoted, _ := json.Marshal(s)
	_, _ = w.Write(quoted)
}

var (
	_ json.Marshaler   = Value{}
	_ json.Unmarshaler = (*Value)(nil)
	_ stringWriter     = (*strings.Builder)(nil)
)
