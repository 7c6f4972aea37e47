package value

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Location names the TOML decoder gives to local date and time values.
const (
	tomlLocalDatetime = "datetime-local"
	tomlLocalDate     = "date-local"
	tomlLocalTime     = "time-local"
)

// ParseTOML decodes a TOML document into a map Value.
// Keys keep the order in which they appear in the document.
// Datetimes become strings: offset datetimes in RFC 3339, local ones without a zone.
func ParseTOML(data []byte) (Value, error) {
	var document map[string]any

	meta, err := toml.Decode(string(data), &document)
	if err != nil {
		return Null(), fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := meta.Keys()

	order := make(map[string]int, len(keys))
	for i, key := range keys {
		if _, seen := order[key.String()]; !seen {
			order[key.String()] = i
		}
	}

	return fromTOML(document, nil, order), nil
}

// fromTOML converts a decoded TOML value. path is the key of x without array
// indexes, which is how the decoder reports keys inside arrays of tables.
func fromTOML(x any, path toml.Key, order map[string]int) Value {
	switch typed := x.(type) {
	case map[string]any:
		return fromTOMLTable(typed, path, order)
	case []map[string]any:
		items := make([]Value, 0, len(typed))
		for _, table := range typed {
			items = append(items, fromTOMLTable(table, path, order))
		}

		return List(items...)
	case []any:
		items := make([]Value, 0, len(typed))
		for _, item := range typed {
			items = append(items, fromTOML(item, path, order))
		}

		return List(items...)
	case string:
		return String(typed)
	case bool:
		return Bool(typed)
	case int64:
		return Int(typed)
	case float64:
		return Float(typed)
	case time.Time:
		return String(formatTOMLTime(typed))
	default:
		// The decoder produces no other types; keep whatever JSON makes of it.
		v, _ := Of(typed)

		return v
	}
}

func fromTOMLTable(table map[string]any, path toml.Key, order map[string]int) Value {
	position := func(key string) int {
		if i, ok := order[childKey(path, key).String()]; ok {
			return i
		}

		return len(order)
	}

	keys := slices.SortedFunc(maps.Keys(table), func(a, b string) int {
		return cmp.Or(cmp.Compare(position(a), position(b)), strings.Compare(a, b))
	})

	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, Field{Key: key, Value: fromTOML(table[key], childKey(path, key), order)})
	}

	return Map(fields...)
}

func childKey(path toml.Key, key string) toml.Key {
	return append(slices.Clip(path), key)
}

func formatTOMLTime(t time.Time) string {
	switch t.Location().String() {
	case tomlLocalDatetime:
		return t.Format("2006-01-02T15:04:05.999999999")
	case tomlLocalDate:
		return t.Format(time.DateOnly)
	case tomlLocalTime:
		return t.Format("15:04:05.999999999")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
