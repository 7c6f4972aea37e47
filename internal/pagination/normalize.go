package pagination

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

// Valuer is implemented by set-like collections that expose their elements
// in iteration order, such as collections.Set.
type Valuer[T any] interface {
	Values() []T
}

// Normalize converts a supported structure into an ordered slice of items:
//   - []T is returned as is;
//   - slices and arrays of any element type assignable to T are copied in order,
//     so []map[string]any normalizes with T = any;
//   - iter.Seq[T] is collected in yield order; the sequence must yield T exactly;
//   - a Valuer[T] (set) yields its Values;
//   - map[string]T and maps with any other key type yield their values only,
//     in the map's own iteration order. Value types assignable to T are accepted.
//
// Any other input, nil included, fails with ErrUnsupportedStructure.
func Normalize[T any](data any) ([]T, error) {
	switch d := data.(type) {
	case nil:
		return nil, ErrUnsupportedStructure
	case []T:
		return d, nil
	case iter.Seq[T]:
		return slices.Collect(d), nil
	case func(yield func(T) bool):
		return slices.Collect(iter.Seq[T](d)), nil
	case Valuer[T]:
		return d.Values(), nil
	case map[string]T:
		return slices.Collect(maps.Values(d)), nil
	}

	return normalizeReflected[T](data)
}

// normalizeReflected handles lists and maps whose type is not known statically.
// Only the element type has to be assignable to T.
func normalizeReflected[T any](data any) ([]T, error) {
	source := reflect.ValueOf(data)

	switch source.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedStructure, data)
	}

	if !source.Type().Elem().AssignableTo(reflect.TypeFor[T]()) {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedStructure, data)
	}

	result := make([]T, 0, source.Len())

	if source.Kind() == reflect.Map {
		entries := source.MapRange()
		for entries.Next() {
			result = append(result, asItem[T](entries.Value()))
		}

		return result, nil
	}

	for i := range source.Len() {
		result = append(result, asItem[T](source.Index(i)))
	}

	return result, nil
}

// asItem converts an element to T. A nil interface element fails the assertion
// and is kept as the zero value.
func asItem[T any](element reflect.Value) T {
	item, _ := element.Interface().(T)

	return item
}
