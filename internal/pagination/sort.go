package pagination

import (
	"fmt"
	"strings"
)

// Sort orders accepted by ParseSort.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// sortPartsMax is the maximum number of parts in a sort expression (field:order).
const sortPartsMax = 2

// ParseSort parses a sort expression in the form "field" or "field:order",
// e.g. "name", "profile.age:desc". The order defaults to ascending.
//
//nolint:nonamedreturns // Named returns document the multi-value result.
func ParseSort(expression string) (field string, descending bool, err error) {
	parts := strings.Split(expression, ":")

	order := SortOrderAsc

	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", false, fmt.Errorf("%w: %q", ErrInvalidSortFormat, expression)
	}

	if field == "" {
		return "", false, ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", false, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order == SortOrderDesc, nil
}
