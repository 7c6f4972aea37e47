package pagination

import "errors"

// Static error definitions for better error handling.
var (
	// ErrUnsupportedStructure indicates that the input is not a slice, sequence, set, map or record.
	ErrUnsupportedStructure = errors.New("unsupported data structure")
	// ErrInvalidSortFormat indicates a sort expression that is not "field" or "field:order".
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order'")
	// ErrEmptySortField indicates a sort expression without a field.
	ErrEmptySortField = errors.New("sort field cannot be empty")
	// ErrInvalidSortOrder indicates a sort order other than asc or desc.
	ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")
)
