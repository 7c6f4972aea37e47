// Package pagination provides an in-memory paginator over heterogeneous
// collections. Slices, sequences, sets, keyed maps and string-keyed records
// are normalized into one ordered slice, which can then be paged, searched
// (by predicate, by dot-path field or by deep match), sorted and reset.
//
// A Paginator is a plain value holder: every method runs to completion
// synchronously and it is not safe for concurrent mutation.
package pagination
