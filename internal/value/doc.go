// Package value provides a tagged representation of JSON-like data
// (null, bool, number, string, list and ordered map) together with
// dot-path lookups, deep keyword matching and ordering helpers.
// Arbitrary Go values are converted through their JSON encoding, so structs
// are addressed by their JSON field names.
package value
