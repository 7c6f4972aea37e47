// Package hashing generates unique identifiers and string digests.
package hashing
