// Package utils provides small helpers shared across the application:
// file name sanitizing, retry pauses, content type checks, User-Agent providers
// and generation of sequential series identifiers.
package utils
