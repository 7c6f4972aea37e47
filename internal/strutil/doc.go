// Package strutil provides string casing, truncation and validation helpers.
package strutil
