// Package numutil provides parity checks, rounding and human-friendly number formatting.
package numutil
