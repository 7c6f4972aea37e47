// Package collections provides small generic containers: a LIFO stack and an
// insertion-ordered set.
package collections
