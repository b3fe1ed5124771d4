// Package utils contains helper structures and functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
