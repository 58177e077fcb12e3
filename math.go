package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of nums.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Digit returns the value of the decimal digit r, or false if r is not
// one.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Int returns the int value of the string. It panics if s is not an
// integer.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
