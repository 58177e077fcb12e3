// Package calibration recovers trebuchet calibration values: the first
// and last digit of each line read as a two-digit number.
package calibration

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2023"
)

// MissingDigit reports a line with no digit in it.
type MissingDigit struct {
	Line int // 1-based
	Text string
}

func (e *MissingDigit) Error() string {
	return fmt.Sprintf("line %d: no digit in %q", e.Line, e.Text)
}

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at line[i]. Spelled-out digits are
// only recognised if spelled is set.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if d, ok := aoc.Digit(rune(line[i])); ok {
		return d, true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

func value(line string, spelled bool) (int, bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			first = d
			break
		}
	}
	if first < 0 {
		return 0, false
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			last = d
			break
		}
	}
	return 10*first + last, true
}

// Value returns 10*first+last where first and last are the first and
// last decimal digits of line. A line with a single digit d yields 11*d.
func Value(line string) (int, error) {
	v, ok := value(line, false)
	if !ok {
		return 0, &MissingDigit{Line: 1, Text: line}
	}
	return v, nil
}

// ValueSpelled is like Value but also accepts the words "one" through
// "nine" as digits. Words may overlap, so "twone" is 21.
func ValueSpelled(line string) (int, error) {
	v, ok := value(line, true)
	if !ok {
		return 0, &MissingDigit{Line: 1, Text: line}
	}
	return v, nil
}

// Sum returns the sum of the calibration values of lines.
func Sum(lines []string) (int, error) {
	return sum(lines, false)
}

// SumSpelled returns the sum of the spelled calibration values of lines.
func SumSpelled(lines []string) (int, error) {
	return sum(lines, true)
}

type result struct {
	v   int
	err error
}

// sum evaluates every line concurrently and reports the first failing
// line in input order.
func sum(lines []string, spelled bool) (int, error) {
	idx := make([]int, len(lines))
	for i := range idx {
		idx[i] = i
	}
	r := aoc.ParallelMapFold(idx, func(i int) result {
		v, ok := value(lines[i], spelled)
		if !ok {
			return result{err: &MissingDigit{Line: i + 1, Text: lines[i]}}
		}
		return result{v: v}
	}, func(acc, r result) result {
		if acc.err != nil {
			return acc
		}
		if r.err != nil {
			return r
		}
		return result{v: acc.v + r.v}
	}, result{})
	return r.v, r.err
}
