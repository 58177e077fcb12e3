package aoc

import "fmt"

// IOError reports a puzzle input that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading input %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
