// The aoc2023 command solves Advent of Code 2023 puzzles. Each part is
// first run against the sample in its doc comment, then against the
// real input; the answer is printed to stdout.
package main

import (
	_ "embed"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/calibration"
	"github.com/maisem/aoc2023/cubes"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	lines, err := s.Lines()
	if err != nil {
		return err
	}
	sum, err := calibration.Sum(lines)
	if err != nil {
		return err
	}
	return sum
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	lines, err := s.Lines()
	if err != nil {
		return err
	}
	sum, err := calibration.SumSpelled(lines)
	if err != nil {
		return err
	}
	return sum
}

func (s solver) games() ([]cubes.Game, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	games, err := cubes.ParseAll(lines)
	if err != nil {
		return nil, err
	}
	s.Debugf("parsed %d games", len(games))
	return games, nil
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	games, err := s.games()
	if err != nil {
		return err
	}
	return cubes.SumFeasible(games, cubes.DefaultBudget)
}

// want=2286
func (s solver) D2p2() any {
	games, err := s.games()
	if err != nil {
		return err
	}
	return cubes.SumPower(games)
}
