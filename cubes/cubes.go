// Package cubes parses and scores Cube Conundrum game records such as
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
package cubes

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/maisem/aoc2023"
	"tailscale.com/util/deephash"
)

// Counts is a number of cubes per color. It describes either one draw
// from the bag or the cubes available in it.
type Counts struct {
	Blue, Green, Red int
}

// DefaultBudget is the bag the elf asks about.
var DefaultBudget = Counts{Blue: 14, Green: 13, Red: 12}

// Within reports whether c fits within budget in every color.
func (c Counts) Within(budget Counts) bool {
	return c.Blue <= budget.Blue && c.Green <= budget.Green && c.Red <= budget.Red
}

// Power is the product of the three counts. Each count may be up to
// 2^32-1, so the product can exceed an int64.
func (c Counts) Power() *big.Int {
	p := big.NewInt(int64(c.Blue))
	p.Mul(p, big.NewInt(int64(c.Green)))
	return p.Mul(p, big.NewInt(int64(c.Red)))
}

func (c Counts) String() string {
	var parts []string
	for _, cc := range []struct {
		n     int
		color string
	}{{c.Blue, "blue"}, {c.Green, "green"}, {c.Red, "red"}} {
		if cc.n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", cc.n, cc.color))
		}
	}
	if len(parts) == 0 {
		return "0 blue"
	}
	return strings.Join(parts, ", ")
}

// Game is one parsed record: its id and the draws shown, in order.
type Game struct {
	ID   int
	Sets []Counts
}

// String returns g in canonical record form. Parsing the result yields
// a game equal to g.
func (g Game) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Game %d:", g.ID)
	for i, s := range g.Sets {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteByte(' ')
		sb.WriteString(s.String())
	}
	return sb.String()
}

var hashGame = deephash.HasherForType[Game]()

// Hash returns a digest of the game's id and sets.
func (g Game) Hash() deephash.Sum {
	return hashGame(&g)
}

// Equal reports whether g and o have the same id and sets.
func (g Game) Equal(o Game) bool {
	return g.Hash() == o.Hash()
}

// Feasible reports whether every set of g could have been drawn from a
// bag holding budget. Each set is checked on its own.
func (g Game) Feasible(budget Counts) bool {
	for _, s := range g.Sets {
		if !s.Within(budget) {
			return false
		}
	}
	return true
}

// MinSet returns the fewest cubes of each color that make every set of
// g possible.
func (g Game) MinSet() Counts {
	var m Counts
	for _, s := range g.Sets {
		m.Blue = max(m.Blue, s.Blue)
		m.Green = max(m.Green, s.Green)
		m.Red = max(m.Red, s.Red)
	}
	return m
}

// SumFeasible returns the sum of the ids of the games feasible under
// budget.
func SumFeasible(games []Game, budget Counts) int {
	var ids []int
	for _, g := range games {
		if g.Feasible(budget) {
			ids = append(ids, g.ID)
		}
	}
	return aoc.Sum(ids...)
}

// SumPower returns the sum of the powers of each game's minimum set.
func SumPower(games []Game) *big.Int {
	var sum big.Int
	for _, g := range games {
		sum.Add(&sum, g.MinSet().Power())
	}
	return &sum
}
