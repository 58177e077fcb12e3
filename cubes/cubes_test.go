package cubes

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maisem/aoc2023"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green`

func sampleGames(t *testing.T) []Game {
	t.Helper()
	games, err := ParseAll(strings.Split(sample, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	return games
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Game
	}{
		{
			line: "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
			want: Game{ID: 1, Sets: []Counts{
				{Blue: 3, Red: 4},
				{Blue: 6, Green: 2, Red: 1},
				{Green: 2},
			}},
		},
		{
			line: "Game 42: 1 red",
			want: Game{ID: 42, Sets: []Counts{{Red: 1}}},
		},
		{
			// Repeated colors within a set add up.
			line: "Game 7: 2 red, 3 red, 1 blue; 4 green, 4 green",
			want: Game{ID: 7, Sets: []Counts{{Blue: 1, Red: 5}, {Green: 8}}},
		},
		{
			line: "Game 4294967295: 3000000000 red",
			want: Game{ID: 4294967295, Sets: []Counts{{Red: 3000000000}}},
		},
		{
			line: "Game 3:1 blue ;\t2 green ,3 red  ",
			want: Game{ID: 3, Sets: []Counts{{Blue: 1}, {Green: 2, Red: 3}}},
		},
	}
	for _, tt := range tests {
		got, err := Parse(tt.line)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		line   string
		offset int
		token  string
	}{
		{"", 0, ""},
		{"game 1: 1 red", 0, "game"},
		{"Gam 1: 1 red", 0, "Gam"},
		{"Game x: 1 red", 5, "x"},
		{"Game 1 1 red", 6, " "},
		{"Game 1:", 7, ""},
		{"Game 1: 1 purple", 10, "purple"},
		{"Game 1: 1 Red", 10, "Red"},
		{"Game 1: 1red", 9, "red"},
		{"Game 1: 1 red,", 14, ""},
		{"Game 1: 1 red;", 14, ""},
		{"Game 1: 1 red; ; 2 blue", 15, ";"},
		{"Game 1: 1 red 2 blue", 14, "2"},
		{"Game 1: red", 8, "red"},
		{"Game 99999999999: 1 red", 5, "99999999999"},
		{"Game 4294967296: 1 red", 5, "4294967296"},
		{"Game 1: 4294967296 red", 8, "4294967296"},
	}
	for _, tt := range tests {
		g, err := Parse(tt.line)
		var mg *MalformedGame
		if !errors.As(err, &mg) {
			t.Errorf("Parse(%q) = %v, %v; want *MalformedGame", tt.line, g, err)
			continue
		}
		if mg.Offset != tt.offset || mg.Token != tt.token {
			t.Errorf("Parse(%q) error at %d %q; want %d %q (%v)", tt.line, mg.Offset, mg.Token, tt.offset, tt.token, err)
		}
	}
}

func TestParseAllLongLine(t *testing.T) {
	line := "Game 1: 1 red" + strings.Repeat(", 1 red", 20000)
	games, err := ParseAll(aoc.Lines([]byte(line + "\n")))
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 || games[0].Sets[0].Red != 20001 {
		t.Errorf("ParseAll = %d games; want one game with 20001 red", len(games))
	}
}

func TestParseAll(t *testing.T) {
	games := sampleGames(t)
	if len(games) != 5 {
		t.Fatalf("got %d games; want 5", len(games))
	}
	for i, g := range games {
		if g.ID != i+1 {
			t.Errorf("games[%d].ID = %d; want %d", i, g.ID, i+1)
		}
	}

	_, err := ParseAll([]string{"Game 1: 1 red", "Game 2: 1 yellow"})
	var mg *MalformedGame
	if !errors.As(err, &mg) || mg.Line != 2 {
		t.Errorf("ParseAll err = %v; want *MalformedGame on line 2", err)
	}

	_, err = ParseAll([]string{"Game 1: 1 red", "Game 2: 1 blue", "Game 1: 2 red"})
	if !errors.As(err, &mg) || mg.Line != 3 || !strings.Contains(mg.Reason, "line 1") {
		t.Errorf("ParseAll err = %v; want duplicate id on line 3", err)
	}
}

func TestFeasible(t *testing.T) {
	want := []bool{true, true, false, false, true}
	for i, g := range sampleGames(t) {
		if got := g.Feasible(DefaultBudget); got != want[i] {
			t.Errorf("game %d Feasible = %v; want %v", g.ID, got, want[i])
		}
	}
}

func TestFeasiblePerSetMatchesMinSet(t *testing.T) {
	budgets := []Counts{
		DefaultBudget,
		{},
		{Blue: 6, Green: 3, Red: 4},
		{Blue: 100, Green: 100, Red: 100},
		{Blue: 15, Green: 13, Red: 20},
	}
	for _, b := range budgets {
		for _, g := range sampleGames(t) {
			if got, want := g.Feasible(b), g.MinSet().Within(b); got != want {
				t.Errorf("game %d budget %+v: Feasible = %v; MinSet().Within = %v", g.ID, b, got, want)
			}
		}
	}
}

func TestSumFeasible(t *testing.T) {
	if got := SumFeasible(sampleGames(t), DefaultBudget); got != 8 {
		t.Errorf("SumFeasible = %d; want 8", got)
	}
	if got := SumFeasible(nil, DefaultBudget); got != 0 {
		t.Errorf("SumFeasible(nil) = %d; want 0", got)
	}
}

func TestMinSet(t *testing.T) {
	want := []Counts{
		{Blue: 6, Green: 2, Red: 4},
		{Blue: 4, Green: 3, Red: 1},
		{Blue: 6, Green: 13, Red: 20},
		{Blue: 15, Green: 3, Red: 14},
		{Blue: 2, Green: 3, Red: 6},
	}
	var got []Counts
	for _, g := range sampleGames(t) {
		got = append(got, g.MinSet())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MinSet mismatch (-want +got):\n%s", diff)
	}
}

func TestSumPower(t *testing.T) {
	if got := SumPower(sampleGames(t)); got.Cmp(big.NewInt(2286)) != 0 {
		t.Errorf("SumPower = %v; want 2286", got)
	}
	if got := SumPower(nil); got.Sign() != 0 {
		t.Errorf("SumPower(nil) = %v; want 0", got)
	}
}

func TestPowerLargeCounts(t *testing.T) {
	g, err := Parse("Game 1: 4294967295 blue, 4294967295 green, 4294967295 red")
	if err != nil {
		t.Fatal(err)
	}
	// (2^32-1)^3
	want, _ := new(big.Int).SetString("79228162458924105385300197375", 10)
	if got := g.MinSet().Power(); got.Cmp(want) != 0 {
		t.Errorf("Power = %v; want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	lines := append(strings.Split(sample, "\n"),
		"Game 7: 2 red, 3 red, 1 blue; 4 green",
		"Game 8: 0 red; 0 green, 0 blue",
	)
	for _, line := range lines {
		g, err := Parse(line)
		if err != nil {
			t.Fatal(err)
		}
		s := g.String()
		g2, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if !g.Equal(g2) {
			t.Errorf("round trip of %q via %q: got %+v; want %+v", line, s, g2, g)
		}
		if s2 := g2.String(); s2 != s {
			t.Errorf("String not canonical: %q then %q", s, s2)
		}
	}
}

func TestString(t *testing.T) {
	g := Game{ID: 1, Sets: []Counts{{Blue: 3, Red: 4}, {}, {Green: 2}}}
	if got, want := g.String(), "Game 1: 3 blue, 4 red; 0 blue; 2 green"; got != want {
		t.Errorf("String = %q; want %q", got, want)
	}
}

func TestHash(t *testing.T) {
	a := Game{ID: 1, Sets: []Counts{{Blue: 1}}}
	b := Game{ID: 1, Sets: []Counts{{Blue: 1}}}
	c := Game{ID: 1, Sets: []Counts{{Green: 1}}}
	if a.Hash() != b.Hash() {
		t.Error("equal games hash differently")
	}
	if a.Equal(c) {
		t.Error("different games compare equal")
	}
}
