package cubes

import (
	"fmt"
	"math"
)

// MalformedGame reports a record that does not follow the grammar
//
//	game       := "Game " uint ":" set (";" set)*
//	set        := cube_count ("," cube_count)*
//	cube_count := ws* uint " " color ws*
//	color      := "blue" | "green" | "red"
type MalformedGame struct {
	Line   int    // 1-based; 0 when parsing a single record
	Offset int    // byte offset into the record
	Token  string // offending text, empty at end of line
	Reason string
}

func (e *MalformedGame) Error() string {
	tok := "end of line"
	if e.Token != "" {
		tok = fmt.Sprintf("%q", e.Token)
	}
	if e.Line == 0 {
		return fmt.Sprintf("malformed game at offset %d (%s): %s", e.Offset, tok, e.Reason)
	}
	return fmt.Sprintf("line %d: malformed game at offset %d (%s): %s", e.Line, e.Offset, tok, e.Reason)
}

// parser is a recursive-descent cursor over one record.
type parser struct {
	s   string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return &MalformedGame{
		Offset: p.pos,
		Token:  p.token(),
		Reason: fmt.Sprintf(format, args...),
	}
}

// token returns the text from the cursor up to the next separator.
func (p *parser) token() string {
	end := p.pos
	for end < len(p.s) {
		switch p.s[end] {
		case ' ', '\t', ',', ';', ':':
			if end == p.pos {
				end++
			}
			return p.s[p.pos:end]
		}
		end++
	}
	return p.s[p.pos:end]
}

func (p *parser) eof() bool { return p.pos >= len(p.s) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) literal(lit string) error {
	if len(p.s)-p.pos < len(lit) || p.s[p.pos:p.pos+len(lit)] != lit {
		return p.errorf("expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

func (p *parser) spaces() {
	for c := p.peek(); c == ' ' || c == '\t'; c = p.peek() {
		p.pos++
	}
}

// number parses an unsigned decimal that fits in 32 bits.
func (p *parser) number() (int, error) {
	start := p.pos
	var n uint64
	for c := p.peek(); c >= '0' && c <= '9'; c = p.peek() {
		n = n*10 + uint64(c-'0')
		if n > math.MaxUint32 {
			p.pos = start
			return 0, p.errorf("number out of range")
		}
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected number")
	}
	return int(n), nil
}

// color parses a color name and returns the field of Counts it names.
func (p *parser) color() (func(*Counts) *int, error) {
	start := p.pos
	for c := p.peek(); c >= 'a' && c <= 'z'; c = p.peek() {
		p.pos++
	}
	switch p.s[start:p.pos] {
	case "blue":
		return func(c *Counts) *int { return &c.Blue }, nil
	case "green":
		return func(c *Counts) *int { return &c.Green }, nil
	case "red":
		return func(c *Counts) *int { return &c.Red }, nil
	}
	p.pos = start
	return nil, p.errorf("unknown color")
}

// set parses one draw. Counts of a color repeated within the draw add
// up.
func (p *parser) set() (Counts, error) {
	var c Counts
	for {
		p.spaces()
		n, err := p.number()
		if err != nil {
			return Counts{}, err
		}
		if err := p.literal(" "); err != nil {
			return Counts{}, err
		}
		field, err := p.color()
		if err != nil {
			return Counts{}, err
		}
		*field(&c) += n
		p.spaces()
		if p.peek() != ',' {
			return c, nil
		}
		p.pos++
	}
}

func (p *parser) game() (Game, error) {
	if err := p.literal("Game "); err != nil {
		return Game{}, err
	}
	id, err := p.number()
	if err != nil {
		return Game{}, err
	}
	if err := p.literal(":"); err != nil {
		return Game{}, err
	}
	g := Game{ID: id}
	for {
		s, err := p.set()
		if err != nil {
			return Game{}, err
		}
		g.Sets = append(g.Sets, s)
		if p.peek() != ';' {
			break
		}
		p.pos++
	}
	if !p.eof() {
		return Game{}, p.errorf("expected \",\", \";\" or end of line")
	}
	return g, nil
}

// Parse parses one game record. It either returns the whole game or a
// *MalformedGame.
func Parse(line string) (Game, error) {
	p := &parser{s: line}
	return p.game()
}

// ParseAll parses one record per line. Line numbers in errors start at
// 1. A game id seen twice is an error.
func ParseAll(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	seen := make(map[int]int, len(lines))
	for i, line := range lines {
		g, err := Parse(line)
		if err != nil {
			err.(*MalformedGame).Line = i + 1
			return nil, err
		}
		if prev, ok := seen[g.ID]; ok {
			return nil, &MalformedGame{
				Line:   i + 1,
				Offset: len("Game "),
				Token:  fmt.Sprint(g.ID),
				Reason: fmt.Sprintf("duplicate game id, first seen on line %d", prev),
			}
		}
		seen[g.ID] = i + 1
		games = append(games, g)
	}
	return games, nil
}
