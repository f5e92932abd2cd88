// Package grid extracts symbols and multi-digit numbers from an engine
// schematic and works out which numbers touch which symbols.
package grid

import (
	"fmt"
	"sort"

	"aoc2023/internal/puzzle"

	"go.uber.org/zap"
)

// Grid is a read-only view over schematic rows. Rows may differ in length.
type Grid struct {
	rows    [][]rune
	markers MarkerSet
	strict  bool
	log     *zap.Logger
}

// Option configures a Grid.
type Option func(*Grid)

// WithMarkers replaces the default marker set.
func WithMarkers(m MarkerSet) Option {
	return func(g *Grid) { g.markers = m }
}

// WithStrict makes Invalid report glyphs that are neither digits, '.', nor
// markers. Without it such glyphs are silently ignored.
func WithStrict(strict bool) Option {
	return func(g *Grid) { g.strict = strict }
}

// WithLogger sets the observation sink.
func WithLogger(l *zap.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.log = l
		}
	}
}

// New builds a grid over rows.
func New(rows []string, opts ...Option) *Grid {
	g := &Grid{
		rows:    make([][]rune, len(rows)),
		markers: DefaultMarkers(),
		log:     zap.NewNop(),
	}
	for i, row := range rows {
		g.rows[i] = []rune(row)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Contains reports whether p addresses a cell of the grid.
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < len(g.rows) && p.Col >= 0 && p.Col < len(g.rows[p.Row])
}

// At returns the glyph at p.
func (g *Grid) At(p Position) (rune, bool) {
	if !g.Contains(p) {
		return 0, false
	}
	return g.rows[p.Row][p.Col], true
}

// Symbols returns every marker glyph in row-major order.
func (g *Grid) Symbols() []Symbol {
	var symbols []Symbol
	for row, line := range g.rows {
		for col, ch := range line {
			if g.markers.Has(ch) {
				symbols = append(symbols, Symbol{Position: Position{Row: row, Col: col}, Glyph: ch})
			}
		}
	}
	g.log.Debug("Symbols scanned", zap.Int("count", len(symbols)))
	return symbols
}

// Numbers returns every digit run, row by row, left to right. A run is sealed
// by a non-digit or by the end of its row, so numbers never span rows.
func (g *Grid) Numbers() []Number {
	var numbers []Number
	var pending []Numeral
	seal := func() {
		if len(pending) > 0 {
			numbers = append(numbers, Number{Numerals: pending})
			pending = nil
		}
	}

	for row, line := range g.rows {
		for col, ch := range line {
			if isDigit(ch) {
				pending = append(pending, Numeral{Position: Position{Row: row, Col: col}, Digit: int(ch - '0')})
				continue
			}
			seal()
		}
		seal()
	}
	g.log.Debug("Numbers scanned", zap.Int("count", len(numbers)))
	return numbers
}

// Invalid lists the cells a solve cannot use, ordered by line then column.
// Numbers too long for an int are always reported. Glyphs that are not a
// digit, '.', or marker are reported only when the grid is strict.
func (g *Grid) Invalid() []*puzzle.ParseError {
	var errs []*puzzle.ParseError
	if g.strict {
		for row, line := range g.rows {
			for col, ch := range line {
				if ch == '.' || isDigit(ch) || g.markers.Has(ch) {
					continue
				}
				errs = append(errs, &puzzle.ParseError{
					Line:   row + 1,
					Column: col + 1,
					Input:  string(line),
					Reason: fmt.Sprintf("unrecognized glyph %q", ch),
				})
			}
		}
	}

	for _, n := range g.Numbers() {
		if _, err := n.CheckedValue(); err != nil {
			first, _ := n.Span()
			errs = append(errs, &puzzle.ParseError{
				Line:   n.Row() + 1,
				Column: first + 1,
				Input:  string(g.rows[n.Row()]),
				Reason: fmt.Sprintf("number of %d digits", len(n.Numerals)),
				Err:    err,
			})
		}
	}

	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Line != errs[j].Line {
			return errs[i].Line < errs[j].Line
		}
		return errs[i].Column < errs[j].Column
	})
	return errs
}

// Validate returns the first entry of Invalid, if any.
func (g *Grid) Validate() error {
	if errs := g.Invalid(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
