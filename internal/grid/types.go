package grid

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"aoc2023/internal/puzzle"
)

// ErrNumberOverflow is reported for a digit run too long to fit in an int.
var ErrNumberOverflow = fmt.Errorf("%w: number overflows int", puzzle.ErrMalformed)

// Position identifies a cell. Coordinates are signed so that neighbours of
// row 0 or column 0 can be expressed before being filtered out.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Numeral is a single digit read from the grid.
type Numeral struct {
	Position
	Digit int
}

// Number is a maximal horizontal run of numerals on one row, left to right.
type Number struct {
	Numerals []Numeral
}

// Row returns the row the number sits on.
func (n Number) Row() int { return n.Numerals[0].Row }

// Span returns the first and last column of the number.
func (n Number) Span() (first, last int) {
	return n.Numerals[0].Col, n.Numerals[len(n.Numerals)-1].Col
}

// CheckedValue evaluates the digits most significant first, failing with
// ErrNumberOverflow instead of wrapping.
func (n Number) CheckedValue() (int, error) {
	v := 0
	for _, d := range n.Numerals {
		if v > (math.MaxInt-d.Digit)/10 {
			return 0, ErrNumberOverflow
		}
		v = v*10 + d.Digit
	}
	return v, nil
}

// Value is CheckedValue for numbers already known to fit. An overflowing
// number saturates at math.MaxInt.
func (n Number) Value() int {
	v, err := n.CheckedValue()
	if err != nil {
		return math.MaxInt
	}
	return v
}

// Usable drops the numbers whose value overflows an int.
func Usable(numbers []Number) []Number {
	out := make([]Number, 0, len(numbers))
	for _, n := range numbers {
		if _, err := n.CheckedValue(); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// Symbol is a marker glyph and where it was found.
type Symbol struct {
	Position
	Glyph rune
}

// MarkerSet is the closed set of glyphs that count as symbols.
type MarkerSet map[rune]struct{}

// DefaultGlyphs covers every symbol glyph seen in real schematics.
const DefaultGlyphs = "*#+$/@=%-&"

// NewMarkerSet builds a set from the runes of glyphs.
func NewMarkerSet(glyphs string) MarkerSet {
	m := make(MarkerSet, len(glyphs))
	for _, r := range glyphs {
		m[r] = struct{}{}
	}
	return m
}

// DefaultMarkers returns the set built from DefaultGlyphs.
func DefaultMarkers() MarkerSet { return NewMarkerSet(DefaultGlyphs) }

// Has reports whether r is a marker. Digits and '.' never are.
func (m MarkerSet) Has(r rune) bool {
	if r == '.' || isDigit(r) {
		return false
	}
	_, ok := m[r]
	return ok
}

func (m MarkerSet) String() string {
	runes := make([]rune, 0, len(m))
	for r := range m {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	var b strings.Builder
	for _, r := range runes {
		b.WriteRune(r)
	}
	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
