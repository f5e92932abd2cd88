// Package cubes parses bag-game records ("Game 1: 3 blue, 4 red; 1 red")
// and checks them against the contents of a bag.
package cubes

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is one of the three cube colours.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// ParseColor maps a colour word onto a Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

// ColorCount is "<count> <color>".
type ColorCount struct {
	Color Color
	Count int
}

// Round is one handful of cubes revealed from the bag.
type Round []ColorCount

// Totals sums the counts of each colour in the round.
func (r Round) Totals() Limits {
	var t Limits
	for _, cc := range r {
		switch cc.Color {
		case Red:
			t.Red += cc.Count
		case Green:
			t.Green += cc.Count
		case Blue:
			t.Blue += cc.Count
		}
	}
	return t
}

// Game is one record line.
type Game struct {
	ID     int
	Rounds []Round
}

// Limits holds a count per colour: the bag contents, or a round's totals.
type Limits struct {
	Red   int
	Green int
	Blue  int
}

// Covers reports whether every colour of other fits within l.
func (l Limits) Covers(other Limits) bool {
	return other.Red <= l.Red && other.Green <= l.Green && other.Blue <= l.Blue
}

// Feasible reports whether every round of g could have been drawn from a bag
// holding bag.
func Feasible(g Game, bag Limits) bool {
	for _, r := range g.Rounds {
		if !bag.Covers(r.Totals()) {
			return false
		}
	}
	return true
}

// Minimum returns the smallest bag that makes g feasible.
func Minimum(g Game) Limits {
	var m Limits
	for _, r := range g.Rounds {
		t := r.Totals()
		m.Red = max(m.Red, t.Red)
		m.Green = max(m.Green, t.Green)
		m.Blue = max(m.Blue, t.Blue)
	}
	return m
}

// Power multiplies the colours of the minimum bag for g.
func Power(g Game) int {
	m := Minimum(g)
	return m.Red * m.Green * m.Blue
}

// ParseGame parses "Game <id>: <round>[; <round>]*" where a round is
// "<count> <color>[, <count> <color>]*".
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' after game header")
	}

	idText, ok := strings.CutPrefix(strings.TrimSpace(header), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("header must start with \"Game \"")
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return Game{}, fmt.Errorf("game id: %w", err)
	}

	g := Game{ID: id}
	for i, roundText := range strings.Split(body, ";") {
		round, err := parseRound(roundText)
		if err != nil {
			return Game{}, fmt.Errorf("round %d: %w", i+1, err)
		}
		g.Rounds = append(g.Rounds, round)
	}
	return g, nil
}

func parseRound(s string) (Round, error) {
	var round Round
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return nil, fmt.Errorf("expected \"<count> <color>\", got %q", strings.TrimSpace(part))
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("count: %w", err)
		}
		if count < 0 {
			return nil, fmt.Errorf("negative count %d", count)
		}
		color, err := ParseColor(fields[1])
		if err != nil {
			return nil, err
		}
		round = append(round, ColorCount{Color: color, Count: count})
	}
	return round, nil
}
