package grid

import (
	"context"
	"errors"
	"testing"

	"aoc2023/internal/mangle"
	"aoc2023/internal/puzzle"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestResolve_Sample(t *testing.T) {
	g := New(sample)
	numbers := g.Numbers()

	adj, err := Resolve(g.Symbols(), numbers, mangle.DefaultConfig(), nil)
	require.NoError(t, err)

	// 114 and 58 touch no symbol.
	assert.Equal(t, []int{0, 2, 3, 4, 6, 7, 8, 9}, adj.Parts)
	assert.Equal(t, 4361, adj.PartSum(numbers))

	assert.Equal(t, []int{0, 2}, adj.Gears[Position{1, 3}])
	assert.Equal(t, []int{4}, adj.Gears[Position{4, 3}])
	assert.Equal(t, []int{7, 9}, adj.Gears[Position{8, 5}])
	assert.Equal(t, 467835, adj.GearRatioSum(numbers))
}

func TestResolve_EdgeNumbers(t *testing.T) {
	g := New([]string{
		"1*",
		"..",
		"#9",
	})
	numbers := g.Numbers()

	adj, err := Resolve(g.Symbols(), numbers, mangle.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, adj.Parts)
	assert.Equal(t, 0, adj.GearRatioSum(numbers))
}

func TestSolver_Sample(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewSolver(nil, false, puzzle.FailFast, zap.New(core))

	got, err := s.Solve(context.Background(), sample)
	require.NoError(t, err)

	want := puzzle.Answer{Day: 3, Parts: []puzzle.Part{
		{Label: LabelParts, Value: 4361},
		{Label: LabelGears, Value: 467835},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Solve() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, logs.FilterMessage("Schematic solved").Len())
}

func TestSolver_StrictPolicy(t *testing.T) {
	rows := append([]string{"....?....."}, sample...)

	_, err := NewSolver(nil, true, puzzle.FailFast, nil).Solve(context.Background(), rows)
	assert.ErrorIs(t, err, puzzle.ErrMalformed)

	got, err := NewSolver(nil, true, puzzle.SkipInvalid, nil).Solve(context.Background(), rows)
	require.NoError(t, err)
	v, _ := got.Value(LabelParts)
	assert.Equal(t, 4361, v)
}

func TestSolver_EmptyInput(t *testing.T) {
	_, err := NewSolver(nil, false, puzzle.FailFast, nil).Solve(context.Background(), nil)
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}

func TestSolver_OverflowingNumber(t *testing.T) {
	rows := []string{"12*99999999999999999999", "..7......"}

	_, err := NewSolver(nil, false, puzzle.FailFast, nil).Solve(context.Background(), rows)
	var perr *puzzle.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 4, perr.Column)
	assert.ErrorIs(t, err, ErrNumberOverflow)

	got, err := NewSolver(nil, false, puzzle.SkipInvalid, nil).Solve(context.Background(), rows)
	require.NoError(t, err)
	parts, _ := got.Value(LabelParts)
	gears, _ := got.Value(LabelGears)
	assert.Equal(t, 12+7, parts)
	assert.Equal(t, 12*7, gears)
}

func TestSchematicFacts(t *testing.T) {
	symbols := []Symbol{{Position: Position{Row: 1, Col: 3}, Glyph: '*'}}
	numbers := []Number{runAt(0, 0, 4, 6, 7)}

	facts := schematicFacts(symbols, numbers)
	require.Len(t, facts, 1+5)
	assert.Equal(t, `symbol_at(1, 3, "*").`, facts[0].String())
	for _, f := range facts[1:] {
		assert.Equal(t, "border_cell", f.Predicate)
		assert.Equal(t, 0, f.Args[0])
	}
}
