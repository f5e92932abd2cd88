package calibration

import (
	"context"
	"errors"
	"testing"

	"aoc2023/internal/puzzle"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var sampleDigits = []string{
	"1abc2",
	"pqr3stu8vwx",
	"a1b2c3d4e5f",
	"treb7uchet",
}

var sampleSpelled = []string{
	"two1nine",
	"eightwothree",
	"abcone2threexyz",
	"xtwone3four",
	"4nineeightseven2",
	"zoneight234",
	"7pqrstsixteen",
}

func TestSolver_SampleDigits(t *testing.T) {
	s := NewSolver(puzzle.FailFast, nil)

	got, err := s.Solve(context.Background(), sampleDigits)
	require.NoError(t, err)

	want := puzzle.Answer{Day: 1, Parts: []puzzle.Part{
		{Label: LabelDigits, Value: 142},
		{Label: LabelSpelled, Value: 142},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Solve() mismatch (-want +got):\n%s", diff)
	}
}

func TestSolver_SpelledOnlyLinesFailFast(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSolver(puzzle.FailFast, zap.New(core))

	got, err := s.Solve(context.Background(), sampleSpelled)
	require.NoError(t, err)

	want := puzzle.Answer{Day: 1, Parts: []puzzle.Part{
		{Label: LabelDigits, Value: 209},
		{Label: LabelSpelled, Value: 281},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Solve() mismatch (-want +got):\n%s", diff)
	}

	zeroed := logs.FilterMessage("No numeric digits, counting zero")
	require.Equal(t, 1, zeroed.Len())
	assert.Equal(t, int64(2), zeroed.All()[0].ContextMap()["line"])
}

func TestSolver_FailFastOnDigitlessLine(t *testing.T) {
	s := NewSolver(puzzle.FailFast, nil)

	_, err := s.Solve(context.Background(), []string{"two1nine", "nothing here", "7pqrstsixteen"})
	require.Error(t, err)

	var perr *puzzle.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.ErrorIs(t, err, ErrNoDigits)
}

func TestSolver_SkipInvalid(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := NewSolver(puzzle.SkipInvalid, zap.New(core))

	got, err := s.Solve(context.Background(), []string{"two1nine", "nothing here", "7pqrstsixteen"})
	require.NoError(t, err)

	digits, _ := got.Value(LabelDigits)
	spelled, _ := got.Value(LabelSpelled)
	assert.Equal(t, 11+77, digits)
	assert.Equal(t, 29+76, spelled)
	assert.Equal(t, 1, logs.FilterMessage("Skipping invalid line").Len())
}

func TestSolver_EmptyInput(t *testing.T) {
	_, err := NewSolver(puzzle.FailFast, nil).Solve(context.Background(), nil)
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}

func TestSolver_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSolver(puzzle.FailFast, nil).Solve(ctx, sampleDigits)
	assert.ErrorIs(t, err, context.Canceled)
}
