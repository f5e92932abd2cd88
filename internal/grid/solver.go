package grid

import (
	"context"
	"time"

	"aoc2023/internal/mangle"
	"aoc2023/internal/puzzle"

	"go.uber.org/zap"
)

// Part labels.
const (
	LabelParts = "Part Numbers"
	LabelGears = "Gear Ratios"
)

// Solver computes the day 3 schematic sums.
type Solver struct {
	markers MarkerSet
	strict  bool
	policy  puzzle.Policy
	kernel  mangle.Config
	log     *zap.Logger
}

// NewSolver creates a day 3 solver. A nil marker set means DefaultMarkers;
// log may be nil.
func NewSolver(markers MarkerSet, strict bool, policy puzzle.Policy, log *zap.Logger) *Solver {
	if markers == nil {
		markers = DefaultMarkers()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Solver{
		markers: markers,
		strict:  strict,
		policy:  policy,
		kernel:  mangle.DefaultConfig(),
		log:     log,
	}
}

func (s *Solver) Day() int      { return 3 }
func (s *Solver) Title() string { return "Gear Ratios" }

// Solve scans the schematic, resolves adjacency and sums part numbers and
// gear ratios.
func (s *Solver) Solve(ctx context.Context, lines []string) (puzzle.Answer, error) {
	if len(lines) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}

	g := New(lines, WithMarkers(s.markers), WithStrict(s.strict), WithLogger(s.log))
	for _, perr := range g.Invalid() {
		if err := s.policy.Handle(perr, s.log); err != nil {
			return puzzle.Answer{}, err
		}
	}
	if err := ctx.Err(); err != nil {
		return puzzle.Answer{}, err
	}

	start := time.Now()
	symbols := g.Symbols()
	numbers := Usable(g.Numbers())

	adj, err := Resolve(symbols, numbers, s.kernel, s.log)
	if err != nil {
		return puzzle.Answer{}, err
	}

	answer := puzzle.Answer{
		Day: s.Day(),
		Parts: []puzzle.Part{
			{Label: LabelParts, Value: adj.PartSum(numbers)},
			{Label: LabelGears, Value: adj.GearRatioSum(numbers)},
		},
	}
	s.log.Info("Schematic solved",
		zap.Int("symbols", len(symbols)),
		zap.Int("numbers", len(numbers)),
		zap.Duration("elapsed", time.Since(start)))
	return answer, nil
}
