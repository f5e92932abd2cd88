package calibration

import (
	"context"

	"aoc2023/internal/puzzle"

	"go.uber.org/zap"
)

// Part labels.
const (
	LabelDigits  = "Total"
	LabelSpelled = "Total (spelled)"
)

// Solver computes the day 1 calibration sums.
type Solver struct {
	policy puzzle.Policy
	log    *zap.Logger
}

// NewSolver creates a day 1 solver. log may be nil.
func NewSolver(policy puzzle.Policy, log *zap.Logger) *Solver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Solver{policy: policy, log: log}
}

func (s *Solver) Day() int      { return 1 }
func (s *Solver) Title() string { return "Trebuchet?!" }

// Solve sums calibration values twice in one pass: once over explicit digits
// only, once with spelled-out words normalized. A line whose normalized stream
// is empty is a parse error handled by the policy. A line with spelled digits
// but no numeric ones contributes zero to the digits-only total.
func (s *Solver) Solve(ctx context.Context, lines []string) (puzzle.Answer, error) {
	if len(lines) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}

	digits, spelled := 0, 0
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return puzzle.Answer{}, err
		}

		sv, err := LineValue(Normalize(line))
		if err != nil {
			perr := &puzzle.ParseError{Line: i + 1, Input: line, Reason: "no calibration digits", Err: err}
			if herr := s.policy.Handle(perr, s.log); herr != nil {
				return puzzle.Answer{}, herr
			}
			continue
		}
		spelled += sv

		dv, err := LineValue(Digits(line))
		if err != nil {
			s.log.Debug("No numeric digits, counting zero",
				zap.Int("line", i+1),
				zap.String("input", line))
			continue
		}
		digits += dv
	}

	return puzzle.Answer{
		Day: s.Day(),
		Parts: []puzzle.Part{
			{Label: LabelDigits, Value: digits},
			{Label: LabelSpelled, Value: spelled},
		},
	}, nil
}
