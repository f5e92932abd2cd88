package cubes

import (
	"context"

	"aoc2023/internal/puzzle"

	"go.uber.org/zap"
)

// Part labels.
const (
	LabelFeasible = "Total"
	LabelPower    = "Total Power"
)

// Solver computes the day 2 sums.
type Solver struct {
	bag    Limits
	policy puzzle.Policy
	log    *zap.Logger
}

// NewSolver creates a day 2 solver checking games against bag. log may be nil.
func NewSolver(bag Limits, policy puzzle.Policy, log *zap.Logger) *Solver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Solver{bag: bag, policy: policy, log: log}
}

func (s *Solver) Day() int      { return 2 }
func (s *Solver) Title() string { return "Cube Conundrum" }

// ParseAll parses every line, applying the solver's policy to bad ones.
func (s *Solver) ParseAll(ctx context.Context, lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := ParseGame(line)
		if err != nil {
			perr := &puzzle.ParseError{Line: i + 1, Input: line, Reason: "invalid game record", Err: err}
			if herr := s.policy.Handle(perr, s.log); herr != nil {
				return nil, herr
			}
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

// Solve sums the ids of feasible games and the power of every game.
func (s *Solver) Solve(ctx context.Context, lines []string) (puzzle.Answer, error) {
	if len(lines) == 0 {
		return puzzle.Answer{}, puzzle.ErrEmptyInput
	}

	games, err := s.ParseAll(ctx, lines)
	if err != nil {
		return puzzle.Answer{}, err
	}

	total, power := 0, 0
	for _, g := range games {
		feasible := Feasible(g, s.bag)
		if feasible {
			total += g.ID
		}
		p := Power(g)
		power += p
		s.log.Debug("Game checked",
			zap.Int("id", g.ID),
			zap.Bool("feasible", feasible),
			zap.Int("power", p))
	}

	return puzzle.Answer{
		Day: s.Day(),
		Parts: []puzzle.Part{
			{Label: LabelFeasible, Value: total},
			{Label: LabelPower, Value: power},
		},
	}, nil
}
