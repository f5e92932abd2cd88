// Package puzzle defines the contract shared by every day's solver: the
// Solver interface, the Answer it produces, a Registry keyed by day, and the
// error taxonomy used to report bad input.
package puzzle

import (
	"context"
	"fmt"
	"sort"
)

// Part is one labelled aggregate printed for a day.
type Part struct {
	Label string
	Value int
}

// Answer holds every part computed for a single day.
type Answer struct {
	Day   int
	Parts []Part
}

// Value returns the value of the part with the given label.
func (a Answer) Value(label string) (int, bool) {
	for _, p := range a.Parts {
		if p.Label == label {
			return p.Value, true
		}
	}
	return 0, false
}

// Solver turns the lines of one puzzle input into an Answer.
type Solver interface {
	Day() int
	Title() string
	Solve(ctx context.Context, lines []string) (Answer, error)
}

// Registry indexes solvers by day number.
type Registry struct {
	byDay map[int]Solver
}

// NewRegistry registers the given solvers. A later solver for the same day
// replaces an earlier one.
func NewRegistry(solvers ...Solver) *Registry {
	r := &Registry{byDay: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		r.Register(s)
	}
	return r
}

// Register adds or replaces the solver for s.Day().
func (r *Registry) Register(s Solver) {
	r.byDay[s.Day()] = s
}

// Lookup returns the solver registered for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days lists registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
