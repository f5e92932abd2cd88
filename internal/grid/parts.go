package grid

import (
	"fmt"
	"sort"

	"aoc2023/internal/mangle"

	"go.uber.org/zap"
)

// GearGlyph marks a potential gear.
const GearGlyph = '*'

// schematicProgram derives which numbers touch a symbol and which numbers
// touch each potential gear.
const schematicProgram = `
Decl symbol_at(Row, Col, Glyph).
Decl border_cell(Num, Row, Col).

part_number(Num) :- border_cell(Num, Row, Col), symbol_at(Row, Col, _).
gear_contact(Row, Col, Num) :- border_cell(Num, Row, Col), symbol_at(Row, Col, "*").
`

// Adjacency is the outcome of matching number borders against symbols.
// Numbers are referred to by their index in the slice passed to Resolve.
type Adjacency struct {
	Parts []int
	Gears map[Position][]int
}

// Resolve loads symbols and number borders into a Mangle program and reads
// back part numbers and gear contacts.
func Resolve(symbols []Symbol, numbers []Number, cfg mangle.Config, log *zap.Logger) (Adjacency, error) {
	if log == nil {
		log = zap.NewNop()
	}
	engine := mangle.NewEngine(cfg, log)
	if err := engine.LoadSchemaString(schematicProgram); err != nil {
		return Adjacency{}, err
	}

	if err := engine.AddFacts(schematicFacts(symbols, numbers)); err != nil {
		return Adjacency{}, fmt.Errorf("failed to load schematic: %w", err)
	}

	if err := engine.Evaluate(); err != nil {
		return Adjacency{}, err
	}

	parts, err := engine.GetFacts("part_number")
	if err != nil {
		return Adjacency{}, err
	}
	contacts, err := engine.GetFacts("gear_contact")
	if err != nil {
		return Adjacency{}, err
	}

	adj := Adjacency{Gears: make(map[Position][]int)}
	for _, f := range parts {
		adj.Parts = append(adj.Parts, int(f.Args[0].(int64)))
	}
	sort.Ints(adj.Parts)

	for _, f := range contacts {
		p := Position{Row: int(f.Args[0].(int64)), Col: int(f.Args[1].(int64))}
		adj.Gears[p] = append(adj.Gears[p], int(f.Args[2].(int64)))
	}
	for p := range adj.Gears {
		sort.Ints(adj.Gears[p])
	}

	log.Debug("Adjacency resolved",
		zap.Int("parts", len(adj.Parts)),
		zap.Int("gear_candidates", len(adj.Gears)))
	return adj, nil
}

// schematicFacts renders symbols and number borders as extensional facts.
// Numbers are identified by their slice index.
func schematicFacts(symbols []Symbol, numbers []Number) []mangle.Fact {
	facts := make([]mangle.Fact, 0, len(symbols)+8*len(numbers))
	for _, s := range symbols {
		facts = append(facts, mangle.Fact{
			Predicate: "symbol_at",
			Args:      []interface{}{s.Row, s.Col, string(s.Glyph)},
		})
	}
	for i, n := range numbers {
		for p := range n.Border() {
			facts = append(facts, mangle.Fact{
				Predicate: "border_cell",
				Args:      []interface{}{i, p.Row, p.Col},
			})
		}
	}
	return facts
}

// PartSum adds the values of every number adjacent to a symbol.
func (a Adjacency) PartSum(numbers []Number) int {
	sum := 0
	for _, i := range a.Parts {
		sum += numbers[i].Value()
	}
	return sum
}

// GearRatioSum adds, for every gear touching exactly two numbers, the product
// of those numbers.
func (a Adjacency) GearRatioSum(numbers []Number) int {
	sum := 0
	for _, ids := range a.Gears {
		if len(ids) == 2 {
			sum += numbers[ids[0]].Value() * numbers[ids[1]].Value()
		}
	}
	return sum
}
