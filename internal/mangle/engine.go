// Package mangle wraps the Google Mangle Datalog engine: load a schema, add
// extensional facts, evaluate to a fixed point, read derived facts back.
package mangle

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"
	"go.uber.org/zap"
)

// Config holds Mangle engine configuration.
type Config struct {
	FactLimit int `json:"fact_limit" yaml:"fact_limit"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		FactLimit: 1000000,
	}
}

// Engine evaluates one program over one fact store. It is not safe for
// concurrent use.
type Engine struct {
	config Config
	log    *zap.Logger

	store           factstore.FactStoreWithRemove
	programInfo     *analysis.ProgramInfo
	predicateIndex  map[string]ast.PredicateSym
	schemaFragments []parse.SourceUnit
	factCount       int
}

// Fact is a predicate applied to Go values. Supported argument types are
// string, int and int64.
type Fact struct {
	Predicate string
	Args      []interface{}
}

// String returns the Datalog representation of the fact.
func (f Fact) String() string {
	args := make([]string, 0, len(f.Args))
	for _, arg := range f.Args {
		switch v := arg.(type) {
		case string:
			args = append(args, fmt.Sprintf("%q", v))
		default:
			args = append(args, fmt.Sprintf("%v", v))
		}
	}
	return fmt.Sprintf("%s(%s).", f.Predicate, strings.Join(args, ", "))
}

// NewEngine creates a new Mangle engine instance. log may be nil.
func NewEngine(cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		config:         cfg,
		log:            log,
		store:          factstore.NewSimpleInMemoryStore(),
		predicateIndex: make(map[string]ast.PredicateSym),
	}
}

// LoadSchemaString parses and analyzes a schema fragment. Fragments
// accumulate; every call re-analyzes the whole program.
func (e *Engine) LoadSchemaString(schema string) error {
	unit, err := parse.Unit(strings.NewReader(schema))
	if err != nil {
		return fmt.Errorf("failed to parse schema: %w", err)
	}

	e.schemaFragments = append(e.schemaFragments, unit)
	if err := e.rebuildProgram(); err != nil {
		e.schemaFragments = e.schemaFragments[:len(e.schemaFragments)-1]
		return fmt.Errorf("failed to analyze schema: %w", err)
	}
	return nil
}

func (e *Engine) rebuildProgram() error {
	var clauses []ast.Clause
	var decls []ast.Decl
	for _, fragment := range e.schemaFragments {
		clauses = append(clauses, fragment.Clauses...)
		decls = append(decls, fragment.Decls...)
	}

	programInfo, err := analysis.AnalyzeOneUnit(parse.SourceUnit{Clauses: clauses, Decls: decls}, nil)
	if err != nil {
		return err
	}

	index := make(map[string]ast.PredicateSym, len(programInfo.Decls))
	for sym := range programInfo.Decls {
		index[sym.Symbol] = sym
	}
	for _, clause := range programInfo.Rules {
		index[clause.Head.Predicate.Symbol] = clause.Head.Predicate
	}

	e.programInfo = programInfo
	e.predicateIndex = index
	return nil
}

// AddFact inserts one extensional fact. Rules are not re-evaluated until
// Evaluate is called.
func (e *Engine) AddFact(predicate string, args ...interface{}) error {
	if e.programInfo == nil {
		return fmt.Errorf("no schemas loaded; call LoadSchemaString first")
	}
	if e.config.FactLimit > 0 && e.factCount >= e.config.FactLimit {
		return fmt.Errorf("fact limit exceeded: %d", e.config.FactLimit)
	}

	sym, ok := e.predicateIndex[predicate]
	if !ok {
		return fmt.Errorf("predicate %s is not declared in schemas", predicate)
	}
	if len(args) != sym.Arity {
		return fmt.Errorf("predicate %s expects %d args, got %d", predicate, sym.Arity, len(args))
	}

	terms := make([]ast.BaseTerm, len(args))
	for i, raw := range args {
		term, err := toTerm(raw)
		if err != nil {
			return fmt.Errorf("predicate %s arg %d: %w", predicate, i, err)
		}
		terms[i] = term
	}

	if e.store.Add(ast.Atom{Predicate: sym, Args: terms}) {
		e.factCount++
	}
	return nil
}

// AddFacts inserts several facts, stopping at the first failure.
func (e *Engine) AddFacts(facts []Fact) error {
	for _, f := range facts {
		if err := e.AddFact(f.Predicate, f.Args...); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	e.log.Debug("Facts added", zap.Int("count", len(facts)))
	return nil
}

// Evaluate runs all rules to a fixed point.
func (e *Engine) Evaluate() error {
	if e.programInfo == nil {
		return fmt.Errorf("no schemas loaded; call LoadSchemaString first")
	}

	start := time.Now()
	stats, err := mengine.EvalProgramWithStats(e.programInfo, e.store)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	e.log.Debug("Program evaluated",
		zap.Int("edb_facts", e.factCount),
		zap.Duration("elapsed", time.Since(start)),
		zap.Any("stats", stats))
	return nil
}

// GetFacts retrieves all facts for a given predicate.
func (e *Engine) GetFacts(predicate string) ([]Fact, error) {
	sym, ok := e.predicateIndex[predicate]
	if !ok {
		return nil, fmt.Errorf("predicate %s is not declared", predicate)
	}

	var results []Fact
	err := e.store.GetFacts(ast.NewQuery(sym), func(atom ast.Atom) error {
		args := make([]interface{}, len(atom.Args))
		for i, arg := range atom.Args {
			args[i] = fromTerm(arg)
		}
		results = append(results, Fact{Predicate: predicate, Args: args})
		return nil
	})
	return results, err
}

func toTerm(v interface{}) (ast.BaseTerm, error) {
	switch val := v.(type) {
	case string:
		return ast.String(val), nil
	case int:
		return ast.Number(int64(val)), nil
	case int64:
		return ast.Number(val), nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

func fromTerm(term ast.BaseTerm) interface{} {
	c, ok := term.(ast.Constant)
	if !ok {
		return fmt.Sprintf("%v", term)
	}
	switch c.Type {
	case ast.StringType:
		return c.Symbol
	case ast.NumberType:
		return c.NumValue
	default:
		return c.String()
	}
}
