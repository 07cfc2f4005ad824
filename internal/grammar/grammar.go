// Package grammar implements a Backus-Naur-Form grammar container and
// random sentence generator. A grammar maps symbols to ordered lists of
// alternative expressions; generation expands a symbol by recursively
// substituting a randomly chosen alternative at each step.
//
// Whether a token is a symbol reference or a terminal is decided against
// the grammar's current key set at generation time, never cached, so
// mutating the grammar changes how previously stored expressions expand.
package grammar

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Default delimiters for the flat rule-line format.
const (
	DefaultSymbolDelimiter     = "::="
	DefaultExpressionDelimiter = "|"
)

// Grammar holds the rule mapping and delimiter configuration.
// Symbol insertion order is tracked separately from the map because
// serialization emits rules in the order they were defined.
type Grammar struct {
	symDelim  string
	exprDelim string
	maxDepth  int
	rng       *rand.Rand
	logger    *slog.Logger

	rules map[string][]string
	order []string
}

// Option configures a Grammar at construction.
type Option func(*Grammar)

// WithDelimiters sets the symbol and expression delimiters. They are
// fixed for the lifetime of the Grammar.
func WithDelimiters(symbol, expression string) Option {
	return func(g *Grammar) {
		g.symDelim = symbol
		g.exprDelim = expression
	}
}

// WithMaxDepth enables a recursion guard for generation. A depth of 0
// (the default) disables the guard, matching the legacy behavior where
// a cyclic grammar recurses without bound.
func WithMaxDepth(n int) Option {
	return func(g *Grammar) { g.maxDepth = n }
}

// WithRand sets the random source used to pick among alternatives.
// Useful for deterministic generation in tests.
func WithRand(r *rand.Rand) Option {
	return func(g *Grammar) { g.rng = r }
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grammar) { g.logger = l }
}

// New builds a Grammar from rule lines of the form
//
//	symbol::=alt1|alt2|...|altN
//
// using the configured delimiters. An empty rule list is not an error: a
// warning is logged and an empty, usable grammar is returned.
//
// A line missing the symbol delimiter stops construction immediately.
// The partially populated grammar is returned together with a
// *MalformedRuleError, so callers still get a queryable model holding
// every line processed before the bad one. This early-abort contract is
// deliberate; use NewStrict for all-or-nothing validation.
func New(ruleLines []string, opts ...Option) (*Grammar, error) {
	g := &Grammar{
		symDelim:  DefaultSymbolDelimiter,
		exprDelim: DefaultExpressionDelimiter,
		logger:    slog.New(slog.DiscardHandler),
		rules:     make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	if len(ruleLines) == 0 {
		g.logger.Warn("rule set is empty, starting with a blank grammar")
		return g, nil
	}

	for i, line := range ruleLines {
		if !strings.Contains(line, g.symDelim) {
			return g, &MalformedRuleError{Line: line, Index: i, Delimiter: g.symDelim}
		}
		symbol, rest, _ := strings.Cut(line, g.symDelim)
		// Last definition wins for a duplicated symbol.
		g.define(symbol, strings.Split(rest, g.exprDelim))
	}
	return g, nil
}

// NewStrict builds a Grammar like New but validates every rule line
// before committing any of them. On failure it returns nil and all
// malformed-line errors joined, instead of a partial grammar and the
// first error.
func NewStrict(ruleLines []string, opts ...Option) (*Grammar, error) {
	g := &Grammar{
		symDelim:  DefaultSymbolDelimiter,
		exprDelim: DefaultExpressionDelimiter,
		logger:    slog.New(slog.DiscardHandler),
		rules:     make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	var errs []error
	for i, line := range ruleLines {
		if !strings.Contains(line, g.symDelim) {
			errs = append(errs, &MalformedRuleError{Line: line, Index: i, Delimiter: g.symDelim})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if len(ruleLines) == 0 {
		g.logger.Warn("rule set is empty, starting with a blank grammar")
		return g, nil
	}
	for _, line := range ruleLines {
		symbol, rest, _ := strings.Cut(line, g.symDelim)
		g.define(symbol, strings.Split(rest, g.exprDelim))
	}
	return g, nil
}

// define inserts or replaces a symbol's alternatives, preserving the
// symbol's original position when it already exists.
func (g *Grammar) define(symbol string, alts []string) {
	if _, ok := g.rules[symbol]; !ok {
		g.order = append(g.order, symbol)
	}
	g.rules[symbol] = alts
}

// AddSymbol inserts symbol with an empty alternative list. Adding a
// symbol that already exists is a no-op: its alternatives are kept.
func (g *Grammar) AddSymbol(symbol string) {
	if _, ok := g.rules[symbol]; ok {
		return
	}
	g.define(symbol, []string{})
}

// AddExpression appends expression to symbol's alternatives, creating
// the symbol if needed. Duplicate alternatives are allowed.
func (g *Grammar) AddExpression(symbol, expression string) {
	if _, ok := g.rules[symbol]; !ok {
		g.define(symbol, nil)
	}
	g.rules[symbol] = append(g.rules[symbol], expression)
}

// Contains reports whether term is a symbol key or exactly equals one
// whole stored alternative under any symbol. It never matches a token
// or substring inside an alternative.
func (g *Grammar) Contains(term string) bool {
	if _, ok := g.rules[term]; ok {
		return true
	}
	for _, alts := range g.rules {
		for _, alt := range alts {
			if alt == term {
				return true
			}
		}
	}
	return false
}

// Merge additively folds rule lines into the existing grammar: each
// line's symbol is added (keeping prior alternatives) and every
// alternative on the line is appended. Unlike New, merging never
// replaces an existing symbol's alternatives.
//
// A line missing the symbol delimiter aborts the remainder of the merge
// with a *MalformedRuleError; lines before it stay merged.
func (g *Grammar) Merge(ruleLines []string) error {
	for i, line := range ruleLines {
		if !strings.Contains(line, g.symDelim) {
			return &MalformedRuleError{Line: line, Index: i, Delimiter: g.symDelim}
		}
		symbol, rest, _ := strings.Cut(line, g.symDelim)
		g.AddSymbol(symbol)
		for _, alt := range strings.Split(rest, g.exprDelim) {
			g.AddExpression(symbol, alt)
		}
	}
	return nil
}

// Symbols returns the symbol keys in insertion order.
func (g *Grammar) Symbols() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Alternatives returns a copy of symbol's alternative list and whether
// the symbol exists.
func (g *Grammar) Alternatives(symbol string) ([]string, bool) {
	alts, ok := g.rules[symbol]
	if !ok {
		return nil, false
	}
	out := make([]string, len(alts))
	copy(out, alts)
	return out, true
}

// Len returns the number of symbols.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// SymbolDelimiter returns the configured symbol delimiter.
func (g *Grammar) SymbolDelimiter() string { return g.symDelim }

// ExpressionDelimiter returns the configured expression delimiter.
func (g *Grammar) ExpressionDelimiter() string { return g.exprDelim }
