package grammar

import (
	"errors"
	"fmt"
)

// Sentinel errors for the grammar package. Typed errors below unwrap to
// these so callers can branch with errors.Is.
var (
	// ErrMalformedRule indicates a rule line without the symbol delimiter.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrUnknownSymbol indicates generation was requested for a symbol
	// that is not a key in the grammar.
	ErrUnknownSymbol = errors.New("symbol not found in grammar")

	// ErrNoAlternatives indicates generation selected a symbol whose
	// alternative list is empty.
	ErrNoAlternatives = errors.New("empty alternative list")

	// ErrDepthExceeded indicates the configured recursion guard fired.
	ErrDepthExceeded = errors.New("grammar recursion limit exceeded")
)

// MalformedRuleError reports the offending line and its position when a
// rule is missing the symbol delimiter.
type MalformedRuleError struct {
	Line      string
	Index     int
	Delimiter string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("rule %d: missing symbol delimiter %q in %q", e.Index+1, e.Delimiter, e.Line)
}

func (e *MalformedRuleError) Unwrap() error { return ErrMalformedRule }

// UnknownSymbolError reports generation of a symbol absent from the
// grammar.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol not found in grammar: %s", e.Symbol)
}

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// NotFoundDiagnostic renders the unknown-symbol condition in the exact
// text the original tool emitted as a return value. Compatibility
// surfaces print this instead of treating the condition as a failure.
func NotFoundDiagnostic(symbol string) string {
	return "Symbol not found in grammar: " + symbol
}
