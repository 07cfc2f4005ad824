package grammar

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Generate recursively expands symbol into a fully substituted string.
//
// One alternative is chosen uniformly at random. Each space-delimited
// token of the chosen expression that is currently a grammar key is
// expanded recursively (the recursive result trimmed of surrounding
// whitespace); every other token is emitted verbatim. Every emitted
// token is followed by a single space, so the result carries one
// trailing space — callers trim as needed. This mirrors the original
// tool's output exactly.
//
// Errors:
//   - *UnknownSymbolError (errors.Is ErrUnknownSymbol) when symbol is
//     not a key,
//   - ErrNoAlternatives when the symbol's alternative list is empty,
//   - ErrDepthExceeded when a recursion guard is configured via
//     WithMaxDepth and the expansion exceeds it.
//
// Without a guard, a cyclic grammar with no terminating alternative
// recurses without bound.
func (g *Grammar) Generate(symbol string) (string, error) {
	return g.expand(symbol, 0)
}

func (g *Grammar) expand(symbol string, depth int) (string, error) {
	alts, ok := g.rules[symbol]
	if !ok {
		return "", &UnknownSymbolError{Symbol: symbol}
	}
	if len(alts) == 0 {
		return "", fmt.Errorf("symbol %q: %w", symbol, ErrNoAlternatives)
	}
	if g.maxDepth > 0 && depth >= g.maxDepth {
		return "", fmt.Errorf("expanding %q at depth %d: %w", symbol, depth, ErrDepthExceeded)
	}

	expr := alts[g.intn(len(alts))]

	var out strings.Builder
	for _, token := range strings.Split(expr, " ") {
		// Symbol/terminal classification happens here, against the
		// current key set, so mutations between generations take effect.
		if _, isSymbol := g.rules[token]; isSymbol {
			sub, err := g.expand(token, depth+1)
			if err != nil {
				return "", err
			}
			out.WriteString(strings.TrimSpace(sub))
		} else {
			out.WriteString(token)
		}
		out.WriteByte(' ')
	}
	return out.String(), nil
}

func (g *Grammar) intn(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}
