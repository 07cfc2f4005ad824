package grammar

import (
	"bytes"
	"io"
	"strings"
)

// RuleLines serializes the grammar back to the flat rule-line format,
// one line per symbol in insertion order:
//
//	symbol::=alt1|alt2|...|altN
//
// with no trailing expression delimiter. A symbol with zero
// alternatives serializes to just the symbol followed by the symbol
// delimiter.
func (g *Grammar) RuleLines() []string {
	lines := make([]string, 0, len(g.order))
	for _, symbol := range g.order {
		lines = append(lines, symbol+g.symDelim+strings.Join(g.rules[symbol], g.exprDelim))
	}
	return lines
}

// MarshalText implements encoding.TextMarshaler: the rule lines, each
// terminated by a newline.
func (g *Grammar) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range g.RuleLines() {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// WriteTo implements io.WriterTo, streaming the serialized grammar.
func (g *Grammar) WriteTo(w io.Writer) (int64, error) {
	text, _ := g.MarshalText()
	n, err := w.Write(text)
	return int64(n), err
}
