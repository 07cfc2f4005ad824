package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/krobinson96/grammar-buddy-helper/internal/cli/output"
)

// symbolEntry is the machine-readable form of one grammar rule.
type symbolEntry struct {
	Symbol       string   `json:"symbol" yaml:"symbol"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
}

// NewSymbolsCommand creates the symbols command.
func NewSymbolsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "symbols",
		Aliases: []string{"list"},
		Short:   "List all symbols and their alternatives",
		Long: `List every symbol in the grammar, in definition order, with its
alternative expressions.

Use --output to pick the format: auto, text, json, yaml.`,
		Example: `  # Styled table on a terminal
  grammarbuddy symbols

  # Machine-readable listing
  grammarbuddy symbols -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSymbols(cmd)
		},
	}
	return cmd
}

func runSymbols(cmd *cobra.Command) error {
	c, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	entries := make([]symbolEntry, 0, c.Model.Len())
	for _, symbol := range c.Model.Symbols() {
		alts, _ := c.Model.Alternatives(symbol)
		entries = append(entries, symbolEntry{Symbol: symbol, Alternatives: alts})
	}

	switch c.Renderer.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(c.Renderer.Out())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case output.ModeYAML:
		enc := yaml.NewEncoder(c.Renderer.Out())
		defer func() { _ = enc.Close() }()
		return enc.Encode(entries)
	default:
		return symbolsTable(c, entries)
	}
}

func symbolsTable(c *CommandContext, entries []symbolEntry) error {
	if len(entries) == 0 {
		c.Renderer.Mutedf("(no symbols)")
		return nil
	}

	c.Renderer.Header(fmt.Sprintf("Symbols (%d total)", len(entries)))

	t := table.NewWriter()
	t.SetOutputMirror(c.Renderer.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Symbol", "Alternatives", "Definition"})

	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Symbol,
			len(e.Alternatives),
			strings.Join(e.Alternatives, c.Model.ExpressionDelimiter()),
		})
	}
	t.Render()
	return nil
}
