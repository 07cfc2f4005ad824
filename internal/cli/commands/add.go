package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command with its symbol/expression
// subcommands.
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a symbol or an expression to the grammar",
	}
	cmd.AddCommand(newAddSymbolCommand())
	cmd.AddCommand(newAddExpressionCommand())
	return cmd
}

func newAddSymbolCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "symbol <symbol>",
		Short: "Add a symbol with an empty alternative list",
		Long: `Add a symbol to the grammar. Adding a symbol that already exists is
a no-op: its alternatives are kept, never reset.`,
		Example: `  grammarbuddy add symbol "<verb>"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			c.Model.AddSymbol(args[0])
			if err := c.SaveModel(""); err != nil {
				return fmt.Errorf("saving grammar: %w", err)
			}
			c.Renderer.Printf("Added symbol %s\n", args[0])
			return nil
		},
	}
}

func newAddExpressionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "expression <symbol> <expression>...",
		Aliases: []string{"expr"},
		Short:   "Append an alternative expression to a symbol",
		Long: `Append an expression to a symbol's alternatives, creating the symbol
if it does not exist. Everything after the symbol is joined into one
space-delimited expression, so quoting is optional. Duplicates are
permitted.`,
		Example: `  grammarbuddy add expression "<verb>" runs quickly
  grammarbuddy add expr "<sentence>" "<subject> <verb>"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			symbol := args[0]
			expression := strings.Join(args[1:], " ")
			c.Model.AddExpression(symbol, expression)
			if err := c.SaveModel(""); err != nil {
				return fmt.Errorf("saving grammar: %w", err)
			}
			c.Renderer.Printf("Added expression to %s: %s\n", symbol, expression)
			return nil
		},
	}
}
