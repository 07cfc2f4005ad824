package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewContainsCommand creates the contains command.
func NewContainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <term>",
		Short: "Check whether a term is a symbol or a stored alternative",
		Long: `Print true when the term is a symbol key or exactly equals one whole
stored alternative of some symbol; false otherwise. Tokens inside an
alternative do not match.`,
		Example: `  grammarbuddy contains "<sentence>"
  grammarbuddy contains "the cat"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			term := strings.Join(args, " ")
			if c.Model.Contains(term) {
				c.Renderer.Println("true")
			} else {
				c.Renderer.Println("false")
			}
			return nil
		},
	}
}
