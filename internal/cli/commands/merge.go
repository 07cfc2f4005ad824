package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krobinson96/grammar-buddy-helper/internal/rulefile"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <file>",
		Short: "Additively merge a rule file into the grammar",
		Long: `Read rule lines from a file and merge them into the current grammar:
symbols are added if missing and every alternative on a line is
appended. Existing alternatives are never replaced, unlike loading at
startup where a later definition wins.

A malformed line aborts the merge and nothing is saved; the grammar
file on disk is left untouched.`,
		Example: `  grammarbuddy merge extra-rules.txt`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			lines, err := rulefile.ReadLines(args[0])
			if err != nil {
				return fmt.Errorf("merge source: %w", err)
			}

			if err := c.Model.Merge(lines); err != nil {
				return fmt.Errorf("merge aborted, nothing saved: %w", err)
			}

			if err := c.SaveModel(""); err != nil {
				return fmt.Errorf("saving grammar: %w", err)
			}
			c.Renderer.Printf("Merged %d rule lines from %s (%d symbols total)\n",
				len(lines), args[0], c.Model.Len())
			return nil
		},
	}
}
