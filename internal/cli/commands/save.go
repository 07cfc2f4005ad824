package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewSaveCommand creates the save command.
func NewSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save [file]",
		Short: "Serialize the grammar to a rule file",
		Long: `Write the grammar to a flat rule file, one symbol definition per
line. Without an argument the configured grammar file is used. A name
without the .txt suffix gets it appended.`,
		Example: `  grammarbuddy save
  grammarbuddy save backup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if err := c.SaveModel(path); err != nil {
				return fmt.Errorf("saving grammar: %w", err)
			}

			if path == "" {
				path = c.Cfg.GrammarFile
			} else if !strings.HasSuffix(path, ".txt") {
				path += ".txt"
			}
			c.Renderer.Printf("Saved %d symbols to %s\n", c.Model.Len(), path)
			return nil
		},
	}
}
