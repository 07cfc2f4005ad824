package commands

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krobinson96/grammar-buddy-helper/internal/grammar"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	Count int
	Seed  uint64
	Raw   bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}
	cmd := &cobra.Command{
		Use:     "generate <symbol>",
		Aliases: []string{"gen"},
		Short:   "Expand a symbol into a randomly generated sentence",
		Long: `Recursively expand a symbol by picking one of its alternatives at
random at every step. Tokens that are not grammar symbols are emitted
verbatim.

An unknown symbol is domain output, not a failure: the command prints
the diagnostic line and exits zero, exactly as the original tool
returned that text as a value.`,
		Example: `  # Expand <sentence> once
  grammarbuddy generate "<sentence>"

  # Five expansions with a fixed seed
  grammarbuddy generate "<sentence>" -n 5 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "Number of sentences to generate")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed for the random source (omit for nondeterministic output)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Keep the trailing space the expansion carries")

	return cmd
}

func runGenerate(cmd *cobra.Command, symbol string, opts *GenerateOptions) error {
	var extra []grammar.Option
	if cmd.Flags().Changed("seed") {
		extra = append(extra, grammar.WithRand(rand.New(rand.NewPCG(opts.Seed, 0))))
	}

	c, err := NewCommandContext(cmd, extra...)
	if err != nil {
		return err
	}

	for i := 0; i < opts.Count; i++ {
		out, err := c.Model.Generate(symbol)
		switch {
		case errors.Is(err, grammar.ErrUnknownSymbol):
			c.Renderer.Println(grammar.NotFoundDiagnostic(symbol))
			return nil
		case err != nil:
			return err
		}

		if !opts.Raw {
			out = strings.TrimSpace(out)
		}
		c.Renderer.Println(out)
	}
	return nil
}
