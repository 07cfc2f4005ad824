package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/krobinson96/grammar-buddy-helper/internal/cli/config"
	"github.com/krobinson96/grammar-buddy-helper/internal/cli/output"
	"github.com/krobinson96/grammar-buddy-helper/internal/grammar"
	"github.com/krobinson96/grammar-buddy-helper/internal/rulefile"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Model    *grammar.Grammar
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the grammar loaded
// from the configured rule file. Extra grammar options (e.g. a seeded
// random source) are applied on top of the configured ones.
//
// A missing or partially malformed rule file is not fatal: the warning
// is printed and the partial (possibly empty) model is returned, so
// every command keeps operating on whatever state loaded. This mirrors
// the legacy contract where a failed construction still yields a
// queryable model.
func NewCommandContext(cmd *cobra.Command, extra ...grammar.Option) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	model, err := loadModel(cfg, logger, extra...)
	if err != nil {
		r.Errorf("Warning: %v", err)
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Model:    model,
		Renderer: r,
	}, nil
}

// SaveModel persists the model to path, or to the configured grammar
// file when path is empty.
func (c *CommandContext) SaveModel(path string) error {
	if path == "" {
		path = c.Cfg.GrammarFile
	}
	return rulefile.Save(path, c.Model)
}

// loadModel reads the configured rule file and constructs the grammar.
// Both error paths still return a usable model.
func loadModel(cfg *config.Config, logger *slog.Logger, extra ...grammar.Option) (*grammar.Grammar, error) {
	opts := []grammar.Option{
		grammar.WithDelimiters(cfg.SymbolDelimiter, cfg.ExpressionDelimiter),
		grammar.WithMaxDepth(cfg.MaxDepth),
		grammar.WithLogger(logger),
	}
	opts = append(opts, extra...)

	lines, err := rulefile.ReadLines(cfg.GrammarFile)
	if err != nil {
		model, _ := grammar.New(nil, opts...)
		return model, fmt.Errorf("could not load grammar from %s: %w", cfg.GrammarFile, err)
	}

	model, err := grammar.New(lines, opts...)
	if err != nil {
		return model, fmt.Errorf("grammar %s loaded partially: %w", cfg.GrammarFile, err)
	}
	logger.Debug("grammar loaded", "file", cfg.GrammarFile, "symbols", model.Len())
	return model, nil
}

// getConfig returns the current configuration, falling back to defaults
// when none was loaded (e.g. a command constructed directly in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		GrammarFile:         config.DefaultGrammarFile(),
		SymbolDelimiter:     config.DefaultSymbolDelimiter,
		ExpressionDelimiter: config.DefaultExpressionDelimiter,
		MaxDepth:            config.DefaultMaxDepth,
		OutputFormat:        config.DefaultOutput,
	}
}
