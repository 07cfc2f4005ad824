// Package config provides configuration management for the GrammarBuddy CLI.
//
// Values are merged from four sources with increasing precedence:
// built-in defaults, a grammarbuddy.yaml config file, GRAMMARBUDDY_*
// environment variables, and command-line flags.
package config

import "github.com/krobinson96/grammar-buddy-helper/internal/rulefile"

// Config holds all CLI configuration options.
type Config struct {
	GrammarFile         string `koanf:"grammar_file"`
	SymbolDelimiter     string `koanf:"symbol_delimiter"`
	ExpressionDelimiter string `koanf:"expression_delimiter"`
	MaxDepth            int    `koanf:"max_depth"`
	Verbose             bool   `koanf:"verbose"`
	OutputFormat        string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultGrammarDir          = "forms"
	DefaultSymbolDelimiter     = "::="
	DefaultExpressionDelimiter = "|"
	DefaultMaxDepth            = 0 // no recursion guard, legacy parity
	DefaultOutput              = "auto"
)

// DefaultGrammarFile returns the conventional grammar location.
func DefaultGrammarFile() string {
	return rulefile.DefaultPath(DefaultGrammarDir)
}
