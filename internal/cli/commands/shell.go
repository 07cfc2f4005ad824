package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/krobinson96/grammar-buddy-helper/internal/grammar"
	"github.com/krobinson96/grammar-buddy-helper/internal/rulefile"
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"repl"},
		Short:   "Interactive grammar shell",
		Long: `Start an interactive shell on the grammar. Any input that is not a
dot-command is treated as a symbol to generate. File errors are
reported and the shell keeps running; nothing short of .quit or EOF
ends the session.`,
		Example: `  grammarbuddy shell
  grammarbuddy shell -g testdata/grammar.txt`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd)
		},
	}
}

func runShell(cmd *cobra.Command) error {
	c, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	// History lives next to the grammar file.
	historyFile := filepath.Join(filepath.Dir(c.Cfg.GrammarFile), ".grammarbuddy_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "grammarbuddy> ",
		HistoryFile:     historyFile,
		AutoComplete:    newShellCompleter(c.Model),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	c.Renderer.Printf("GrammarBuddy shell (grammar: %s)\n", c.Cfg.GrammarFile)
	c.Renderer.Println("Type a symbol to generate, .help for commands, .quit to exit")
	c.Renderer.Println()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleDotCommand(c, line)
			continue
		}

		generateLine(c, line)
	}

	return nil
}

// generateLine expands a symbol typed at the prompt. An unknown symbol
// prints the legacy diagnostic as ordinary output; other generation
// failures go to stderr and the shell continues.
func generateLine(c *CommandContext, symbol string) {
	out, err := c.Model.Generate(symbol)
	switch {
	case errors.Is(err, grammar.ErrUnknownSymbol):
		c.Renderer.Println(grammar.NotFoundDiagnostic(symbol))
	case err != nil:
		c.Renderer.Errorf("Error: %v", err)
	default:
		c.Renderer.Println(strings.TrimSpace(out))
	}
}

func handleDotCommand(c *CommandContext, line string) {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".help":
		printShellHelp(c)

	case ".symbols":
		symbols := c.Model.Symbols()
		if len(symbols) == 0 {
			c.Renderer.Mutedf("(no symbols)")
			return
		}
		for _, symbol := range symbols {
			alts, _ := c.Model.Alternatives(symbol)
			c.Renderer.Printf("%s  (%d alternatives)\n", symbol, len(alts))
		}

	case ".add":
		if len(parts) != 2 {
			c.Renderer.Errorf("Usage: .add <symbol>")
			return
		}
		c.Model.AddSymbol(parts[1])
		c.Renderer.Printf("Added symbol %s\n", parts[1])

	case ".expr":
		// The expression is everything after the symbol, spaces included.
		rest := strings.SplitN(line, " ", 3)
		if len(rest) < 3 {
			c.Renderer.Errorf("Usage: .expr <symbol> <expression>")
			return
		}
		c.Model.AddExpression(rest[1], rest[2])
		c.Renderer.Printf("Added expression to %s: %s\n", rest[1], rest[2])

	case ".contains":
		rest := strings.SplitN(line, " ", 2)
		if len(rest) < 2 || strings.TrimSpace(rest[1]) == "" {
			c.Renderer.Errorf("Usage: .contains <term>")
			return
		}
		c.Renderer.Printf("%t\n", c.Model.Contains(strings.TrimSpace(rest[1])))

	case ".load":
		if len(parts) != 2 {
			c.Renderer.Errorf("Usage: .load <file>")
			return
		}
		lines, err := rulefile.ReadLines(parts[1])
		if err != nil {
			c.Renderer.Errorf("Error: %v", err)
			return
		}
		if err := c.Model.Merge(lines); err != nil {
			c.Renderer.Errorf("Error: %v (lines before it were merged)", err)
			return
		}
		c.Renderer.Printf("Merged %d rule lines (%d symbols total)\n", len(lines), c.Model.Len())

	case ".save":
		path := ""
		if len(parts) > 1 {
			path = parts[1]
		}
		if err := c.SaveModel(path); err != nil {
			c.Renderer.Errorf("Error: %v", err)
			return
		}
		if path == "" {
			path = c.Cfg.GrammarFile
		}
		c.Renderer.Printf("Saved %d symbols to %s\n", c.Model.Len(), path)

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		c.Renderer.Errorf("Unknown command: %s (type .help for commands)", command)
	}
}

func printShellHelp(c *CommandContext) {
	help := `
Commands:
  <symbol>              Generate a random expansion of the symbol
  .symbols              List all symbols
  .add <symbol>         Add a symbol (existing alternatives are kept)
  .expr <symbol> <expression>
                        Append an alternative to a symbol
  .contains <term>      Check if a term is a symbol or a whole alternative
  .load <file>          Additively merge a rule file
  .save [file]          Save the grammar (default: configured file)
  .clear                Clear the screen
  .quit / .exit         Exit the shell

Tips:
  - Mutations stay in memory until you .save
  - Use arrow keys to navigate history
  - Tab completion works for symbols and commands
`
	c.Renderer.Println(help)
}

// newShellCompleter builds a readline completer over the current
// symbols and the dot-commands. Symbol completion is dynamic, so
// symbols added during the session complete immediately.
func newShellCompleter(model *grammar.Grammar) *readline.PrefixCompleter {
	symbols := readline.PcItemDynamic(func(string) []string { return model.Symbols() })
	return readline.NewPrefixCompleter(
		symbols,
		readline.PcItem(".help"),
		readline.PcItem(".symbols"),
		readline.PcItem(".add"),
		readline.PcItem(".expr", symbols),
		readline.PcItem(".contains", symbols),
		readline.PcItem(".load"),
		readline.PcItem(".save"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
