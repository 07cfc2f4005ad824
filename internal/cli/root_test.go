package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krobinson96/grammar-buddy-helper/internal/cli/config"
)

// execute runs the root command with a fresh config and captured output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeGrammar writes rule lines to a temp file and returns its path.
func writeGrammar(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grammar.txt")
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "GrammarBuddy")
}

func TestGenerateCommand(t *testing.T) {
	path := writeGrammar(t, "<x>::=a|b", "<y>::=<x> c")

	out, _, err := execute(t, "--grammar", path, "generate", "<y>")
	require.NoError(t, err)
	assert.Contains(t, []string{"a c\n", "b c\n"}, out)
}

func TestGenerateCommand_Raw(t *testing.T) {
	path := writeGrammar(t, "<x>::=a")

	out, _, err := execute(t, "--grammar", path, "generate", "<x>", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "a \n", out, "--raw keeps the legacy trailing space")
}

func TestGenerateCommand_Count(t *testing.T) {
	path := writeGrammar(t, "<x>::=a")

	out, _, err := execute(t, "--grammar", path, "generate", "<x>", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "a\na\na\n", out)
}

func TestGenerateCommand_SeedIsDeterministic(t *testing.T) {
	lines := []string{"<x>::=a|b|c|d|e|f", "<y>::=<x> <x> <x> <x>"}
	path := writeGrammar(t, lines...)

	first, _, err := execute(t, "--grammar", path, "generate", "<y>", "--seed", "7")
	require.NoError(t, err)
	second, _, err := execute(t, "--grammar", path, "generate", "<y>", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateCommand_UnknownSymbol(t *testing.T) {
	path := writeGrammar(t, "<x>::=a")

	out, _, err := execute(t, "--grammar", path, "generate", "<zzz>")
	require.NoError(t, err, "unknown symbol is domain output, not a failure")
	assert.Equal(t, "Symbol not found in grammar: <zzz>\n", out)
}

func TestGenerateCommand_MissingGrammarFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	out, stderr, err := execute(t, "--grammar", path, "generate", "<x>")
	require.NoError(t, err, "a missing grammar file must not crash the command")
	assert.Contains(t, stderr, "Warning:")
	assert.Equal(t, "Symbol not found in grammar: <x>\n", out)
}

func TestGenerateCommand_MaxDepthGuard(t *testing.T) {
	path := writeGrammar(t, "<a>::=<b>", "<b>::=<a>")

	_, _, err := execute(t, "--grammar", path, "--max-depth", "16", "generate", "<a>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursion limit")
}

func TestGenerateCommand_CustomDelimiters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grammar.txt")
	require.NoError(t, os.WriteFile(path, []byte("<x> -> a / b\n"), 0o600))

	out, _, err := execute(t,
		"--grammar", path,
		"--symbol-delimiter", " -> ",
		"--expression-delimiter", " / ",
		"generate", "<x>")
	require.NoError(t, err)
	assert.Contains(t, []string{"a\n", "b\n"}, out)
}

func TestContainsCommand(t *testing.T) {
	path := writeGrammar(t, "<a>::=<b> x|y")

	tests := []struct {
		term string
		want string
	}{
		{"<a>", "true\n"},
		{"<b> x", "true\n"},
		{"<b>", "false\n"},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			out, _, err := execute(t, "--grammar", path, "contains", tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSymbolsCommand_JSON(t *testing.T) {
	path := writeGrammar(t, "<x>::=a|b", "<y>::=c")

	out, _, err := execute(t, "--grammar", path, "--output", "json", "symbols")
	require.NoError(t, err)

	var entries []struct {
		Symbol       string   `json:"symbol"`
		Alternatives []string `json:"alternatives"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "<x>", entries[0].Symbol)
	assert.Equal(t, []string{"a", "b"}, entries[0].Alternatives)
	assert.Equal(t, "<y>", entries[1].Symbol)
}

func TestSymbolsCommand_EmptyGrammar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	out, _, err := execute(t, "--grammar", path, "symbols")
	require.NoError(t, err)
	assert.Contains(t, out, "(no symbols)")
}

func TestAddSymbolCommand_Persists(t *testing.T) {
	path := writeGrammar(t, "<x>::=a")

	out, _, err := execute(t, "--grammar", path, "add", "symbol", "<new>")
	require.NoError(t, err)
	assert.Contains(t, out, "<new>")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<x>::=a\n<new>::=\n", string(data))
}

func TestAddExpressionCommand_Persists(t *testing.T) {
	path := writeGrammar(t, "<x>::=a|b")

	_, _, err := execute(t, "--grammar", path, "add", "expression", "<x>", "hello", "world")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<x>::=a|b|hello world\n", string(data),
		"unquoted words join into one space-delimited expression")
}

func TestMergeCommand(t *testing.T) {
	path := writeGrammar(t, "<x>::=a")
	extra := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(extra, []byte("<x>::=b\n<y>::=c\n"), 0o600))

	out, _, err := execute(t, "--grammar", path, "merge", extra)
	require.NoError(t, err)
	assert.Contains(t, out, "Merged 2 rule lines")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<x>::=a|b\n<y>::=c\n", string(data), "merge appends, never replaces")
}

func TestMergeCommand_MalformedSourceDoesNotSave(t *testing.T) {
	path := writeGrammar(t, "<x>::=a")
	extra := filepath.Join(t.TempDir(), "extra.txt")
	require.NoError(t, os.WriteFile(extra, []byte("<y>::=b\nbad line\n"), 0o600))

	_, _, err := execute(t, "--grammar", path, "merge", extra)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<x>::=a\n", string(data), "a failed merge must leave the file untouched")
}

func TestSaveCommand_AppendsSuffix(t *testing.T) {
	path := writeGrammar(t, "<x>::=a")
	target := filepath.Join(t.TempDir(), "backup")

	out, _, err := execute(t, "--grammar", path, "save", target)
	require.NoError(t, err)
	assert.Contains(t, out, "backup.txt")

	data, err := os.ReadFile(target + ".txt")
	require.NoError(t, err)
	assert.Equal(t, "<x>::=a\n", string(data))
}
