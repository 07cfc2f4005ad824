// Package rulefile reads and writes flat rule-line grammar files.
// It owns the path conventions (the .txt suffix, the default file name)
// so the grammar core stays free of filesystem concerns.
package rulefile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the conventional name for a saved grammar.
const DefaultFileName = "grammar.txt"

// DefaultPath returns the conventional grammar location inside dir.
// Callers supply the directory from configuration; nothing here is
// baked to a fixed layout.
func DefaultPath(dir string) string {
	return filepath.Join(dir, DefaultFileName)
}

// ReadLines reads path and returns its lines with line terminators
// stripped. A trailing newline does not produce a final empty line.
// Interior blank lines are kept; the grammar layer decides what to do
// with them.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is caller-supplied by design
	if err != nil {
		return nil, fmt.Errorf("reading rule file: %w", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// Save writes the serialized grammar to path, creating or truncating
// the target. A name without the .txt suffix gets it appended before
// writing; a missing parent directory is created. The file is closed on
// every exit path, and a close failure after a clean write is surfaced.
func Save(path string, g io.WriterTo) error {
	if !strings.HasSuffix(path, ".txt") {
		path += ".txt"
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating grammar directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // G304: path is caller-supplied by design
	if err != nil {
		return fmt.Errorf("creating rule file: %w", err)
	}

	if _, err := g.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing rule file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing rule file: %w", err)
	}
	return nil
}
