// Package main provides the CLI for the GrammarBuddy grammar toolkit.
package main

import (
	"os"

	"github.com/krobinson96/grammar-buddy-helper/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
