package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"dojoscore/internal/catalog"
	"dojoscore/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Reports land in DOJOSCORE_OUT, or the current directory. The run
	// command's --out flag overrides both.
	outDir := os.Getenv("DOJOSCORE_OUT")
	if outDir == "" {
		outDir = "."
	}

	app := &cli.App{
		Categories:      catalog.Categories(),
		Recommendations: catalog.Recommendations(),
		OutDir:          outDir,
	}

	// Detect interactive terminal for the wizard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
