package main

import (
	"fmt"
	"os"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/cli"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/config"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/enrich"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/llm"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.OpenAI.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Catalog:  catalog.NewClient(cfg.Search),
		Enricher: enrich.NewService(llm.NewAzureClient(cfg.OpenAI, observer)),
		Config:   cfg,
	}

	// Detect interactive terminal for wizard and spinner behavior.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
