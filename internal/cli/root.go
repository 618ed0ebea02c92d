package cli

import (
	"context"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/config"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/enrich"
	"github.com/spf13/cobra"
)

// CatalogSearcher is the slice of the catalog client the CLI needs.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, top int) ([]catalog.ContentRecord, error)
}

// App holds references to the clients and configuration used by CLI commands.
type App struct {
	Catalog  CatalogSearcher
	Enricher enrich.Service
	Config   config.Config

	// IsInteractive reports whether stdin is an interactive terminal.
	// When nil, commands assume non-interactive.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "kidsguide" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "kidsguide",
		Short:         "Kids English content search and weekly practice planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSearchCmd(app),
		newPlanCmd(app),
		newSettingsCmd(app),
	)

	return root
}
