package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/cli/formatter"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/llm"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	var top int
	var doEnrich bool
	var asJSON bool
	var browse bool
	var outFile string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the kids content catalog",
		Long: "Search the content catalog for kids' English learning material.\n" +
			"With no query argument on an interactive terminal, a quick-pick form is shown.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			if len(args) == 0 && app.interactive() {
				if err := runSearchForm(app.Config.EnrichEnabled(), &query, &doEnrich); err != nil {
					return err
				}
			}

			top = clampInt(top, 1, 20)

			records, err := runSearch(app, query, top, app.interactive() && !asJSON)
			if err != nil {
				switch {
				case errors.Is(err, catalog.ErrConfigMissing):
					fmt.Fprintln(out, formatter.Warning("Azure AI Search 설정이 필요합니다."))
				default:
					fmt.Fprintln(out, formatter.Error(fmt.Sprintf("검색 호출 실패: %v", err)))
				}
				return nil
			}

			if asJSON {
				rendered, err := renderJSON(records)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, rendered)
				return nil
			}

			fmt.Fprint(out, formatter.FormatResults(query, records))

			if browse && app.interactive() && len(records) > 0 {
				if err := browseResults(records); err != nil {
					return err
				}
			}

			if doEnrich {
				runEnrich(app, cmd, query, records, outFile)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 5, "Maximum number of results (1-20)")
	cmd.Flags().BoolVar(&doEnrich, "enrich", false, "Generate a child-friendly summary from the top results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw results as JSON")
	cmd.Flags().BoolVar(&browse, "browse", false, "Browse results interactively")
	cmd.Flags().StringVar(&outFile, "out", "", "Export the enrichment result as a JSON file")

	return cmd
}

// runSearch issues the catalog query, spinning while the call is in flight
// on interactive terminals.
func runSearch(app *App, query string, top int, showSpinner bool) ([]catalog.ContentRecord, error) {
	var spin *formatter.Spinner
	if showSpinner {
		spin = formatter.NewSpinner("검색 중...")
		spin.Start()
		defer spin.Stop()
	}
	return app.Catalog.Search(context.Background(), query, top)
}

// runEnrich performs the optional enrichment step. Failures are displayed
// and the command proceeds without enrichment; nothing here is fatal.
func runEnrich(app *App, cmd *cobra.Command, query string, records []catalog.ContentRecord, outFile string) {
	out := cmd.OutOrStdout()

	if !app.Config.EnrichEnabled() {
		fmt.Fprintln(out, formatter.Warning("Azure OpenAI 설정이 필요합니다."))
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(out, formatter.Dim("요약할 검색 결과가 없습니다."))
		return
	}

	var spin *formatter.Spinner
	if app.interactive() {
		spin = formatter.NewSpinner("요약 생성 중...")
		spin.Start()
	}
	result, err := app.Enricher.Enrich(context.Background(), query, records)
	if spin != nil {
		spin.Stop()
	}

	if err != nil {
		switch {
		case errors.Is(err, llm.ErrConfigMissing):
			fmt.Fprintln(out, formatter.Warning("Azure OpenAI 설정이 필요합니다."))
		default:
			fmt.Fprintln(out, formatter.Error(fmt.Sprintf("요약 생성 실패: %v", err)))
		}
		return
	}

	fmt.Fprintln(out, formatter.FormatEnrichment(result))

	if outFile != "" {
		if err := writeJSONFile(outFile, result); err != nil {
			fmt.Fprintln(out, formatter.Error(err.Error()))
			return
		}
		fmt.Fprintln(out, formatter.Dim("저장됨: "+outFile))
	}
}
