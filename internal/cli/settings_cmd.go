package cli

import (
	"fmt"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show which backends are configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := app.Config

			headers := []string{"SETTING", "VALUE"}
			rows := [][]string{
				{"Search endpoint", settingValue(cfg.Search.Endpoint)},
				{"Search index", settingValue(cfg.Search.Index)},
				{"Search key", secretStatus(cfg.Search.Key)},
				{"AOAI endpoint", settingValue(cfg.OpenAI.Endpoint)},
				{"AOAI deployment", settingValue(cfg.OpenAI.Deployment)},
				{"AOAI key", secretStatus(cfg.OpenAI.Key)},
			}

			var status string
			switch {
			case cfg.SearchEnabled() && cfg.EnrichEnabled():
				status = formatter.StyleGreen.Render("검색 + 요약 사용 가능")
			case cfg.SearchEnabled():
				status = formatter.StyleYellow.Render("검색만 사용 가능 (요약 비활성화)")
			default:
				status = formatter.StyleRed.Render("검색 비활성화")
			}

			body := formatter.RenderTable(headers, rows) + "\n" + status
			fmt.Fprintln(out, formatter.RenderBox("환경 상태", body))
			return nil
		},
	}
}

func settingValue(v string) string {
	if v == "" {
		return formatter.StyleRed.Render("미설정")
	}
	return formatter.StyleFg.Render(v)
}

// secretStatus never echoes the secret itself.
func secretStatus(v string) string {
	if v == "" {
		return formatter.StyleRed.Render("미설정")
	}
	return formatter.StyleGreen.Render("설정됨")
}
