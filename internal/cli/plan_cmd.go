package cli

import (
	"fmt"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/cli/formatter"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/planner"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var age int
	var level string
	var character string
	var sessions int
	var minutes int
	var asJSON bool
	var outFile string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a rule-based weekly practice plan",
		Long: "Generate a deterministic weekly practice schedule from age, level,\n" +
			"preferred character, sessions per week, and minutes per session.\n" +
			"With no flags on an interactive terminal, a form wizard is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			inputFlags := []string{"age", "level", "character", "sessions", "minutes"}
			if app.interactive() && !anyChanged(cmd.Flags(), inputFlags...) {
				answers, err := runPlanWizard()
				if err != nil {
					return err
				}
				age = answers.Age
				level = answers.Level
				character = answers.Character
				sessions = answers.SessionsPerWeek
				minutes = answers.MinutesPerSession
			}

			// The planner tolerates any positive session count; the surface
			// enforces the weekly bounds.
			sessions = clampInt(sessions, 2, 7)

			plan := planner.BuildPlan(planner.PlanRequest{
				Age:               age,
				Level:             level,
				Character:         character,
				SessionsPerWeek:   sessions,
				MinutesPerSession: minutes,
			})

			if asJSON {
				rendered, err := renderJSON(plan)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, rendered)
			} else {
				fmt.Fprintln(out, formatter.FormatPlan(plan))
			}

			if outFile != "" {
				if err := writeJSONFile(outFile, plan); err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.Dim("저장됨: "+outFile))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", 7, "Child's age (3-12; accepted but does not change the schedule)")
	cmd.Flags().StringVar(&level, "level", planner.FallbackLevel, "CEFR-like level (A0, A1, A2, B1)")
	cmd.Flags().StringVar(&character, "character", "Bluey", "Preferred character for activity items")
	cmd.Flags().IntVar(&sessions, "sessions", 4, "Sessions per week (2-7)")
	cmd.Flags().IntVar(&minutes, "minutes", 15, "Minutes per session")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.Flags().StringVar(&outFile, "out", "", "Export the plan as a JSON file")

	return cmd
}
