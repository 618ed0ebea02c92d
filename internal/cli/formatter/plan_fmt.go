package formatter

import (
	"fmt"
	"strings"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/planner"
)

// FormatPlan renders a weekly plan: a goals line, then one row per activity.
func FormatPlan(plan *planner.WeeklyPlan) string {
	var b strings.Builder

	b.WriteString(Bold("주간 목표: ") + StyleGreen.Render(plan.WeeklyGoals))
	b.WriteString(Dim(fmt.Sprintf("  (하루 %d분)", plan.TimePerDay)) + "\n\n")

	headers := []string{"DAY", "TYPE", "ITEM"}
	rows := make([][]string, 0, len(plan.Activities))
	for _, act := range plan.Activities {
		rows = append(rows, []string{
			StyleHeader.Render(act.Day),
			StyleBlue.Render(act.Type),
			StyleFg.Render(act.Item),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	// Phrases and missions are identical across activities; show them once.
	if len(plan.Activities) > 0 {
		first := plan.Activities[0]
		b.WriteString(Bold("키 프레이즈: ") + StyleGreen.Render(strings.Join(first.FocusPhrases, ", ")) + "\n")
		b.WriteString(Bold("미션:") + "\n")
		b.WriteString(BulletList(first.Missions))
	}

	return RenderBox("Weekly Plan", strings.TrimRight(b.String(), "\n"))
}
