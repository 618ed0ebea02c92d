package formatter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
)

const contentPreviewRunes = 300

// FormatResults renders catalog search results as a card per record.
func FormatResults(query string, records []catalog.ContentRecord) string {
	if len(records) == 0 {
		return Dim("No results found.") + "\n"
	}

	var b strings.Builder
	for _, rec := range records {
		b.WriteString(formatRecord(rec))
		b.WriteString("\n")
	}

	b.WriteString(YouTubeSuggestion(query))
	return b.String()
}

func formatRecord(rec catalog.ContentRecord) string {
	var b strings.Builder

	headline := Bold(rec.Title)
	if rec.Series != "" {
		headline += Dim("  •  ") + StyleBlue.Render(rec.Series)
	}
	headline += Dim("  •  ") + LevelBadge(rec.Level)
	b.WriteString(headline + "\n")

	if rec.Content != "" {
		b.WriteString(StyleFg.Render(Preview(rec.Content, contentPreviewRunes)) + "\n")
	}
	if len(rec.Phrases) > 0 {
		b.WriteString(Dim("키 프레이즈: "+strings.Join(rec.Phrases, ", ")) + "\n")
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

// YouTubeSuggestion returns a link line pointing at a cartoon search for the
// query on YouTube.
func YouTubeSuggestion(query string) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}
	searchURL := "https://www.youtube.com/results?search_query=" + url.QueryEscape(query+" cartoon")
	return Dim(fmt.Sprintf("유튜브에서 '%s' 영상 더 보기: %s", query, searchURL)) + "\n"
}
