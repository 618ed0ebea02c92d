package formatter

import (
	"strings"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/enrich"
)

// FormatEnrichment renders the generated coaching summary as a boxed section.
func FormatEnrichment(result *enrich.Result) string {
	var b strings.Builder

	b.WriteString(Header("Child-friendly Summary") + "\n")
	b.WriteString(StyleFg.Render(result.Summary) + "\n\n")

	b.WriteString(Header("Focus Phrases") + "\n")
	if len(result.FocusPhrases) > 0 {
		b.WriteString(StyleGreen.Render(strings.Join(result.FocusPhrases, ", ")) + "\n")
	} else {
		b.WriteString(Dim("—") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Missions") + "\n")
	if len(result.Missions) > 0 {
		b.WriteString(BulletList(result.Missions))
	} else {
		b.WriteString(Dim("—") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Parent Tips") + "\n")
	if len(result.ParentTips) > 0 {
		b.WriteString(BulletList(result.ParentTips))
	} else {
		b.WriteString(Dim("—") + "\n")
	}

	return RenderBox("Enrichment", strings.TrimRight(b.String(), "\n"))
}
