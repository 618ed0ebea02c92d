package enrich

import (
	"encoding/json"
	"fmt"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
)

// systemPrompt is the fixed coaching directive. It is the stable half of the
// contract with the generation backend; the output schema below is the other.
const systemPrompt = "You are a kids English coach. Return JSON only. " +
	"Make outputs short, A1~A2 friendly, and actionable for parents."

// snippetContentLimit bounds how much of each document's free text is packed
// into the prompt.
const snippetContentLimit = 600

// docSnippet is one compressed document inside the user payload.
type docSnippet struct {
	Title   string   `json:"title"`
	Series  string   `json:"series"`
	Level   string   `json:"level"`
	Phrases []string `json:"phrases"`
	Content string   `json:"content"`
}

// outputSchema shows the model the exact shape it must emit. The mission
// examples are illustrative; the client does not enforce a hard count.
type outputSchema struct {
	Summary      string   `json:"summary"`
	FocusPhrases []string `json:"focus_phrases"`
	Missions     []string `json:"missions"`
	ParentTips   []string `json:"parent_tips"`
}

// userPayload is the structured instruction serialized into the user message.
type userPayload struct {
	Task         string       `json:"task"`
	Query        string       `json:"query"`
	Docs         []docSnippet `json:"docs"`
	OutputSchema outputSchema `json:"output_schema"`
}

// buildUserPrompt packages the query and compressed documents into the
// JSON-encoded user message. The caller has already bounded len(docs) via
// the catalog search's top parameter.
func buildUserPrompt(query string, docs []catalog.ContentRecord) (string, error) {
	snippets := make([]docSnippet, 0, len(docs))
	for _, d := range docs {
		title := d.Title
		if title == "" {
			title = d.ID
		}
		phrases := d.Phrases
		if phrases == nil {
			phrases = []string{}
		}
		snippets = append(snippets, docSnippet{
			Title:   title,
			Series:  d.Series,
			Level:   d.Level,
			Phrases: phrases,
			Content: truncateRunes(d.Content, snippetContentLimit),
		})
	}

	payload := userPayload{
		Task:  "Create child-friendly summary + key phrases + 3 missions + parent coaching for the query",
		Query: query,
		Docs:  snippets,
		OutputSchema: outputSchema{
			Summary:      "2-3 sentences for a child",
			FocusPhrases: []string{"...", "...", "..."},
			Missions:     []string{"find expression", "shadowing 2x", "use at home once"},
			ParentTips:   []string{"praise line 1", "rule/tip 1"},
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling enrichment payload: %w", err)
	}
	return string(data), nil
}

// truncateRunes cuts s to at most n runes. Content is frequently Korean, so
// byte slicing would split multi-byte characters.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
