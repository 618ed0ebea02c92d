package enrich

// Result is the structured enrichment produced for one search.
// It is request-scoped: built, displayed or exported, then discarded.
type Result struct {
	Summary      string   `json:"summary"`
	FocusPhrases []string `json:"focus_phrases"`
	Missions     []string `json:"missions"`
	ParentTips   []string `json:"parent_tips"`
}

// llmResult mirrors Result for decoding the model's JSON object. Absent keys
// decode to zero values and are substituted with empty collections rather
// than failing the call; only type mismatches reject the response.
type llmResult struct {
	Summary      string   `json:"summary"`
	FocusPhrases []string `json:"focus_phrases"`
	Missions     []string `json:"missions"`
	ParentTips   []string `json:"parent_tips"`
}
