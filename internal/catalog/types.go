package catalog

// ContentRecord is a single document returned from the content index.
// Records are read-only once produced; downstream components never mutate them.
type ContentRecord struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Series  string   `json:"series,omitempty"`
	Level   string   `json:"level,omitempty"`
	Content string   `json:"content,omitempty"`
	Phrases []string `json:"phrases,omitempty"`
}
