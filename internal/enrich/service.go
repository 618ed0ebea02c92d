package enrich

import (
	"context"

	"github.com/jungbyungkil/KidsEnglishGuide/internal/catalog"
	"github.com/jungbyungkil/KidsEnglishGuide/internal/llm"
)

// Service produces a child-friendly enrichment for a query and its top
// search results.
type Service interface {
	// Enrich builds the coaching prompt, sends it to the generation backend,
	// and parses the constrained JSON response. On any failure it returns a
	// nil result and the taxonomy error; the caller proceeds without
	// enrichment.
	Enrich(ctx context.Context, query string, docs []catalog.ContentRecord) (*Result, error)
}

type service struct {
	client llm.Client
}

// NewService creates a Service backed by a generation client.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Enrich(ctx context.Context, query string, docs []catalog.ContentRecord) (*Result, error) {
	userPrompt, err := buildUserPrompt(query, docs)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return nil, err
	}

	parsed, err := llm.ExtractJSON[llmResult](resp.Text, nil)
	if err != nil {
		return nil, err
	}

	return &Result{
		Summary:      parsed.Summary,
		FocusPhrases: orEmpty(parsed.FocusPhrases),
		Missions:     orEmpty(parsed.Missions),
		ParentTips:   orEmpty(parsed.ParentTips),
	}, nil
}

// orEmpty substitutes an empty sequence for a key the model omitted.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
