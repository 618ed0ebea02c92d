package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const searchAPIVersion = "2023-11-01"

// Config holds connection settings for the content index.
type Config struct {
	Endpoint  string
	Key       string
	Index     string
	TimeoutMs int
}

// Configured reports whether the required endpoint/key/index trio is set.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.Key != "" && c.Index != ""
}

// DefaultConfig returns a Config with the standard single-attempt timeout.
func DefaultConfig() Config {
	return Config{TimeoutMs: 30000}
}

// Client issues single-shot full-text queries against the content index.
// It carries no session state and is safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a catalog search client for the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 30000
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{},
	}
}

// searchRequest is the JSON body sent to the index search endpoint.
type searchRequest struct {
	Search    string `json:"search"`
	Top       int    `json:"top"`
	QueryType string `json:"queryType"`
}

// searchResponse is the envelope returned by the index search endpoint.
type searchResponse struct {
	Value []searchDoc `json:"value"`
}

type searchDoc struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Series  string   `json:"series"`
	Level   string   `json:"level"`
	Content string   `json:"content"`
	Phrases []string `json:"phrases"`
}

// Search runs one simple full-text query and returns up to top matches.
// On any failure it returns an empty slice together with a taxonomy error;
// there is no retry and a single fixed timeout bounds the attempt.
func (c *Client) Search(ctx context.Context, query string, top int) ([]ContentRecord, error) {
	if !c.cfg.Configured() {
		return nil, ErrConfigMissing
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := searchRequest{
		Search:    query,
		Top:       top,
		QueryType: "simple",
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling search request: %w", err)
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Index, searchAPIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.cfg.Key)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	records := make([]ContentRecord, 0, len(parsed.Value))
	for _, d := range parsed.Value {
		records = append(records, coerceRecord(d))
	}
	return records, nil
}

// coerceRecord maps a raw index document onto a ContentRecord, applying
// the title-falls-back-to-id rule and defaulting absent collections.
func coerceRecord(d searchDoc) ContentRecord {
	title := d.Title
	if title == "" {
		title = d.ID
	}
	phrases := d.Phrases
	if phrases == nil {
		phrases = []string{}
	}
	return ContentRecord{
		ID:      d.ID,
		Title:   title,
		Series:  d.Series,
		Level:   d.Level,
		Content: d.Content,
		Phrases: phrases,
	}
}
