package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const chatAPIVersion = "2024-06-01"

// GenerateRequest holds the parameters for a generation call.
type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses the configured default
	MaxTokens    *int     // nil uses the configured default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model for constrained JSON generation.
type Client interface {
	// Generate sends a prompt pair and returns the first choice's raw text.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// azureClient implements Client against an Azure-OpenAI-shaped
// chat-completions deployment.
type azureClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewAzureClient creates a Client that talks to a chat-completions deployment.
func NewAzureClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 60000
	}
	return &azureClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

// chatMessage is one entry of the messages array.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the JSON body sent to the chat-completions endpoint.
// response_format pins the backend to a single JSON object.
type chatRequest struct {
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the chat-completion-shaped body returned by the backend.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *azureClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	requestID := uuid.NewString()

	if !c.cfg.Configured() {
		c.emit(requestID, start, "CONFIG_MISSING")
		return nil, ErrConfigMissing
	}

	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := c.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		Temperature:    temp,
		MaxTokens:      maxTok,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	// Single attempt: the caller surfaces the failure and the user re-triggers.
	resp, err := c.doRequest(ctx, body)
	if err != nil {
		if ctx.Err() != nil {
			c.emit(requestID, start, "TIMEOUT")
			return nil, ErrTimeout
		}
		c.emit(requestID, start, errorCode(err))
		return nil, err
	}

	if len(resp.Choices) == 0 {
		c.emit(requestID, start, "INVALID_OUTPUT")
		return nil, fmt.Errorf("%w: response contains no choices", ErrInvalidOutput)
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		RequestID:  requestID,
		Deployment: c.cfg.Deployment,
		Model:      resp.Model,
		LatencyMs:  latency,
		Success:    true,
	})

	return &GenerateResponse{
		Text:      resp.Choices[0].Message.Content,
		Model:     resp.Model,
		LatencyMs: latency,
	}, nil
}

func (c *azureClient) doRequest(ctx context.Context, body chatRequest) (*chatResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling chat request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Deployment, chatAPIVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.cfg.Key)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, httpResp.StatusCode)
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	return &resp, nil
}

func (c *azureClient) emit(requestID string, start time.Time, code string) {
	c.observer.OnCallComplete(CallEvent{
		RequestID:  requestID,
		Deployment: c.cfg.Deployment,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    false,
		ErrorCode:  code,
	})
}
