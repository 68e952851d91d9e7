package generate

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

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

const systemPrompt = "You are a naming assistant. Given a business idea, " +
	"propose short, brandable domain name stems without extensions. " +
	"Respond with a JSON array of lowercase strings and nothing else."

// OpenAIClient speaks the OpenAI-compatible chat completions API over
// direct HTTP.
type OpenAIClient struct {
	BaseURL    string
	APIKey     string
	ModelName  string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewOpenAIClient returns a client with defaults applied.
func NewOpenAIClient(baseURL, apiKey, model string) *OpenAIClient {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &OpenAIClient{
		BaseURL:   url,
		APIKey:    strings.TrimSpace(apiKey),
		ModelName: model,
	}
}

// Model identifies the upstream model for cache keying.
func (c *OpenAIClient) Model() string {
	if c == nil || strings.TrimSpace(c.ModelName) == "" {
		return defaultModel
	}
	return c.ModelName
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate requests stem proposals via a single chat completion.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, count int) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("openai client not configured")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	payload := chatRequest{
		Model: c.Model(),
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Propose %d name stems for: %s", count, prompt)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("generation request failed: status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("generation response had no choices")
	}

	return parseStems(parsed.Choices[0].Message.Content)
}

// parseStems extracts the JSON string array from the model output,
// tolerating surrounding prose or code fences.
func parseStems(content string) ([]string, error) {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("generation response is not a JSON array")
	}

	var stems []string
	if err := json.Unmarshal([]byte(content[start:end+1]), &stems); err != nil {
		return nil, fmt.Errorf("decode stems: %w", err)
	}
	return stems, nil
}
