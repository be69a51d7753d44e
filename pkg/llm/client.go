// Package llm is a minimal Ollama client for labeling, extraction and
// embeddings. Responses are requested non-streaming; labeling prompts are
// small and extraction output is a single JSON object.
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
)

// Client calls a local Ollama instance.
type Client struct {
	httpClient *http.Client
	host       string
}

// NewClient creates a client for the given Ollama host, e.g.
// "http://localhost:11434". The timeout applies per request.
func NewClient(host string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		host:       strings.TrimRight(host, "/"),
	}
}

// Generate runs a single non-streaming completion and returns the trimmed
// response text.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	reqBody := map[string]any{
		"model":  model,
		"prompt": prompt,
		"stream": false,
	}
	var resp struct {
		Response string `json:"response"`
	}
	if err := c.post(ctx, "/api/generate", reqBody, &resp); err != nil {
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}
	out := strings.TrimSpace(resp.Response)
	if out == "" {
		return "", fmt.Errorf("ollama returned empty response")
	}
	return out, nil
}

// Embed returns an embedding for the given text, checking the dimension
// against dim. The legacy /api/embeddings endpoint is tried first, then
// the newer /api/embed shape.
func (c *Client) Embed(ctx context.Context, model, text string, dim int) ([]float32, error) {
	var legacy struct {
		Embedding []float32 `json:"embedding"`
	}
	err := c.post(ctx, "/api/embeddings", map[string]any{"model": model, "prompt": text}, &legacy)
	if err == nil && len(legacy.Embedding) > 0 {
		return checkDim(legacy.Embedding, dim)
	}

	var modern struct {
		Embeddings [][]float32 `json:"embeddings"`
	}
	if err2 := c.post(ctx, "/api/embed", map[string]any{"model": model, "input": text}, &modern); err2 != nil {
		if err != nil {
			return nil, fmt.Errorf("ollama embeddings failed: %w", err)
		}
		return nil, fmt.Errorf("ollama embed failed: %w", err2)
	}
	if len(modern.Embeddings) == 0 || len(modern.Embeddings[0]) == 0 {
		return nil, fmt.Errorf("ollama returned no embedding for model %s", model)
	}
	return checkDim(modern.Embeddings[0], dim)
}

func checkDim(vec []float32, dim int) ([]float32, error) {
	if dim > 0 && len(vec) != dim {
		return nil, fmt.Errorf("embedding dimension mismatch: got %d, want %d (wrong embedding model?)", len(vec), dim)
	}
	return vec, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respData, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(respData)))
	}
	if out != nil {
		if err := json.Unmarshal(respData, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
