// Package client talks to the generation API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"

	"taleweaver/pkg/schema"
	"taleweaver/pkg/utils"
)

// APIError is a non-2xx answer of the generation API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("generation api: %s", http.StatusText(e.Status))
	}
	return fmt.Sprintf("generation api: %d %s", e.Status, e.Message)
}

// Client issues one POST per call. There is no timeout or retry; the caller
// decides through ctx.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) Rewrite(ctx context.Context, req schema.RewriteRequest) (string, error) {
	var out schema.RewriteResponse
	if err := c.post(ctx, "/api/rewrite", req, &out); err != nil {
		return "", err
	}
	return out.RewrittenStory, nil
}

func (c *Client) Generate(ctx context.Context, req schema.AlternateUniverseRequest) (string, error) {
	var out schema.GenerateResponse
	if err := c.post(ctx, "/api/generate", req, &out); err != nil {
		return "", err
	}
	return out.GeneratedStory, nil
}

// SuggestQuotes returns the raw newline-separated suggestions.
func (c *Client) SuggestQuotes(ctx context.Context, highlightedText string) (string, error) {
	var out schema.QuoteSuggestionResponse
	req := schema.QuoteSuggestionRequest{HighlightedText: highlightedText}
	if err := c.post(ctx, "/api/suggest-quote", req, &out); err != nil {
		return "", err
	}
	return out.Suggestions, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	bin, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(bin))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e schema.ErrorResponse
		_ = json.Unmarshal(data, &e)
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// PickQuote chooses one non-blank line of suggestions at random.
func PickQuote(suggestions string, rng *rand.Rand) (string, bool) {
	lines := utils.NonEmptyLines(suggestions)
	if len(lines) == 0 {
		return "", false
	}
	if rng == nil {
		return lines[rand.IntN(len(lines))], true
	}
	return lines[rng.IntN(len(lines))], true
}
