// Package renderfetch wraps the paid headless-render API used as the last
// fallback when a source blocks plain HTTP. Every successful call burns one
// credit, so callers are expected to count them.
package renderfetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

// Client is a client for the render API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	mockMode   bool
}

// NewClient creates a new render API client. With an empty API key the
// client runs in mock mode and returns empty pages without burning credits.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
		mockMode:   apiKey == "",
	}
}

type renderRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type renderResponse struct {
	Success bool `json:"success"`
	Data    struct {
		HTML     string `json:"html"`
		Markdown string `json:"markdown"`
	} `json:"data"`
	Error string `json:"error,omitempty"`
}

// Page is one rendered fetch. Markdown is filled when the renderer could not
// produce HTML; parsers fall back to it.
type Page struct {
	HTML     string
	Markdown string
}

// Render fetches a URL through the headless renderer.
func (c *Client) Render(ctx context.Context, url string) (*Page, error) {
	if c.mockMode {
		c.logger.Info("render API in mock mode, returning empty page", "url", url)
		return &Page{}, nil
	}

	payload, err := json.Marshal(renderRequest{URL: url, Formats: []string{"html", "markdown"}})
	if err != nil {
		return nil, fmt.Errorf("failed to encode render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scrape", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call render API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read render response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render API returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded renderResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode render response: %w", err)
	}
	if !decoded.Success {
		return nil, fmt.Errorf("render API rejected %s: %s", url, decoded.Error)
	}

	return &Page{HTML: decoded.Data.HTML, Markdown: decoded.Data.Markdown}, nil
}
