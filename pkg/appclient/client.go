// Package appclient talks to the betting platform's internal API: win
// notification triggers and the payment reconciliation function.
package appclient

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

// Client is a client for the platform's internal endpoints
type Client struct {
	baseURL        string
	internalSecret string
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewClient creates a new internal API client
func NewClient(baseURL, internalSecret string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        baseURL,
		internalSecret: internalSecret,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		logger:         logger,
	}
}

// WinNotification carries the data the platform needs to message a winner.
type WinNotification struct {
	Name     string  `json:"nome"`
	Phone    string  `json:"telefone,omitempty"`
	Prize    float64 `json:"premio"`
	Modality string  `json:"modalidade"`
	Balance  float64 `json:"saldo"`
}

type triggerRequest struct {
	TriggerType string          `json:"triggerType"`
	UserData    WinNotification `json:"userData"`
}

// NotifyWin fires the premio trigger for one paid bet. Failures are logged
// and swallowed; the money already moved and a missed message must not
// unwind a settlement.
func (c *Client) NotifyWin(ctx context.Context, n WinNotification) {
	if c.internalSecret == "" {
		return
	}

	body, err := json.Marshal(triggerRequest{TriggerType: "premio", UserData: n})
	if err != nil {
		c.logger.Error("failed to encode win notification", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/internal/triggers", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("failed to create win notification request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-internal-secret", c.internalSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to deliver win notification", "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		c.logger.Error("win notification rejected", "status", resp.StatusCode)
	}
}

// ReconcileSummary is the platform's report after a reconciliation pass.
type ReconcileSummary struct {
	Checked   int `json:"checked"`
	Confirmed int `json:"confirmed"`
	Errors    int `json:"errors"`
}

// CheckPendingPayments asks the platform to poll its payment providers for
// deposits still marked pending.
func (c *Client) CheckPendingPayments(ctx context.Context, hoursBack, limit int) (*ReconcileSummary, error) {
	body, err := json.Marshal(map[string]int{"hours_back": hoursBack, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("failed to encode reconcile request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/functions/v1/check-pending-payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create reconcile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-internal-secret", c.internalSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call reconcile endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read reconcile response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reconcile endpoint returned status %d: %s", resp.StatusCode, string(raw))
	}

	var summary ReconcileSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode reconcile response: %w", err)
	}
	return &summary, nil
}
