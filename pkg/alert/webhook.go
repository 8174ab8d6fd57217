// Package alert posts operational failures to the on-call webhook.
package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

// Notifier sends alert payloads to a webhook. A Notifier with an empty URL
// is valid and only logs, so callers never need to nil-check.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNotifier creates a new alert notifier
func NewNotifier(webhookURL string, logger *slog.Logger) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type payload struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	Exception string `json:"exception,omitempty"`
}

// Notify posts one alert. Delivery failures are logged and swallowed: an
// unreachable webhook must never break a scrape or settlement run.
func (n *Notifier) Notify(ctx context.Context, title, message, source string, cause error) {
	if n.webhookURL == "" {
		// No webhook configured: the alert still has to surface somewhere.
		n.logger.Warn("alert webhook not configured, logging only",
			"title", title, "message", message, "source", source, "error", cause)
		return
	}

	p := payload{Title: title, Message: message, Source: source}
	if cause != nil {
		p.Exception = cause.Error()
	}
	body, err := json.Marshal(p)
	if err != nil {
		n.logger.Error("failed to encode alert payload", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("failed to create alert request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Error("failed to deliver alert", "title", title, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Error("alert webhook rejected payload",
			"title", title, "status", fmt.Sprintf("%d", resp.StatusCode))
	}
}
