// Package webpage fetches public result pages with browser-like headers and
// a retry schedule tuned for the sources' rate limiting.
package webpage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/exp/slog"
)

// ErrRateLimited marks a fetch that kept hitting HTTP 429 until the retry
// budget ran out. Callers match it with errors.Is.
var ErrRateLimited = errors.New("rate limited")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client is a GET client for the public result sites.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a new webpage client
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  defaultUserAgent,
		logger:     logger,
	}
}

type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.url, e.code)
}

func (e *statusError) Is(target error) bool {
	return target == ErrRateLimited && e.code == http.StatusTooManyRequests
}

// Get fetches a URL and returns the body. 429 and 5xx responses are retried
// with exponential backoff (2s initial, 30s interval cap, 2min total); other
// non-200 statuses fail immediately.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 2 * time.Second
	policy.MaxInterval = 30 * time.Second
	policy.MaxElapsedTime = 2 * time.Minute

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err = io.ReadAll(resp.Body)
			return err
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			c.logger.Warn("source rate limited or unavailable, backing off",
				"url", url, "status", resp.StatusCode)
			return &statusError{code: resp.StatusCode, url: url}
		default:
			return backoff.Permanent(&statusError{code: resp.StatusCode, url: url})
		}
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}
