package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNotifyPostsPayload(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, slog.Default())
	n.Notify(context.Background(), "Scrape run failed", "date=2026-03-10", "results-engine", errors.New("boom"))

	assert.Equal(t, "Scrape run failed", got.Title)
	assert.Equal(t, "date=2026-03-10", got.Message)
	assert.Equal(t, "results-engine", got.Source)
	assert.Equal(t, "boom", got.Exception)
}

func TestNotifyWithoutWebhookLogsTheAlert(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	n := NewNotifier("", logger)
	n.Notify(context.Background(), "Scrape run failed", "date=2026-03-10", "results-engine", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "alert webhook not configured")
	assert.Contains(t, out, "Scrape run failed")
	assert.Contains(t, out, "boom")
}
