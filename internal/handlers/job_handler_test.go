package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultrabanca/results-engine/internal/services"
)

type stubScrapeService struct {
	days  []string
	backs []int
}

func (s *stubScrapeService) ScrapeDay(_ context.Context, date string) (*services.ScrapeSummary, error) {
	s.days = append(s.days, date)
	return &services.ScrapeSummary{Date: date, Scraped: 3, Upserted: 2}, nil
}

func (s *stubScrapeService) Backfill(_ context.Context, days int) ([]*services.ScrapeSummary, error) {
	s.backs = append(s.backs, days)
	return []*services.ScrapeSummary{{Date: "2026-03-10"}}, nil
}

type stubSettlementService struct {
	dates  []string
	recent int
}

func (s *stubSettlementService) SettleDate(_ context.Context, date string) (*services.SettlementSummary, error) {
	s.dates = append(s.dates, date)
	return &services.SettlementSummary{Date: date, Checked: 5, Won: 1}, nil
}

func (s *stubSettlementService) SettleRecent(_ context.Context) ([]*services.SettlementSummary, error) {
	s.recent++
	return []*services.SettlementSummary{{Date: "2026-03-10"}, {Date: "2026-03-09"}}, nil
}

func setupJobRouter(scrape *stubScrapeService, settle *stubSettlementService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewJobHandler(scrape, settle)
	router.POST("/jobs/scrape", h.TriggerScrape)
	router.POST("/jobs/settle", h.TriggerSettle)
	return router
}

func TestTriggerScrapeWithDate(t *testing.T) {
	scrape := &stubScrapeService{}
	router := setupJobRouter(scrape, &stubSettlementService{})

	body, _ := json.Marshal(map[string]string{"date": "2026-03-10"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs/scrape", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"2026-03-10"}, scrape.days)
}

func TestTriggerScrapeRejectsBadDate(t *testing.T) {
	scrape := &stubScrapeService{}
	router := setupJobRouter(scrape, &stubSettlementService{})

	body, _ := json.Marshal(map[string]string{"date": "10/03/2026"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs/scrape", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, scrape.days)
}

func TestTriggerScrapeBackfill(t *testing.T) {
	scrape := &stubScrapeService{}
	router := setupJobRouter(scrape, &stubSettlementService{})

	body, _ := json.Marshal(map[string]int{"days": 7})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs/scrape", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int{7}, scrape.backs)
	assert.Empty(t, scrape.days)
}

func TestTriggerSettleDefaultsToRecent(t *testing.T) {
	settle := &stubSettlementService{}
	router := setupJobRouter(&stubScrapeService{}, settle)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs/settle", bytes.NewReader(nil))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, settle.recent)
	assert.Empty(t, settle.dates)
}

func TestTriggerSettleWithDate(t *testing.T) {
	settle := &stubSettlementService{}
	router := setupJobRouter(&stubScrapeService{}, settle)

	body, _ := json.Marshal(map[string]string{"date": "2026-03-09"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs/settle", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"2026-03-09"}, settle.dates)
}
