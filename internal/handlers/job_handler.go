package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ultrabanca/results-engine/internal/services"
	"github.com/ultrabanca/results-engine/internal/utils"
)

// JobHandler handles manual trigger HTTP requests for the scrape and
// settlement jobs.
type JobHandler struct {
	scrapeService     services.ScrapeService
	settlementService services.SettlementService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(scrapeService services.ScrapeService, settlementService services.SettlementService) *JobHandler {
	return &JobHandler{
		scrapeService:     scrapeService,
		settlementService: settlementService,
	}
}

// TriggerScrapeRequest is the body for POST /jobs/scrape
type TriggerScrapeRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
	Days int    `json:"days"` // when > 1, backfills the last N days
}

// TriggerScrape handles POST /jobs/scrape
func (h *JobHandler) TriggerScrape(c *gin.Context) {
	var request TriggerScrapeRequest
	if err := c.ShouldBindJSON(&request); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if request.Days > 1 {
		summaries, err := h.scrapeService.Backfill(c.Request.Context(), request.Days)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Backfill failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"days": request.Days, "summaries": summaries})
		return
	}

	date := request.Date
	if date == "" {
		date = utils.Today()
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.scrapeService.ScrapeDay(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Scrape failed: " + err.Error(), "summary": summary})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// TriggerSettleRequest is the body for POST /jobs/settle
type TriggerSettleRequest struct {
	Date string `json:"date"` // YYYY-MM-DD; empty settles today and yesterday
}

// TriggerSettle handles POST /jobs/settle
func (h *JobHandler) TriggerSettle(c *gin.Context) {
	var request TriggerSettleRequest
	if err := c.ShouldBindJSON(&request); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if request.Date == "" {
		summaries, err := h.settlementService.SettleRecent(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"summaries": summaries})
		return
	}

	if _, err := time.Parse("2006-01-02", request.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.settlementService.SettleDate(c.Request.Context(), request.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
