package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ultrabanca/results-engine/internal/repositories"
	"github.com/ultrabanca/results-engine/internal/utils"
)

// ResultHandler handles drawing-result HTTP requests
type ResultHandler struct {
	resultRepo repositories.ResultRepository
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(resultRepo repositories.ResultRepository) *ResultHandler {
	return &ResultHandler{resultRepo: resultRepo}
}

// GetResultsByDate handles GET /results/:date
func (h *ResultHandler) GetResultsByDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	drawings, err := h.resultRepo.GetDrawingsByDates(c.Request.Context(), []string{date})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "count": len(drawings), "results": drawings})
}

// GetTodayResults handles GET /results
func (h *ResultHandler) GetTodayResults(c *gin.Context) {
	date := utils.Today()
	drawings, err := h.resultRepo.GetDrawingsByDates(c.Request.Context(), []string{date})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "count": len(drawings), "results": drawings})
}
