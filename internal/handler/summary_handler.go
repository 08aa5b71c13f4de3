package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlfonsoMarC/RogalikLessons/internal/response"
	"github.com/AlfonsoMarC/RogalikLessons/internal/service"
)

// SummaryHandler serves the monthly income summary.
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// MonthlySummary godoc
// GET /api/v1/summary?year=2026&month=8
// Returns the pending/collected totals for one calendar month, split
// between the tutor's own bucket and the external one. Defaults to the
// current month when year/month are omitted.
func (h *SummaryHandler) MonthlySummary(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"year": "must be a number"})
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"month": "must be a number between 1 and 12"})
			return
		}
		month = n
	}

	summary, err := h.summaryService.Monthly(c.Request.Context(), year, time.Month(month))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"year":    year,
		"month":   month,
		"summary": summary,
	})
}
