package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived finance views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the admin-facing reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/monthly", h.getMonthlySeries)
		reports.GET("/balance", h.getCurrentBalance)
	}
}

// parseDateParam parses a YYYY-MM-DD query parameter.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " query parameter is required (YYYY-MM-DD)"})
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a valid YYYY-MM-DD date"})
		return time.Time{}, false
	}
	return d, true
}

// getSummary godoc
// @Summary Finance summary for a date range
// @Description Aggregates income, expense and per-category totals over an inclusive date range
// @Tags reports
// @Produce  json
// @Param   from query string true "Start date (YYYY-MM-DD, inclusive)"
// @Param   to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 400 {object} map[string]string "Invalid or reversed date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}

	summary, err := h.reportingService.Summarize(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must not be after to"})
		} else {
			logger.Error("Failed to compute finance summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary, c.Query("from"), c.Query("to")))
}

// getMonthlySeries godoc
// @Summary Monthly finance series for a year
// @Description Returns twelve month reports for the given year, months ascending
// @Tags reports
// @Produce  json
// @Param   year query int true "Calendar year"
// @Success 200 {object} dto.MonthlySeriesResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute monthly series"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlySeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a positive integer"})
		return
	}

	reports, err := h.reportingService.MonthlySeries(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to compute monthly series", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(year, reports))
}

// getCurrentBalance godoc
// @Summary All-time finance position
// @Description Aggregates every recorded transaction into the dashboard balance
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Security BearerAuth
// @Router /reports/balance [get]
func (h *reportingHandler) getCurrentBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.CurrentBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute current balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary, "", ""))
}
