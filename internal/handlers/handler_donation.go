package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// donationHandler serves the unauthenticated public surface: the donation
// intake form and the transparency figures shown on the mosque website.
type donationHandler struct {
	transactionService portssvc.TransactionSvcFacade
	reportingService   portssvc.ReportingSvc
}

// newDonationHandler creates a new donationHandler.
func newDonationHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvc) *donationHandler {
	return &donationHandler{
		transactionService: ts,
		reportingService:   rs,
	}
}

// registerPublicRoutes registers the unauthenticated public routes.
// Donation intake is rate limited per client IP.
func registerPublicRoutes(r *gin.Engine, transactionService portssvc.TransactionSvcFacade, reportingService portssvc.ReportingSvc) {
	h := newDonationHandler(transactionService, reportingService)

	// 10 submissions per minute per IP
	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	public := r.Group("/api/v1/public")
	{
		public.POST("/donations", middleware.RateLimit(ipLimiter), h.submitDonation)
		public.GET("/summary", h.getPublicBalance)
		public.GET("/monthly", h.getPublicMonthlySeries)
	}
}

// submitDonation godoc
// @Summary Submit a donation
// @Description Records a donation from the public donation form, dated today
// @Tags public
// @Accept  json
// @Produce  json
// @Param   donation body dto.PublicDonationRequest true "Donation details"
// @Success 201 {object} dto.PublicDonationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 429 {object} map[string]string "Too many submissions"
// @Failure 500 {object} map[string]string "Failed to record donation"
// @Router /public/donations [post]
func (h *donationHandler) submitDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PublicDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.RecordPublicDonation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record public donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		}
		return
	}

	logger.Info("Public donation recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category", string(txn.Category)),
		slog.Bool("anonymous", txn.IsAnonymous))
	c.JSON(http.StatusCreated, dto.PublicDonationResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Category:      string(txn.Category),
		Date:          txn.Date.Format("2006-01-02"),
	})
}

// getPublicBalance godoc
// @Summary Public finance position
// @Description All-time income, expense and balance shown on the transparency page
// @Tags public
// @Produce  json
// @Success 200 {object} dto.FinanceSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /public/summary [get]
func (h *donationHandler) getPublicBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.CurrentBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute public balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinanceSummaryResponse(summary, "", ""))
}

// getPublicMonthlySeries godoc
// @Summary Public monthly finance chart data
// @Description Twelve month reports for the given year, months ascending
// @Tags public
// @Produce  json
// @Param   year query int true "Calendar year"
// @Success 200 {object} dto.MonthlySeriesResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to compute monthly series"
// @Router /public/monthly [get]
func (h *donationHandler) getPublicMonthlySeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a positive integer"})
		return
	}

	reports, err := h.reportingService.MonthlySeries(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to compute public monthly series", slog.Int("year", year), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(year, reports))
}
