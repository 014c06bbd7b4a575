package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fundHandler handles HTTP requests related to funds.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
}

// newFundHandler creates a new fundHandler.
func newFundHandler(fs portssvc.FundSvcFacade) *fundHandler {
	return &fundHandler{fundService: fs}
}

// registerFundRoutes registers routes related to funds.
func registerFundRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)

	funds := rg.Group("/funds")
	{
		funds.POST("", h.createFund)
		funds.GET("", h.listFunds)
		funds.GET("/:id", h.getFund)
		funds.PUT("/:id", h.updateFund)
		funds.DELETE("/:id", h.deleteFund)
		funds.POST("/:id/deactivate", h.deactivateFund)
	}
}

// createFund godoc
// @Summary Create a new fund
// @Description Creates a new designated fund
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   fund body dto.CreateFundRequest true "Fund details"
// @Success 201 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create fund"
// @Security BearerAuth
// @Router /funds [post]
func (h *fundHandler) createFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fund, err := h.fundService.CreateFund(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating fund", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create fund in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fund"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToFundResponse(fund))
}

// getFund godoc
// @Summary Get a fund by ID
// @Description Retrieves details for a specific fund
// @Tags funds
// @Produce  json
// @Param   id path string true "Fund ID"
// @Success 200 {object} dto.FundResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 500 {object} map[string]string "Failed to retrieve fund"
// @Security BearerAuth
// @Router /funds/{id} [get]
func (h *fundHandler) getFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("id")

	fund, err := h.fundService.GetFundByID(c.Request.Context(), fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else {
			logger.Error("Failed to get fund", slog.String("fund_id", fundID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fund"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}

// listFunds godoc
// @Summary List funds
// @Description Lists funds, active ones first. Inactive funds are included on request.
// @Tags funds
// @Produce  json
// @Param   includeInactive query bool false "Include deactivated funds"
// @Success 200 {object} dto.ListFundsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list funds"
// @Security BearerAuth
// @Router /funds [get]
func (h *fundHandler) listFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListFundsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	funds, err := h.fundService.ListFunds(c.Request.Context(), params.IncludeInactive)
	if err != nil {
		logger.Error("Failed to list funds", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list funds"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListFundsResponse(funds))
}

// updateFund godoc
// @Summary Update a fund
// @Description Updates a fund's details
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   id path string true "Fund ID"
// @Param   fund body dto.UpdateFundRequest true "Fields to update"
// @Success 200 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 500 {object} map[string]string "Failed to update fund"
// @Security BearerAuth
// @Router /funds/{id} [put]
func (h *fundHandler) updateFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("id")

	var req dto.UpdateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fund, err := h.fundService.UpdateFund(c.Request.Context(), fundID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update fund", slog.String("fund_id", fundID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fund"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}

// deleteFund godoc
// @Summary Delete a fund
// @Description Deletes a fund. Refused with 409 when transactions reference it; deactivate instead.
// @Tags funds
// @Produce  json
// @Param   id path string true "Fund ID"
// @Success 204 "Fund deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 409 {object} map[string]string "Fund has transactions attached"
// @Failure 500 {object} map[string]string "Failed to delete fund"
// @Security BearerAuth
// @Router /funds/{id} [delete]
func (h *fundHandler) deleteFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.fundService.DeleteFund(c.Request.Context(), fundID, userID); err != nil {
		if errors.Is(err, apperrors.ErrFundInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else {
			logger.Error("Failed to delete fund", slog.String("fund_id", fundID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fund"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// deactivateFund godoc
// @Summary Deactivate a fund
// @Description Marks a fund inactive so it stops accepting new transactions
// @Tags funds
// @Produce  json
// @Param   id path string true "Fund ID"
// @Success 204 "Fund deactivated"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 500 {object} map[string]string "Failed to deactivate fund"
// @Security BearerAuth
// @Router /funds/{id}/deactivate [post]
func (h *fundHandler) deactivateFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.fundService.DeactivateFund(c.Request.Context(), fundID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else {
			logger.Error("Failed to deactivate fund", slog.String("fund_id", fundID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate fund"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
