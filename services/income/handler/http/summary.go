package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jazahq/jaza-backend/internal/pkg/logger"
	"github.com/jazahq/jaza-backend/internal/utils"
	"github.com/jazahq/jaza-backend/services/income"
)

// SummaryHandler handles HTTP requests for income summaries and the
// dashboard.
type SummaryHandler struct {
	incomeUC income.IncomeUC
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(incomeUC income.IncomeUC) *SummaryHandler {
	return &SummaryHandler{
		incomeUC: incomeUC,
	}
}

// DailySummary handles GET /income/summary/daily
func (h *SummaryHandler) DailySummary(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.ForbiddenResponse(c, "Invalid token: subject is not a valid user id")
	}

	summary, err := h.incomeUC.DailySummary(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to build daily summary",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to build daily summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Daily summary retrieved successfully", summary)
}

// MonthlySummary handles GET /income/summary/monthly
func (h *SummaryHandler) MonthlySummary(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.ForbiddenResponse(c, "Invalid token: subject is not a valid user id")
	}

	summary, err := h.incomeUC.MonthlySummary(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to build monthly summary",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to build monthly summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Monthly summary retrieved successfully", summary)
}

// QuarterlySummary handles GET /income/summary/quarterly
func (h *SummaryHandler) QuarterlySummary(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.ForbiddenResponse(c, "Invalid token: subject is not a valid user id")
	}

	summary, err := h.incomeUC.QuarterlySummary(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to build quarterly summary",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to build quarterly summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quarterly summary retrieved successfully", summary)
}

// DashboardSummary handles GET /dashboard/summary
func (h *SummaryHandler) DashboardSummary(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.ForbiddenResponse(c, "Invalid token: subject is not a valid user id")
	}

	summary, err := h.incomeUC.DashboardSummary(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to build dashboard summary",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to build dashboard summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}
