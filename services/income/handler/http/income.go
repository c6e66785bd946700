package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jazahq/jaza-backend/internal/pkg/logger"
	"github.com/jazahq/jaza-backend/internal/pkg/middleware"
	"github.com/jazahq/jaza-backend/internal/pkg/models"
	"github.com/jazahq/jaza-backend/internal/utils"
	"github.com/jazahq/jaza-backend/services/income"
)

// dateLayout is the ISO date format accepted on list bounds
const dateLayout = "2006-01-02"

// IncomeHandler handles HTTP requests for income operations
type IncomeHandler struct {
	incomeUC income.IncomeUC
}

// NewIncomeHandler creates a new income handler
func NewIncomeHandler(incomeUC income.IncomeUC) *IncomeHandler {
	return &IncomeHandler{
		incomeUC: incomeUC,
	}
}

// authenticatedUserID extracts and parses the user id set by the JWT
// middleware. A sub claim that is not a UUID cannot belong to any
// stored record.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(middleware.UserIDFromContext(c))
}

// CreateIncome handles POST /income/
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.ForbiddenResponse(c, "Invalid token: subject is not a valid user id")
	}

	var req models.IncomeCreateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for income creation",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Amount < 0 {
		return utils.BadRequestResponse(c, "Amount must be non-negative")
	}
	if req.Source != models.SourceManual && req.Source != models.SourceMpesa {
		return utils.BadRequestResponse(c, "Source must be 'manual' or 'mpesa'")
	}

	record, err := h.incomeUC.Record(c.Request().Context(), userID, req.Amount, req.Source)
	if err != nil {
		logger.Error("Failed to record income",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to record income")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Income recorded successfully", record)
}

// ListIncome handles GET /income/ with optional start_date and
// end_date bounds (inclusive).
func (h *IncomeHandler) ListIncome(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return utils.ForbiddenResponse(c, "Invalid token: subject is not a valid user id")
	}

	var req models.IncomeListRequest

	if raw := c.QueryParam("start_date"); raw != "" {
		start, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return utils.BadRequestResponse(c, "start_date must be an ISO date (YYYY-MM-DD)")
		}
		req.StartDate = &start
	}

	if raw := c.QueryParam("end_date"); raw != "" {
		end, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return utils.BadRequestResponse(c, "end_date must be an ISO date (YYYY-MM-DD)")
		}
		// Inclusive bound: extend to the end of the given day
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		req.EndDate = &end
	}

	records, err := h.incomeUC.List(c.Request().Context(), userID, req)
	if err != nil {
		logger.Error("Failed to list income",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "Failed to list income")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Income retrieved successfully", records)
}
