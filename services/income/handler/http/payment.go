package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jazahq/jaza-backend/internal/pkg/logger"
	"github.com/jazahq/jaza-backend/internal/pkg/models"
	"github.com/jazahq/jaza-backend/services/income"
)

// PaymentHandler handles the unauthenticated payment provider
// callbacks. Responses use the provider's result envelope; any non-2xx
// status triggers a provider-side retry.
type PaymentHandler struct {
	incomeUC income.IncomeUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(incomeUC income.IncomeUC) *PaymentHandler {
	return &PaymentHandler{
		incomeUC: incomeUC,
	}
}

// Confirmation handles POST /income/payments/confirmation
func (h *PaymentHandler) Confirmation(c echo.Context) error {
	var confirmation models.MpesaConfirmation
	if err := c.Bind(&confirmation); err != nil {
		logger.Warn("Unparseable payment confirmation payload", logger.ErrorField(err))
		return c.JSON(http.StatusBadRequest, models.C2BRejected())
	}

	// The inserted flag is logged by the usecase; duplicates are
	// acknowledged like fresh inserts so the provider stops retrying.
	_, err := h.incomeUC.ConfirmPayment(c.Request().Context(), &confirmation)
	if err != nil {
		switch {
		case errors.Is(err, income.ErrMalformedPayload):
			logger.Warn("Malformed payment confirmation",
				logger.ErrorField(err),
				logger.String("transaction_id", confirmation.TransID))
			return c.JSON(http.StatusBadRequest, models.C2BRejected())
		case errors.Is(err, income.ErrUserNotFound):
			logger.Warn("Payment confirmation for unknown phone number",
				logger.String("transaction_id", confirmation.TransID),
				logger.String("msisdn", confirmation.MSISDN))
			return c.JSON(http.StatusNotFound, models.C2BRejected())
		default:
			logger.Error("Failed to process payment confirmation",
				logger.ErrorField(err),
				logger.String("transaction_id", confirmation.TransID))
			return c.JSON(http.StatusInternalServerError, models.C2BRejected())
		}
	}

	return c.JSON(http.StatusOK, models.C2BAccepted())
}

// Validate handles POST /income/payments/validate. Pre-validation
// probes are always accepted; no checks are performed.
func (h *PaymentHandler) Validate(c echo.Context) error {
	return c.JSON(http.StatusOK, models.C2BAccepted())
}
