package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jazahq/jaza-backend/internal/pkg/middleware"
	"github.com/jazahq/jaza-backend/internal/pkg/models"
	httpHandler "github.com/jazahq/jaza-backend/services/income/handler/http"
)

// Handler coordinates the HTTP handlers for the income service
type Handler struct {
	incomeHandler  *httpHandler.IncomeHandler
	summaryHandler *httpHandler.SummaryHandler
	paymentHandler *httpHandler.PaymentHandler
	profileHandler *httpHandler.ProfileHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	incomeHandler *httpHandler.IncomeHandler,
	summaryHandler *httpHandler.SummaryHandler,
	paymentHandler *httpHandler.PaymentHandler,
	profileHandler *httpHandler.ProfileHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		incomeHandler:  incomeHandler,
		summaryHandler: summaryHandler,
		paymentHandler: paymentHandler,
		profileHandler: profileHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all routes. callbackMiddleware is applied
// to the unauthenticated payment provider endpoints (rate limiting);
// pass nothing to leave them unguarded.
func (h *Handler) RegisterRoutes(e *echo.Echo, callbackMiddleware ...echo.MiddlewareFunc) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Jaza API"})
	})

	// Payment provider callbacks carry no bearer token
	payments := e.Group("/income/payments", callbackMiddleware...)
	payments.POST("/confirmation", h.paymentHandler.Confirmation)
	payments.POST("/validate", h.paymentHandler.Validate)

	// Protected routes with JWT middleware
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	incomeGroup := protected.Group("/income")
	incomeGroup.POST("/", h.incomeHandler.CreateIncome)
	incomeGroup.GET("/", h.incomeHandler.ListIncome)
	incomeGroup.GET("/summary/daily", h.summaryHandler.DailySummary)
	incomeGroup.GET("/summary/monthly", h.summaryHandler.MonthlySummary)
	incomeGroup.GET("/summary/quarterly", h.summaryHandler.QuarterlySummary)

	profileGroup := protected.Group("/profile")
	profileGroup.GET("/", h.profileHandler.GetProfile)

	dashboardGroup := protected.Group("/dashboard")
	dashboardGroup.GET("/summary", h.summaryHandler.DashboardSummary)
}
