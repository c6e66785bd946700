package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jazahq/jaza-backend/internal/pkg/middleware"
)

// ProfileHandler serves the authenticated caller's identity as decoded
// from the verified token. Nothing is read from the store.
type ProfileHandler struct{}

// NewProfileHandler creates a new profile handler
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// GetProfile handles GET /profile/
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity := middleware.IdentityFromContext(c)
	return c.JSON(http.StatusOK, identity)
}
