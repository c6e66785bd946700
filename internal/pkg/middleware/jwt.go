package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/jazahq/jaza-backend/internal/pkg/jwt"
	"github.com/jazahq/jaza-backend/internal/pkg/models"
	"github.com/jazahq/jaza-backend/internal/utils"
)

// JWTAuthMiddleware creates a middleware for bearer-token authentication.
// Expired tokens produce 401, syntactically or cryptographically invalid
// tokens produce 403.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.ForbiddenResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.ForbiddenResponse(c, "Invalid authorization format")
			}

			// Validate the token using our JWT package
			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				if errors.Is(err, jwtpkg.ErrTokenExpired) {
					return utils.UnauthorizedResponse(c, "Token expired")
				}
				return utils.ForbiddenResponse(c, "Invalid token")
			}

			// Set the verified identity in the context
			identity := jwtpkg.IdentityFromClaims(claims)
			c.Set("user_id", identity.ID)
			c.Set("user_email", identity.Email)
			c.Set("user_role", identity.Role)

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id set by
// JWTAuthMiddleware, or an empty string on unauthenticated routes.
func UserIDFromContext(c echo.Context) string {
	if userID, ok := c.Get("user_id").(string); ok {
		return userID
	}
	return ""
}

// IdentityFromContext rebuilds the transient user identity from the
// Echo context.
func IdentityFromContext(c echo.Context) models.UserIdentity {
	identity := models.UserIdentity{ID: UserIDFromContext(c)}
	if email, ok := c.Get("user_email").(string); ok {
		identity.Email = email
	}
	if role, ok := c.Get("user_role").(string); ok {
		identity.Role = role
	}
	return identity
}
