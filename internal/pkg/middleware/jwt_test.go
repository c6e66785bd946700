package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
)

const testSecret = "middleware-test-secret"

func makeToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func invokeJWTMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/income/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := JWTAuthMiddleware(models.JWTConfig{Secret: testSecret, Algorithm: "HS256"})(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	require.NoError(t, err)
	return rec, c, nextCalled
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	tokenString := makeToken(t, jwt.MapClaims{
		"sub":   "550e8400-e29b-41d4-a716-446655440000",
		"email": "user@example.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	rec, c, nextCalled := invokeJWTMiddleware(t, "Bearer "+tokenString)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", UserIDFromContext(c))

	identity := IdentityFromContext(c)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, "authenticated", identity.Role)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, nextCalled := invokeJWTMiddleware(t, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _, nextCalled := invokeJWTMiddleware(t, "Token abc123")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenString := makeToken(t, jwt.MapClaims{
		"sub": "550e8400-e29b-41d4-a716-446655440000",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	rec, _, nextCalled := invokeJWTMiddleware(t, "Bearer "+tokenString)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	tokenString := makeToken(t, jwt.MapClaims{
		"sub": "550e8400-e29b-41d4-a716-446655440000",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "not-the-server-secret")

	rec, _, nextCalled := invokeJWTMiddleware(t, "Bearer "+tokenString)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserIDFromContext_Unauthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "", UserIDFromContext(c))
}
