package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
)

// Sentinel errors for the two auth failure modes. An expired token is
// surfaced as 401, anything else as 403.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// ValidateToken verifies a bearer token against the shared signing
// secret and returns the decoded claims. Only HMAC signatures are
// accepted. The audience claim is not validated: tokens are issued by
// the hosted auth provider with its own aud value.
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	// A usable token must carry a subject
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// IdentityFromClaims extracts the transient user identity from a
// verified claim set.
func IdentityFromClaims(claims jwt.MapClaims) models.UserIdentity {
	identity := models.UserIdentity{}
	if sub, ok := claims["sub"].(string); ok {
		identity.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}
	return identity
}
