package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenStatus is the outcome of validating a bearer token. An expired
// token is reported distinctly so callers can prompt a re-login instead
// of a generic rejection.
type TokenStatus int

const (
	TokenValid TokenStatus = iota
	TokenExpired
	TokenInvalid
)

// TokenClaims is the validated identity carried by a token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

type jwtCustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for the provided user.
func GenerateToken(secret string, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	claims := &jwtCustomClaims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken checks the token signature and expiry and returns the
// embedded claims together with a typed status.
func ValidateToken(secret, tokenString string) (TokenClaims, TokenStatus) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenClaims{}, TokenExpired
		}
		return TokenClaims{}, TokenInvalid
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, TokenInvalid
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return TokenClaims{}, TokenInvalid
	}

	return TokenClaims{UserID: userID, Role: claims.Role}, TokenValid
}
