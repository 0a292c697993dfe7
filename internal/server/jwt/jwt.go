// Package jwt issues and validates signed session tokens.
// Tokens are stateless: validity is determined purely by signature and
// expiry, there is no server-side revocation list.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the session token payload.
// The subject id rides in "id", matching the wire contract.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Service provides session token generation and validation
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new token service.
// secret must be a cryptographically secure random string, configured at
// startup and shared by issuance and validation.
func NewService(secret string, tokenTTL time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Issue creates a signed token embedding the subject id with an expiry
// tokenTTL from now
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "kuhaku",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and verifies a token, returning the embedded subject id.
// It fails on a bad signature, a malformed token, a wrong signing method,
// or an elapsed expiry.
func (s *Service) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if claims.UserID == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return claims.UserID, nil
}
