package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Generate issues a signed bearer token for the given user.
func Generate(metadata Metadata, secret string, expire time.Duration) (string, error) {
	now := time.Now()
	claim := &Claim{
		Metadata: metadata,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ticketing-service",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(secret))
}

// Verify parses and validates a bearer token, failing closed on any error.
func Verify(tokenString, secret string) (*Claim, error) {
	claim := &Claim{}
	parsed, err := jwt.ParseWithClaims(tokenString, claim, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claim.Metadata.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claim, nil
}
