package token

import "github.com/golang-jwt/jwt/v5"

type Metadata struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type Claim struct {
	Metadata Metadata `json:"metadata"`
	jwt.RegisteredClaims
}
