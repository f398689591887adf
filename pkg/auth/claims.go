package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	MemberID int64
	Role     string
	JTI      string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	MemberID int64  `json:"member_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
