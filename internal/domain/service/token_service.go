package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates the session tokens presented on interactive
// paths. Issuing sessions is the login UI's concern, which is external
// to this core.
type TokenService interface {
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
