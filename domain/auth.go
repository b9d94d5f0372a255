package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/marketplace/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken verifies signature over the signing message and issues a token for address
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address Address, err error)
	SigningMessage(address Address) string
}
