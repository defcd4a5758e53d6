package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/settlement/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(c ctx.Ctx, address Address) (string, error)
	ParseToken(c ctx.Ctx, token string) (string, error)
}
