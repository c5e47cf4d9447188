package middlewarectx

import (
	"github.com/krotovalex/inventory-keeper/internal/lib/jwt"
)

// TokenParser описывает часть jwt.Maker, необходимую для проверки токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}
