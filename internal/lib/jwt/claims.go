// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
package jwt

import "github.com/golang-jwt/jwt/v5"

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	Username             string `json:"username"` // Имя пользователя
	Role                 string `json:"role"`     // Роль пользователя
	jwt.RegisteredClaims        // Стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}
