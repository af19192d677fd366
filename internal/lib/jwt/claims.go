// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// CustomClaims расширяет стандартные claims JWT, добавляя имя пользователя и роль,
// по которой маршрутизируются защищённые группы API.
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	Username             string `json:"username"` // Имя пользователя
	Role                 string `json:"role"`     // Роль: customer, staff или admin
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Maker описывает интерфейс генерации и проверки токенов.
type Maker interface {
	GenerateToken(username, role string) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}
