package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MakerImpl реализует Maker на основе симметричного секретного ключа.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker создает новый MakerImpl с заданным секретом и временем жизни токена.
func NewMaker(secretKey string, tokenTTL time.Duration) *MakerImpl {
	return &MakerImpl{secretKey: secretKey, tokenTTL: tokenTTL}
}

// GenerateToken создает JWT токен с заданными username и role,
// подписывая его секретным ключом. Время жизни определяется tokenTTL.
func (j *MakerImpl) GenerateToken(username, role string) (string, error) {
	const op = "jwt.GenerateToken"
	claims := CustomClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
