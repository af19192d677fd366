// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// GetHash создает bcrypt-хеш пароля для безопасного хранения.
// CompareHash сравнивает сохранённый bcrypt-хеш с введённым паролем.
// Пароли никогда не хранятся и не сравниваются открытым текстом.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш
// со стоимостью bcrypt.DefaultCost (10).
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
