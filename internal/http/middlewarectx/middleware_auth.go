// Package middlewarectx содержит HTTP middleware для проверки JWT токенов
// и ограничения доступа по ролям.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization и в случае успеха добавляет в контекст имя пользователя
// и роль для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
	"github.com/ironman-fitness/gym-manager/internal/lib/jwt"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден, добавляет имя пользователя и роль в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), User, claims.Username)
			ctx = context.WithValue(ctx, Role, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
