package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
)

// RequireRole возвращает middleware, пропускающий запрос только если роль
// из контекста входит в список разрешённых. Должен стоять после JWTMiddleware.
func RequireRole(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRole"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			role, ok := r.Context().Value(Role).(string)
			if !ok || role == "" {
				log.Error("user role missing in context")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}
			if _, ok := allowed[role]; !ok {
				log.Error("access denied", slog.String("role", role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
