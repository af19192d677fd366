// Package login реализует HTTP-обработчик входа в систему.
//
// Обработчик декодирует учётные данные, валидирует их и делегирует проверку
// сервису аутентификации. При успехе возвращает JWT, роль и стартовый
// маршрут клиента; неизвестное имя и неверный пароль дают одинаковый ответ.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/models"
	auth "github.com/ironman-fitness/gym-manager/internal/services/auth"
)

// Handler обрабатывает HTTP-запросы на вход.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис аутентификации
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, username, password string) (token, role string, err error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход в систему
// @Description Аутентифицирует пользователя по имени и паролю. Возвращает JWT, роль и стартовый маршрут.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyCredentials true "Учетные данные"
// @Success 200 {object} map[string]any "Успешный вход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 403 {object} response.ErrorResponse "Учётная запись отключена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCredentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, role, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials):
			log.Error("login failed", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error(models.ErrInvalidCredentials.Error()))
		case errors.Is(err, models.ErrAccountInactive):
			log.Error("login rejected", sl.Err(err))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error(models.ErrAccountInactive.Error()))
		default:
			log.Error("login failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("login success", slog.String("username", req.Username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token":    token,
		"role":     role,
		"redirect": auth.LandingRoute(role),
	}))
}
