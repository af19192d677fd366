// Package register реализует HTTP-обработчик самостоятельной регистрации.
//
// Новый пользователь получает роль customer, статус active и очередной
// членский номер MEM##.
package register

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
)

// Handler обрабатывает HTTP-запросы на регистрацию.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис регистрации
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, password string) (string, error)
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
// @Summary Регистрация пользователя
// @Description Создает учётную запись с ролью customer и выдаёт членский номер.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyCredentials true "Имя пользователя и пароль"
// @Success 200 {object} map[string]any "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Имя уже занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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

	memberID, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			log.Error("username already taken", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("username already exists"))
			return
		}
		log.Error("failed to register user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create user"))
		return
	}

	log.Info("user registered", slog.String("member_id", memberID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"member_id": memberID,
	}))
}
