// Package membercreate реализует HTTP-обработчик добавления участника
// сотрудником или администратором.
package membercreate

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

// Handler обрабатывает HTTP-запросы на добавление участника.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис участников
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики добавления участника.
type Service interface {
	Create(ctx context.Context, req models.DummyUser) (string, error)
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
// @Summary Добавить участника
// @Description Создает участника и выдаёт ему очередной членский номер MEM##.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param request body models.DummyUser true "Данные участника"
// @Success 200 {object} map[string]any "Участник создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Имя, почта или телефон заняты"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /members [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUser
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
	// Пароль обязателен при создании, но опционален при обновлении,
	// поэтому проверяется здесь, а не тегом.
	if req.Password == "" {
		log.Error("password is empty")
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("field Password is a required field"))
		return
	}

	memberID, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			log.Error("member already exists", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("name, email or mobile number already exists"))
			return
		}
		log.Error("failed to create member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create member"))
		return
	}

	log.Info("member created", slog.String("member_id", memberID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"member_id": memberID,
	}))
}
