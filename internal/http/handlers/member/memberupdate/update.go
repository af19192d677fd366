// Package memberupdate реализует HTTP-обработчик изменения участника.
// Пустой пароль в запросе оставляет прежний, членский номер не меняется.
package memberupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// Handler обрабатывает HTTP-запросы на изменение участника.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис участников
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики изменения участника.
type Service interface {
	Update(ctx context.Context, id int, req models.DummyUser) error
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
// @Summary Изменить участника
// @Description Обновляет данные участника. Пустой пароль оставляет прежний.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param id path int true "ID участника"
// @Param request body models.DummyUser true "Новые данные участника"
// @Success 200 {object} map[string]any "Участник обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 409 {object} response.ErrorResponse "Имя, почта или телефон заняты"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /members/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

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

	if err := h.service.Update(r.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			log.Error("member not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("member not found"))
		case errors.Is(err, models.ErrDuplicate):
			log.Error("member conflict", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("name, email or mobile number already exists"))
		default:
			log.Error("failed to update member", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update member"))
		}
		return
	}

	log.Info("member updated", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated": id,
	}))
}
