// Package planupdate реализует HTTP-обработчик изменения тарифного плана.
// Публичный идентификатор SUB## при обновлении не меняется.
package planupdate

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

// Handler обрабатывает HTTP-запросы на изменение плана.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис тарифных планов
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики изменения плана.
type Service interface {
	Update(ctx context.Context, id int, req models.DummyPlan) error
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
// @Summary Изменить тарифный план
// @Description Обновляет название, срок, цену и статус плана.
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param id path int true "ID плана"
// @Param request body models.DummyPlan true "Новые данные плана"
// @Success 200 {object} map[string]any "План обновлён"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 404 {object} response.ErrorResponse "План не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /plans/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.update"

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

	var req models.DummyPlan
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
		if errors.Is(err, models.ErrNotFound) {
			log.Error("plan not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("plan not found"))
			return
		}
		log.Error("failed to update plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update plan"))
		return
	}

	log.Info("plan updated", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated": id,
	}))
}
