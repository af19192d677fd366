// Package equipmentupdate реализует HTTP-обработчик изменения инвентаря.
package equipmentupdate

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
	equipment "github.com/ironman-fitness/gym-manager/internal/services/equipment"
)

// Handler обрабатывает HTTP-запросы на изменение инвентаря.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис инвентаря
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики изменения инвентаря.
type Service interface {
	Update(ctx context.Context, id int, req models.DummyEquipment) error
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
// @Summary Изменить инвентарь
// @Description Обновляет название, тип, количество и статус позиции.
// @Tags Equipment
// @Accept  json
// @Produce  json
// @Param id path int true "ID позиции"
// @Param request body models.DummyEquipment true "Новые данные позиции"
// @Success 200 {object} map[string]any "Позиция обновлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 404 {object} response.ErrorResponse "Позиция не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или недопустимый статус"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /equipment/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.equipment.update"

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

	var req models.DummyEquipment
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
			log.Error("equipment not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("equipment not found"))
		case errors.Is(err, equipment.ErrInvalidStatus):
			log.Error("invalid equipment status", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid equipment status"))
		default:
			log.Error("failed to update equipment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update equipment"))
		}
		return
	}

	log.Info("equipment updated", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated": id,
	}))
}
