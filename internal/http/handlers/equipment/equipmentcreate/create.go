// Package equipmentcreate реализует HTTP-обработчик добавления инвентаря.
package equipmentcreate

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
	equipment "github.com/ironman-fitness/gym-manager/internal/services/equipment"
)

// Handler обрабатывает HTTP-запросы на добавление инвентаря.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис инвентаря
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики добавления инвентаря.
type Service interface {
	Create(ctx context.Context, req models.DummyEquipment) (int, error)
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
// @Summary Добавить инвентарь
// @Description Создает позицию инвентаря. Статус один из: Available, Not available, Discarded.
// @Tags Equipment
// @Accept  json
// @Produce  json
// @Param request body models.DummyEquipment true "Данные позиции"
// @Success 200 {object} map[string]any "Позиция создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или недопустимый статус"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /equipment [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.equipment.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, equipment.ErrInvalidStatus) {
			log.Error("invalid equipment status", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid equipment status"))
			return
		}
		log.Error("failed to create equipment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create equipment"))
		return
	}

	log.Info("equipment created", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
