// Package plancreate реализует HTTP-обработчик создания тарифного плана.
package plancreate

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

// Handler обрабатывает HTTP-запросы на создание плана.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис тарифных планов
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики создания плана.
type Service interface {
	Create(ctx context.Context, req models.DummyPlan) (string, error)
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
// @Summary Создать тарифный план
// @Description Создает план и выдаёт ему очередной идентификатор SUB##.
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param request body models.DummyPlan true "Данные плана"
// @Success 200 {object} map[string]any "План создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Идентификатор уже занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /plans [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	planID, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			log.Error("plan identifier conflict", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("plan already exists"))
			return
		}
		log.Error("failed to create plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create plan"))
		return
	}

	log.Info("plan created", slog.String("plan_id", planID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plan_id": planID,
	}))
}
