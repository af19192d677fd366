// Package planlist реализует HTTP-обработчик списка тарифных планов.
// Список отдаётся из кеша, если он прогрет.
package planlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение списка планов.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис тарифных планов
}

// Service описывает интерфейс бизнес-логики чтения планов.
type Service interface {
	List(ctx context.Context) ([]*models.Plan, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список тарифных планов
// @Description Возвращает все планы в порядке создания.
// @Tags Plans
// @Produce  json
// @Success 200 {object} map[string]any "Список планов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	plans, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list plans"))
		return
	}

	log.Info("plans listed", slog.Int("count", len(plans)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plans": plans,
	}))
}
