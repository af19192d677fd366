// Package equipmentlist реализует HTTP-обработчик списка инвентаря.
package equipmentlist

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

// Handler обрабатывает HTTP-запросы на получение списка инвентаря.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис инвентаря
}

// Service описывает интерфейс бизнес-логики чтения инвентаря.
type Service interface {
	List(ctx context.Context) ([]*models.Equipment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список инвентаря
// @Description Возвращает весь инвентарь в порядке создания.
// @Tags Equipment
// @Produce  json
// @Success 200 {object} map[string]any "Список инвентаря"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /equipment [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.equipment.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list equipment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list equipment"))
		return
	}

	log.Info("equipment listed", slog.Int("count", len(items)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"equipment": items,
	}))
}
