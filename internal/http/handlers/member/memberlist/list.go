// Package memberlist реализует HTTP-обработчик списка участников.
package memberlist

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

// Handler обрабатывает HTTP-запросы на получение списка участников.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис участников
}

// Service описывает интерфейс бизнес-логики чтения участников.
type Service interface {
	List(ctx context.Context) ([]*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список участников
// @Description Возвращает всех участников в порядке создания. Хэши паролей не отдаются.
// @Tags Members
// @Produce  json
// @Success 200 {object} map[string]any "Список участников"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /members [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	members, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list members", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list members"))
		return
	}

	log.Info("members listed", slog.Int("count", len(members)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"members": members,
	}))
}
