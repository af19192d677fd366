// Package memberremove реализует HTTP-обработчик удаления участника.
// Платежи участника не каскадируются: их ссылки остаются висящими
// и обрабатываются при чтении.
package memberremove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// Handler обрабатывает HTTP-запросы на удаление участника.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис участников
}

// Service описывает интерфейс бизнес-логики удаления участника.
type Service interface {
	Delete(ctx context.Context, id int) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить участника
// @Description Удаляет участника по ID. Платежи не каскадируются.
// @Tags Members
// @Produce  json
// @Param id path int true "ID участника"
// @Success 200 {object} map[string]any "Участник удалён"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /members/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.remove"

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

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Error("member not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("member not found"))
			return
		}
		log.Error("failed to delete member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete member"))
		return
	}

	log.Info("member deleted", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted": id,
	}))
}
