// Package notificationlist реализует HTTP-обработчик списка напоминаний
// об абонементах, истекающих в текущем календарном месяце.
package notificationlist

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение напоминаний.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис напоминаний
}

// Service описывает интерфейс вывода напоминаний.
type Service interface {
	DueThisMonth(ctx context.Context, today time.Time) ([]*models.Reminder, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Напоминания текущего месяца
// @Description Возвращает платежи с датой окончания в текущем месяце, отсортированные по возрастанию даты.
// @Tags Notifications
// @Produce  json
// @Success 200 {object} map[string]any "Список напоминаний"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /notifications [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notification.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	reminders, err := h.service.DueThisMonth(r.Context(), time.Now())
	if err != nil {
		log.Error("failed to list reminders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list reminders"))
		return
	}

	log.Info("reminders listed", slog.Int("count", len(reminders)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"reminders": reminders,
	}))
}
