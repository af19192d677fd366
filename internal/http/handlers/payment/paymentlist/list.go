// Package paymentlist реализует HTTP-обработчик списка платежей.
package paymentlist

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

// Handler обрабатывает HTTP-запросы на получение списка платежей.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис платежей
}

// Service описывает интерфейс бизнес-логики чтения платежей.
type Service interface {
	List(ctx context.Context) ([]*models.Payment, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список платежей
// @Description Возвращает все платежи, свежие первыми.
// @Tags Payments
// @Produce  json
// @Success 200 {object} map[string]any "Список платежей"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /payments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	payments, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list payments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list payments"))
		return
	}

	log.Info("payments listed", slog.Int("count", len(payments)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"payments": payments,
	}))
}
