// Package memberread реализует HTTP-обработчик карточки участника:
// данные учётной записи, история платежей с названиями планов и дата
// окончания действующего абонемента.
package memberread

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

// Handler обрабатывает HTTP-запросы на чтение карточки участника.
type Handler struct {
	log      *slog.Logger   // Логгер для записи операций и ошибок
	members  MemberService  // Сервис участников
	payments PaymentService // Сервис платежей для истории
}

// MemberService описывает интерфейс чтения участника.
type MemberService interface {
	Get(ctx context.Context, id int) (*models.User, error)
}

// PaymentService описывает интерфейс истории платежей участника.
type PaymentService interface {
	HistoryByUser(ctx context.Context, userID int) ([]models.PaymentInfo, string, error)
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, members MemberService, payments PaymentService) *Handler {
	return &Handler{log: log, members: members, payments: payments}
}

// ServeHTTP godoc
// @Summary Карточка участника
// @Description Возвращает участника, его историю платежей и дату окончания абонемента.
// @Tags Members
// @Produce  json
// @Param id path int true "ID участника"
// @Success 200 {object} map[string]any "Карточка участника"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /members/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.read"

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

	member, err := h.members.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Error("member not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("member not found"))
			return
		}
		log.Error("failed to read member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read member"))
		return
	}

	history, currentExpiry, err := h.payments.HistoryByUser(r.Context(), id)
	if err != nil {
		log.Error("failed to read payment history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read payment history"))
		return
	}

	log.Info("member read", slog.Int("id", id), slog.Int("payments", len(history)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"member":         member,
		"payments":       history,
		"current_expiry": currentExpiry,
	}))
}
