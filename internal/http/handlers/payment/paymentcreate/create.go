// Package paymentcreate реализует HTTP-обработчик регистрации оплаты.
//
// Дата окончания абонемента выводится из даты платежа и срока выбранного
// плана; после создания запись об оплате неизменяема.
package paymentcreate

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

// Handler обрабатывает HTTP-запросы на регистрацию оплаты.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис платежей
	validate *validator.Validate // Валидатор входных данных
}

// Service описывает интерфейс бизнес-логики регистрации оплаты.
type Service interface {
	Create(ctx context.Context, req models.DummyPayment) (string, error)
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
// @Summary Зарегистрировать оплату
// @Description Создает запись об оплате, вычисляет дату окончания и выдаёт идентификатор PAID##.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body models.DummyPayment true "Данные платежа"
// @Success 200 {object} map[string]any "Оплата зарегистрирована"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации, неизвестный план или отсутствующая дата"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /payments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPayment
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

	transactionID, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMissingPlan):
			log.Error("plan not found", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(models.ErrMissingPlan.Error()))
		case errors.Is(err, models.ErrMissingDate):
			log.Error("payment date missing", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(models.ErrMissingDate.Error()))
		default:
			log.Error("failed to create payment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create payment"))
		}
		return
	}

	log.Info("payment created", slog.String("transaction_id", transactionID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"transaction_id": transactionID,
	}))
}
