// Package exportdata реализует HTTP-обработчик выгрузки таблиц в csv.
package exportdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	"github.com/ironman-fitness/gym-manager/internal/models"
)

// Handler обрабатывает HTTP-запросы на экспорт данных.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис экспорта
}

// Service описывает интерфейс бизнес-логики экспорта.
type Service interface {
	Export(ctx context.Context, table string) (string, string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Экспорт таблицы в csv
// @Description Выгружает содержимое таблицы (users, plans, equipment или payments) в виде csv-файла.
// @Tags Admin
// @Produce  text/csv
// @Param table path string true "Имя таблицы"
// @Success 200 {string} string "csv-файл"
// @Failure 404 {object} response.ErrorResponse "Неизвестная таблица"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/export/{table} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.exportdata"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	table := chi.URLParam(r, "table")

	filename, content, err := h.service.Export(r.Context(), table)
	if errors.Is(err, models.ErrNotFound) {
		log.Error("unknown table", slog.String("table", table))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("unknown table"))
		return
	}
	if err != nil {
		log.Error("failed to export table", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("table exported", slog.String("table", table))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write([]byte(content))
}
