// Package importusers реализует HTTP-обработчик массового импорта участников
// из загруженного csv или xlsx файла.
package importusers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ironman-fitness/gym-manager/internal/http/response"
	"github.com/ironman-fitness/gym-manager/internal/lib/sl"
	importer "github.com/ironman-fitness/gym-manager/internal/services/importer"
)

// maxUploadSize — предел размера загружаемого файла.
const maxUploadSize = 10 << 20

// Handler обрабатывает HTTP-запросы на импорт участников.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис импорта
}

// Service описывает интерфейс бизнес-логики импорта.
type Service interface {
	ImportUsers(ctx context.Context, filename string, r io.Reader) (importer.Result, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Импорт участников из файла
// @Description Принимает multipart-файл (csv или xlsx) с колонкой name; ошибки строк считаются, но не прерывают импорт.
// @Tags Admin
// @Accept  multipart/form-data
// @Produce  json
// @Param file formData file true "Файл с участниками"
// @Success 200 {object} map[string]any "Итог импорта"
// @Failure 400 {object} response.ErrorResponse "Файл отсутствует или не читается"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/import/users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.importusers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Error("file is missing", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("file is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	result, err := h.service.ImportUsers(r.Context(), header.Filename, file)
	if err != nil {
		log.Error("failed to import users", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("could not parse uploaded file"))
		return
	}

	log.Info("import finished",
		slog.Int("success", result.Success), slog.Int("failed", result.Failed))
	render.JSON(w, r, response.StatusOKWithData(result))
}
