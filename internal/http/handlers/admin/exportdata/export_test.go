package exportdata

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Export(ctx context.Context, table string) (string, string, error) {
	args := m.Called(ctx, table)
	return args.String(0), args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newRequest(t *testing.T, table string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/admin/export/"+table, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("table", table)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
	return req
}

func TestExportHandler_ServeHTTP(t *testing.T) {
	serviceMock := new(ServiceMock)
	logger := newNoopLogger()

	handler := New(logger, serviceMock)

	t.Run("успешная выгрузка планов", func(t *testing.T) {
		serviceMock.ExpectedCalls = nil

		content := "\"id\",\"plan_id\",\"name\"\n\"1\",\"SUB01\",\"Gold\"\n"
		serviceMock.On("Export", mock.Anything, "plans").
			Return("plans.csv", content, nil).Once()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, "plans"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="plans.csv"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, content, rec.Body.String())

		serviceMock.AssertExpectations(t)
	})

	t.Run("неизвестная таблица", func(t *testing.T) {
		serviceMock.ExpectedCalls = nil

		serviceMock.On("Export", mock.Anything, "sessions").
			Return("", "", models.ErrNotFound).Once()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(t, "sessions"))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Error", got["status"])
		assert.Equal(t, "unknown table", got["error"])

		serviceMock.AssertExpectations(t)
	})
}
