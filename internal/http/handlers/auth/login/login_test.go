package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ironman-fitness/gym-manager/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	serviceMock := new(ServiceMock)
	logger := newNoopLogger()

	handler := New(logger, serviceMock)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockToken      string
		mockRole       string
		mockErr        error
		wantStatusCode int
		wantData       map[string]any
		wantError      string
		wantStatus     string
	}{
		{
			name:           "успешный вход администратора",
			requestBody:    models.DummyCredentials{Username: "admin", Password: "password123"},
			mockToken:      "tok",
			mockRole:       "admin",
			wantStatusCode: http.StatusOK,
			wantData: map[string]any{
				"token":    "tok",
				"role":     "admin",
				"redirect": "/dashboard/admin",
			},
			wantError:  "",
			wantStatus: "OK",
		},
		{
			name:           "некорректный json",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantData:       nil,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name:           "нет пароля",
			requestBody:    models.DummyCredentials{Username: "admin"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantData:       nil,
			wantError:      "field Password is a required field",
			wantStatus:     "Error",
		},
		{
			name:           "неверные учетные данные",
			requestBody:    models.DummyCredentials{Username: "ghost", Password: "password123"},
			mockErr:        models.ErrInvalidCredentials,
			wantStatusCode: http.StatusUnauthorized,
			wantData:       nil,
			wantError:      "invalid username or password",
			wantStatus:     "Error",
		},
		{
			name:           "неактивная учетная запись",
			requestBody:    models.DummyCredentials{Username: "frozen", Password: "password123"},
			mockErr:        models.ErrAccountInactive,
			wantStatusCode: http.StatusForbidden,
			wantData:       nil,
			wantError:      "account is inactive",
			wantStatus:     "Error",
		},
		{
			name:           "внутренняя ошибка сервиса",
			requestBody:    models.DummyCredentials{Username: "admin", Password: "password123"},
			mockErr:        errors.New("db down"),
			wantStatusCode: http.StatusInternalServerError,
			wantData:       nil,
			wantError:      "internal error",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock.ExpectedCalls = nil
			serviceMock.Calls = nil

			if req, ok := tt.requestBody.(models.DummyCredentials); ok && req.Password != "" {
				serviceMock.On("Login", mock.Anything, req.Username, req.Password).
					Return(tt.mockToken, tt.mockRole, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			} else {
				assert.Nil(t, got["error"])
			}

			if tt.wantData != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				for k, v := range tt.wantData {
					assert.Equal(t, v, data[k])
				}
			} else {
				assert.Nil(t, got["data"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
