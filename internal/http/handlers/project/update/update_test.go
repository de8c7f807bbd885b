package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/models"
	services "github.com/magabrotheeeer/project-tracker/internal/services/project"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, identity *models.User, projectUID string, req models.DummyProjectUpdate) (*models.Project, error) {
	args := m.Called(ctx, identity, projectUID, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const (
		ownerUID   = "5b7f9a3e-6a4c-4b10-8f5e-2d9c0a1b7e44"
		projectUID = "9f2c7d44-11aa-4e83-9e11-3f5ad38a6c10"
	)
	identity := &models.User{UID: ownerUID}
	updated := &models.Project{
		UID:      projectUID,
		Title:    "Site redesign",
		Status:   models.StatusActive,
		OwnerUID: ownerUID,
	}

	tests := []struct {
		name           string
		identity       *models.User
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное обновление статуса",
			identity: identity,
			body:     `{"status":"active"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, identity, projectUID, mock.Anything).
					Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"active"`,
		},
		{
			name:           "пользователь не найден в контексте",
			identity:       nil,
			body:           `{"status":"active"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:           "некорректный JSON",
			identity:       identity,
			body:           `{"status"`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "недопустимый статус",
			identity:       identity,
			body:           `{"status":"archived"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:     "проект отсутствует или чужой",
			identity: identity,
			body:     `{"status":"active"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, identity, projectUID, mock.Anything).
					Return(nil, services.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"project not found"`,
		},
		{
			name:     "внутренняя ошибка сервиса",
			identity: identity,
			body:     `{"status":"active"}`,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, identity, projectUID, mock.Anything).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not update project"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch, "/projects/"+projectUID, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", projectUID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.identity != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, tt.identity))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
