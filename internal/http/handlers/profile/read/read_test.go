package read

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/models"
)

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	user := &models.User{
		UID:          "5b7f9a3e-6a4c-4b10-8f5e-2d9c0a1b7e44",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		DateOfBirth:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:       models.GenderFemale,
	}

	tests := []struct {
		name           string
		identity       *models.User
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "профиль текущего пользователя",
			identity:       user,
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"alice@example.com"`,
		},
		{
			name:           "пользователь не найден в контексте",
			identity:       nil,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger)

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.identity != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.User, tt.identity)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			// хэш пароля наружу не отдается
			assert.NotContains(t, w.Body.String(), user.PasswordHash)
		})
	}
}
