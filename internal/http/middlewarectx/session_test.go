package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/project-tracker/internal/models"
	services "github.com/magabrotheeeer/project-tracker/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestSessionMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	const uid = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name           string
		cookie         *http.Cookie
		setupMock      func(m *AuthServiceMock)
		expectedStatus int
		wantIdentity   bool
	}{
		{
			name:   "валидная cookie кладет пользователя в контекст",
			cookie: &http.Cookie{Name: SessionCookieName, Value: "valid-token"},
			setupMock: func(m *AuthServiceMock) {
				m.On("ResolveToken", mock.Anything, "valid-token").
					Return(&models.User{UID: uid, Email: "a@x.com"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantIdentity:   true,
		},
		{
			name:           "cookie отсутствует",
			cookie:         nil,
			setupMock:      func(_ *AuthServiceMock) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "пустая cookie",
			cookie:         &http.Cookie{Name: SessionCookieName, Value: ""},
			setupMock:      func(_ *AuthServiceMock) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "невалидный токен дает такой же 401, как отсутствие cookie",
			cookie: &http.Cookie{Name: SessionCookieName, Value: "forged-token"},
			setupMock: func(m *AuthServiceMock) {
				m.On("ResolveToken", mock.Anything, "forged-token").
					Return(nil, services.ErrInvalidToken).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := new(AuthServiceMock)
			tt.setupMock(authService)

			var gotIdentity *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotIdentity = Identity(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			SessionMiddleware(authService, logger)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.wantIdentity {
				assert.NotNil(t, gotIdentity)
				assert.Equal(t, uid, gotIdentity.UID)
			} else {
				assert.Nil(t, gotIdentity)
				assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
			}
			authService.AssertExpectations(t)
		})
	}
}

func TestNewSessionCookie(t *testing.T) {
	cookie := NewSessionCookie("signed-token", "prod", 7*24*time.Hour)

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
}

func TestNewSessionCookie_DevNotSecure(t *testing.T) {
	cookie := NewSessionCookie("signed-token", "local", 0)
	assert.False(t, cookie.Secure)
}

func TestClearSessionCookie(t *testing.T) {
	cookie := ClearSessionCookie("local")

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
