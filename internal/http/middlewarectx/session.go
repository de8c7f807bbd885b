// Package middlewarectx содержит HTTP middleware для обработки сессионной cookie.
//
// SessionMiddleware читает cookie с подписанным токеном, разрешает её в
// пользователя через сервис аутентификации и кладёт его в контекст запроса.
// Отсутствующая, просроченная и подделанная cookie дают один и тот же
// ответ 401 Unauthorized: наружу не утекает, валиден ли предъявленный токен.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/project-tracker/internal/http/response"
	"github.com/magabrotheeeer/project-tracker/internal/models"
)

// SessionCookieName — имя cookie, в которой клиент хранит сессионный токен.
const SessionCookieName = "token"

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для пользователя в контексте. Хранится *models.User
// без открытого хэша пароля наружу (хэш не сериализуется в ответы).
const User Key = "user"

// Service описывает интерфейс сервиса для разрешения сессионного токена.
type Service interface {
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// SessionMiddleware возвращает HTTP middleware, который разрешает сессионную
// cookie в пользователя и кладёт его в контекст запроса.
func SessionMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				log.Info("session cookie missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			user, err := authService.ResolveToken(r.Context(), cookie.Value)
			if err != nil {
				log.Info("session token rejected")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity достает пользователя из контекста запроса.
// Возвращает nil, если middleware не отработал.
func Identity(ctx context.Context) *models.User {
	user, ok := ctx.Value(User).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// NewSessionCookie собирает HTTP-only cookie с сессионным токеном.
// Secure выставляется только в продакшене, иначе локальная разработка
// без TLS теряет сессию.
func NewSessionCookie(token, env string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   env == "prod",
		MaxAge:   int(ttl.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie собирает cookie, немедленно стирающую сессию у клиента.
func ClearSessionCookie(env string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   env == "prod",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	}
}
