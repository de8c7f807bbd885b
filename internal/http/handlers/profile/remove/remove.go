// Package remove реализует HTTP-обработчик удаления аккаунта текущего пользователя.
//
// Вместе с аккаунтом удаляются все его проекты, после чего сессионная cookie
// стирается: старый токен перестает разрешаться в пользователя.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/http/response"
	"github.com/magabrotheeeer/project-tracker/internal/lib/sl"
	services "github.com/magabrotheeeer/project-tracker/internal/services/user"
)

// Handler обрабатывает HTTP-запросы на удаление аккаунта.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики профиля
	env     string       // Окружение, от него зависит флаг Secure у cookie
}

// Service описывает интерфейс бизнес-логики удаления аккаунта.
type Service interface {
	Delete(ctx context.Context, userUID string) error
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service, env string) *Handler {
	return &Handler{
		log:     log,
		service: service,
		env:     env,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity := middlewarectx.Identity(r.Context())
	if identity == nil {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Delete(r.Context(), identity.UID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Info("user no longer exists", slog.String("uid", identity.UID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to delete account", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete account"))
		return
	}

	http.SetCookie(w, middlewarectx.ClearSessionCookie(h.env))

	log.Info("account deleted", slog.String("uid", identity.UID))
	render.JSON(w, r, response.OK())
}
