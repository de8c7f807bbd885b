// Package read реализует HTTP-обработчик чтения профиля текущего пользователя.
//
// Пользователь берется из контекста запроса, куда его положил сессионный
// middleware; ответ не содержит хэш пароля.
package read

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/http/response"
)

// Handler обрабатывает HTTP-запросы на чтение профиля.
type Handler struct {
	log *slog.Logger // Логгер для записи операций
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.read"

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

	log.Info("profile read", slog.String("uid", identity.UID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": identity.Info(),
	}))
}
