// Package logout реализует HTTP-обработчик выхода из сессии.
//
// Сессия хранится только в cookie, поэтому выход — это её стирание у клиента.
// Обработчик идемпотентен: без cookie он так же возвращает успех.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/http/response"
)

// Handler обрабатывает HTTP-запросы на выход.
type Handler struct {
	log *slog.Logger // Логгер для записи операций
	env string       // Окружение, от него зависит флаг Secure у cookie
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, env string) *Handler {
	return &Handler{
		log: log,
		env: env,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	http.SetCookie(w, middlewarectx.ClearSessionCookie(h.env))

	log.Info("session cookie cleared")
	render.JSON(w, r, response.OK())
}
