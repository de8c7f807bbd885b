// Package health реализует HTTP-обработчик проверки работоспособности сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/project-tracker/internal/http/response"
	"github.com/magabrotheeeer/project-tracker/internal/lib/sl"
)

// ReadinessChecker проверяет готовность хранилища принимать запросы.
type ReadinessChecker interface {
	CheckDatabaseReady(ctx context.Context) error
}

// Handler обрабатывает HTTP-запросы проверки работоспособности.
type Handler struct {
	log     *slog.Logger
	storage ReadinessChecker
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, storage ReadinessChecker) *Handler {
	return &Handler{
		log:     log,
		storage: storage,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if err := h.storage.CheckDatabaseReady(r.Context()); err != nil {
		h.log.Error("database is not ready", slog.String("op", op), sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("database is not ready"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "ok",
	}))
}
