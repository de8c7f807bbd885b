// Package remove реализует HTTP-обработчик удаления проекта.
//
// Чужой и несуществующий проект дают одинаковый ответ 404.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/http/response"
	"github.com/magabrotheeeer/project-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/project-tracker/internal/models"
	services "github.com/magabrotheeeer/project-tracker/internal/services/project"
)

// Handler обрабатывает HTTP-запросы на удаление проекта.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики проектов
}

// Service описывает интерфейс бизнес-логики удаления проекта.
type Service interface {
	Remove(ctx context.Context, identity *models.User, projectUID string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.remove"

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

	projectUID := chi.URLParam(r, "id")
	if err := h.service.Remove(r.Context(), identity, projectUID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Info("project not found", slog.String("uid", projectUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("project not found"))
			return
		}
		log.Error("failed to delete project", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete project"))
		return
	}

	log.Info("project deleted", slog.String("uid", projectUID))
	render.JSON(w, r, response.OK())
}
