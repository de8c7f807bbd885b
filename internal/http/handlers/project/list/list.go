// Package list реализует HTTP-обработчик списка проектов текущего пользователя.
//
// Выборка всегда ограничена владельцем из контекста запроса и отсортирована
// по времени последнего изменения. Параметры limit и offset берутся из
// query-строки, некорректные значения заменяются значениями по умолчанию.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/http/response"
	"github.com/magabrotheeeer/project-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/project-tracker/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение списка проектов.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики проектов
}

// Service описывает интерфейс бизнес-логики списка проектов.
type Service interface {
	List(ctx context.Context, ownerUID string, limit, offset int) ([]*models.Project, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.list"

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

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	projects, err := h.service.List(r.Context(), identity.UID, limit, offset)
	if err != nil {
		log.Error("failed to list projects", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list projects"))
		return
	}

	log.Info("projects listed", slog.Int("count", len(projects)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(projects),
		"projects":   projects,
	}))
}
