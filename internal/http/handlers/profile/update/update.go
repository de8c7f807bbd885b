// Package update реализует HTTP-обработчик обновления профиля текущего пользователя.
//
// Email и пароль через этот обработчик не меняются: принимаются только имя,
// биография, дата рождения и пол. Обновленный профиль возвращается в ответе.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/http/response"
	"github.com/magabrotheeeer/project-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/project-tracker/internal/models"
	services "github.com/magabrotheeeer/project-tracker/internal/services/user"
)

// Handler обрабатывает HTTP-запросы на обновление профиля.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики профиля
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	Update(ctx context.Context, userUID string, req models.DummyProfile) (*models.User, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.update"

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

	var req models.DummyProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("uid", identity.UID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	updated, err := h.service.Update(r.Context(), identity.UID, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Info("user no longer exists", slog.String("uid", identity.UID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to update profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update profile"))
		return
	}

	log.Info("profile updated", slog.String("uid", updated.UID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": updated.Info(),
	}))
}
