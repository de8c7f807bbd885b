// Package login реализует HTTP-обработчик входа пользователя по email и паролю.
//
// Handler декодирует и валидирует JSON-запрос, делегирует проверку учётных
// данных сервису аутентификации и при успехе выставляет сессионную cookie.
// Неизвестный email и неверный пароль дают одинаковый ответ 401, чтобы по
// ответу нельзя было перебирать зарегистрированные адреса.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/project-tracker/internal/http/response"
	"github.com/magabrotheeeer/project-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/project-tracker/internal/models"
	services "github.com/magabrotheeeer/project-tracker/internal/services/auth"
)

// Request — структура входных данных для входа.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Handler обрабатывает HTTP-запросы на вход.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики аутентификации
	validate *validator.Validate // Валидатор для проверки входных данных
	env      string              // Окружение, от него зависит флаг Secure у cookie
	tokenTTL time.Duration       // Время жизни сессионной cookie
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, rawPassword string) (*models.User, string, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service, env string, tokenTTL time.Duration) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
		env:      env,
		tokenTTL: tokenTTL,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Info("invalid credentials", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
			return
		}
		log.Error("failed to login user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login user"))
		return
	}

	http.SetCookie(w, middlewarectx.NewSessionCookie(token, h.env, h.tokenTTL))

	log.Info("user logged in", slog.String("uid", user.UID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": user.Info(),
	}))
}
