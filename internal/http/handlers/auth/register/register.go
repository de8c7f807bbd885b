// Package register реализует HTTP-обработчик регистрации нового пользователя.
//
// Handler принимает JSON-запрос с учётными и профильными данными, валидирует их,
// создаёт пользователя через сервис аутентификации, сразу выдаёт сессионную
// cookie и возвращает данные созданного пользователя без хэша пароля.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package register

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

// Request — структура входных данных для регистрации.
//
// Пароль — минимум 6 символов, дата рождения в формате YYYY-MM-DD.
type Request struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Dob      string  `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender   string  `json:"gender" validate:"required,oneof=male female other"`
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики регистрации
	validate *validator.Validate // Валидатор для проверки входных данных
	env      string              // Окружение, от него зависит флаг Secure у cookie
	tokenTTL time.Duration       // Время жизни сессионной cookie
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, user models.User, rawPassword string) (*models.User, string, error)
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
	const op = "handlers.auth.register"

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

	dob, err := time.Parse("2006-01-02", req.Dob)
	if err != nil {
		log.Error("failed to parse date of birth", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("field dob is not a valid date"))
		return
	}

	user := models.User{
		Email:       req.Email,
		Name:        req.Name,
		Bio:         req.Bio,
		DateOfBirth: dob,
		Gender:      req.Gender,
	}
	created, token, err := h.service.Register(r.Context(), user, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			log.Info("email already registered", slog.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("email already registered"))
			return
		}
		log.Error("failed to register user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	http.SetCookie(w, middlewarectx.NewSessionCookie(token, h.env, h.tokenTTL))

	log.Info("user registered", slog.String("uid", created.UID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": created.Info(),
	}))
}
