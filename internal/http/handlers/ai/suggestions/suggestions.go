// Package suggestions реализует HTTP-обработчик генерации подсказок по проекту.
//
// Handler принимает название и необязательное описание проекта, делегирует
// запрос AI-провайдеру и возвращает структурированные подсказки. Без
// настроенного ключа провайдера возвращается 503 Service Unavailable.
package suggestions

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/project-tracker/internal/aiprovider"
	"github.com/magabrotheeeer/project-tracker/internal/http/response"
	"github.com/magabrotheeeer/project-tracker/internal/lib/sl"
)

// Request — структура входных данных для генерации подсказок.
type Request struct {
	ProjectTitle       string `json:"projectTitle" validate:"required,min=1"`
	ProjectDescription string `json:"projectDescription,omitempty"`
}

// Handler обрабатывает HTTP-запросы на генерацию подсказок.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	provider Provider            // Клиент AI-провайдера
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Provider описывает интерфейс клиента AI-провайдера.
type Provider interface {
	IsConfigured() bool
	GenerateSuggestions(ctx context.Context, projectTitle, projectDescription string) (*aiprovider.Suggestions, error)
}

// New создает новый Handler с переданными логгером и клиентом провайдера.
func New(log *slog.Logger, provider Provider) *Handler {
	return &Handler{
		log:      log,
		provider: provider,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ai.suggestions"

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

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	if !h.provider.IsConfigured() {
		log.Info("ai provider is not configured")
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("ai provider is not configured"))
		return
	}

	suggestions, err := h.provider.GenerateSuggestions(r.Context(), req.ProjectTitle, req.ProjectDescription)
	if err != nil {
		log.Error("failed to generate suggestions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not generate suggestions"))
		return
	}

	log.Info("suggestions generated", slog.String("title", req.ProjectTitle))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"suggestions": suggestions,
	}))
}
