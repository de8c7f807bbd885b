// Package projecttracker предоставляет маршруты для основного приложения.
package projecttracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/project-tracker/internal/aiprovider"
	"github.com/magabrotheeeer/project-tracker/internal/config"
	"github.com/magabrotheeeer/project-tracker/internal/http/handlers/ai/suggestions"
	"github.com/magabrotheeeer/project-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/project-tracker/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/project-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/project-tracker/internal/http/handlers/health"
	profileread "github.com/magabrotheeeer/project-tracker/internal/http/handlers/profile/read"
	profileremove "github.com/magabrotheeeer/project-tracker/internal/http/handlers/profile/remove"
	profileupdate "github.com/magabrotheeeer/project-tracker/internal/http/handlers/profile/update"
	projectcreate "github.com/magabrotheeeer/project-tracker/internal/http/handlers/project/create"
	projectlist "github.com/magabrotheeeer/project-tracker/internal/http/handlers/project/list"
	projectread "github.com/magabrotheeeer/project-tracker/internal/http/handlers/project/read"
	projectremove "github.com/magabrotheeeer/project-tracker/internal/http/handlers/project/remove"
	projectupdate "github.com/magabrotheeeer/project-tracker/internal/http/handlers/project/update"
	"github.com/magabrotheeeer/project-tracker/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/project-tracker/internal/services/auth"
	projectservice "github.com/magabrotheeeer/project-tracker/internal/services/project"
	userservice "github.com/magabrotheeeer/project-tracker/internal/services/user"
	"github.com/magabrotheeeer/project-tracker/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	db *repository.Storage,
	authService *authservice.AuthService,
	userService *userservice.UserService,
	projectService *projectservice.ProjectService,
	aiClient *aiprovider.Client,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService, cfg.Env, cfg.TokenTTL).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService, cfg.Env, cfg.TokenTTL).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, cfg.Env).ServeHTTP)
		r.Get("/health", health.New(logger, db).ServeHTTP)

		// Группа с сессионной аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/profile", profileread.New(logger).ServeHTTP)
			r.Patch("/profile", profileupdate.New(logger, userService).ServeHTTP)
			r.Delete("/profile", profileremove.New(logger, userService, cfg.Env).ServeHTTP)

			r.Get("/projects", projectlist.New(logger, projectService).ServeHTTP)
			r.Post("/projects", projectcreate.New(logger, projectService).ServeHTTP)
			r.Get("/projects/{id}", projectread.New(logger, projectService).ServeHTTP)
			r.Patch("/projects/{id}", projectupdate.New(logger, projectService).ServeHTTP)
			r.Delete("/projects/{id}", projectremove.New(logger, projectService).ServeHTTP)

			r.Post("/ai/suggestions", suggestions.New(logger, aiClient).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
