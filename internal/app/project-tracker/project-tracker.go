// Package projecttracker собирает приложение целиком: хранилище, миграции,
// кеш, сервисы, клиент AI-провайдера и HTTP-сервер с graceful shutdown.
package projecttracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/project-tracker/internal/aiprovider"
	"github.com/magabrotheeeer/project-tracker/internal/cache"
	"github.com/magabrotheeeer/project-tracker/internal/config"
	"github.com/magabrotheeeer/project-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/project-tracker/internal/migrations"
	authservice "github.com/magabrotheeeer/project-tracker/internal/services/auth"
	projectservice "github.com/magabrotheeeer/project-tracker/internal/services/project"
	userservice "github.com/magabrotheeeer/project-tracker/internal/services/user"
	"github.com/magabrotheeeer/project-tracker/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	tokenMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	aiClient := aiprovider.NewClient(cfg.AIProvider)

	authService := authservice.NewAuthService(db, tokenMaker)
	userService := userservice.NewUserService(db, logger)
	projectService := projectservice.NewProjectService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, db, authService, userService, projectService, aiClient)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
