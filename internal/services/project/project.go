// Package services содержит бизнес-логику для управления проектами
// пользователей, включая проверку владения и кеширование.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/project-tracker/internal/lib/authz"
	"github.com/magabrotheeeer/project-tracker/internal/models"
	"github.com/magabrotheeeer/project-tracker/internal/storage/repository"
)

// ErrNotFound возвращается и для отсутствующего проекта, и для проекта
// чужого владельца: по ответу их различить нельзя.
var ErrNotFound = errors.New("project not found")

// ProjectRepository определяет методы для работы с проектами в хранилище.
type ProjectRepository interface {
	// CreateProject добавляет новый проект и возвращает запись с uid.
	CreateProject(ctx context.Context, project models.Project) (*models.Project, error)
	// GetProject возвращает проект по uid.
	GetProject(ctx context.Context, projectUID string) (*models.Project, error)
	// UpdateProject обновляет данные проекта по uid.
	UpdateProject(ctx context.Context, project models.Project) (*models.Project, error)
	// DeleteProject удаляет проект по uid и возвращает количество удалённых записей.
	DeleteProject(ctx context.Context, projectUID string) (int, error)
	// ListProjects возвращает список проектов владельца с пагинацией.
	ListProjects(ctx context.Context, ownerUID string, limit, offset int) ([]*models.Project, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ProjectService реализует бизнес-логику работы с проектами.
// Все операции над конкретным проектом проходят проверку владения,
// список всегда ограничен владельцем.
type ProjectService struct {
	repo  ProjectRepository
	cache Cache
	log   *slog.Logger
}

// NewProjectService создает новый экземпляр ProjectService.
func NewProjectService(repo ProjectRepository, cache Cache, log *slog.Logger) *ProjectService {
	return &ProjectService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый проект для пользователя и кеширует его.
// Отсутствующий статус означает draft.
func (s *ProjectService) Create(ctx context.Context, ownerUID string, req models.DummyProject) (*models.Project, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     dueDate,
		OwnerUID:    ownerUID,
	}

	created, err := s.repo.CreateProject(ctx, project)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new project", slog.String("uid", created.UID))

	s.cacheProject(created)
	return created, nil
}

// Read возвращает проект по uid, используя кеш или репозиторий.
// Отсутствие проекта и чужой проект дают одинаковый ErrNotFound.
func (s *ProjectService) Read(ctx context.Context, identity *models.User, projectUID string) (*models.Project, error) {
	project, err := s.getCachedOrStored(ctx, projectUID)
	if err != nil {
		return nil, err
	}
	if !authz.Allow(identity, project.OwnerUID) {
		return nil, ErrNotFound
	}
	return project, nil
}

// Update применяет частичное обновление к проекту владельца.
// Nil-поля запроса оставляют текущие значения. Последняя запись побеждает:
// оптимистической блокировки нет.
func (s *ProjectService) Update(ctx context.Context, identity *models.User, projectUID string, req models.DummyProjectUpdate) (*models.Project, error) {
	project, err := s.getCachedOrStored(ctx, projectUID)
	if err != nil {
		return nil, err
	}
	if !authz.Allow(identity, project.OwnerUID) {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		project.DueDate = dueDate
	}

	updated, err := s.repo.UpdateProject(ctx, *project)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.log.Info("updated project", slog.String("uid", updated.UID))

	s.cacheProject(updated)
	return updated, nil
}

// Remove удаляет проект владельца и инвалидирует кеш.
func (s *ProjectService) Remove(ctx context.Context, identity *models.User, projectUID string) error {
	project, err := s.getCachedOrStored(ctx, projectUID)
	if err != nil {
		return err
	}
	if !authz.Allow(identity, project.OwnerUID) {
		return ErrNotFound
	}

	cacheKey := fmt.Sprintf("project:%s", projectUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.DeleteProject(ctx, projectUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// List возвращает проекты владельца с пагинацией. Запрос в хранилище
// всегда ограничен идентификатором владельца.
func (s *ProjectService) List(ctx context.Context, ownerUID string, limit, offset int) ([]*models.Project, error) {
	return s.repo.ListProjects(ctx, ownerUID, limit, offset)
}

func (s *ProjectService) getCachedOrStored(ctx context.Context, projectUID string) (*models.Project, error) {
	// Синтаксически некорректный uid неотличим от несуществующего:
	// до хранилища такой запрос не доходит.
	if _, err := uuid.Parse(projectUID); err != nil {
		return nil, ErrNotFound
	}

	var project *models.Project
	cacheKey := fmt.Sprintf("project:%s", projectUID)
	found, err := s.cache.Get(cacheKey, &project)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && project != nil {
		return project, nil
	}

	project, err = s.repo.GetProject(ctx, projectUID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.cacheProject(project)
	return project, nil
}

func (s *ProjectService) cacheProject(project *models.Project) {
	cacheKey := fmt.Sprintf("project:%s", project.UID)
	if err := s.cache.Set(cacheKey, project, time.Hour); err != nil {
		s.log.Warn("failed to cache project", slog.String("key", cacheKey), slog.Any("err", err))
	}
}

func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	dueDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %w", err)
	}
	return &dueDate, nil
}
