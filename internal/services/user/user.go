// Package services содержит бизнес-логику работы с профилем пользователя,
// включая каскадное удаление аккаунта вместе с его проектами.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/project-tracker/internal/models"
	"github.com/magabrotheeeer/project-tracker/internal/storage/repository"
)

// ErrNotFound возвращается, когда профиль пользователя отсутствует в базе.
var ErrNotFound = errors.New("user not found")

// UserRepository определяет методы для работы с пользователями и их проектами
// в хранилище.
type UserRepository interface {
	// GetUser возвращает пользователя по uid.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// UpdateUser обновляет профильные поля пользователя.
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	// DeleteUser удаляет пользователя и возвращает количество удалённых записей.
	DeleteUser(ctx context.Context, userUID string) (int, error)
	// DeleteProjectsByOwner удаляет все проекты владельца.
	DeleteProjectsByOwner(ctx context.Context, ownerUID string) (int, error)
}

// UserService реализует операции над собственным профилем пользователя.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// Get возвращает профиль пользователя по uid.
func (s *UserService) Get(ctx context.Context, userUID string) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update применяет изменения профиля и возвращает свежую запись.
// Email и пароль этим методом не меняются.
func (s *UserService) Update(ctx context.Context, userUID string, req models.DummyProfile) (*models.User, error) {
	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}

	user := models.User{
		UID:         userUID,
		Name:        req.Name,
		Bio:         req.Bio,
		DateOfBirth: dateOfBirth,
		Gender:      req.Gender,
	}
	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.log.Info("updated user profile", slog.String("uid", userUID))
	return updated, nil
}

// Delete удаляет аккаунт пользователя вместе со всеми его проектами.
// Два шага не обёрнуты в одну транзакцию: падение между ними оставит
// пользователя без проектов, что не фатально.
func (s *UserService) Delete(ctx context.Context, userUID string) error {
	count, err := s.repo.DeleteProjectsByOwner(ctx, userUID)
	if err != nil {
		return err
	}
	s.log.Info("deleted user projects", slog.String("uid", userUID), slog.Int("count", count))

	deleted, err := s.repo.DeleteUser(ctx, userUID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	s.log.Info("deleted user account", slog.String("uid", userUID))
	return nil
}
