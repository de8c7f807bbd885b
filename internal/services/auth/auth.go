// Package services содержит логику бизнес-уровня для регистрации,
// аутентификации и разрешения сессионных токенов в пользователя.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/project-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/project-tracker/internal/lib/password"
	"github.com/magabrotheeeer/project-tracker/internal/models"
	"github.com/magabrotheeeer/project-tracker/internal/storage/repository"
)

// Ошибки бизнес-уровня аутентификации.
var (
	// ErrEmailTaken возвращается при попытке регистрации на занятый email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials возвращается одинаково для несуществующего email
	// и неверного пароля, чтобы не раскрывать наличие учётной записи.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken возвращается одинаково для просроченного, подделанного
	// токена и токена удалённого пользователя.
	ErrInvalidToken = errors.New("invalid token")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает запись с uid.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по uid или ошибку, если не найден.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и разрешение сессионных токенов.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу
// выпускает для него сессионный токен. Занятый email возвращает ErrEmailTaken,
// не меняя состояния базы.
func (s *AuthService) Register(ctx context.Context, user models.User, rawPassword string) (*models.User, string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = hashed

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.jwtMaker.GenerateToken(created.UID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login проверяет пароль пользователя и выпускает сессионный токен.
// Несуществующий email и неверный пароль неразличимы в ответе.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.UID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveToken проверяет сессионный токен и возвращает пользователя из базы.
// Любой дефект токена и удалённый пользователь дают один и тот же ErrInvalidToken:
// наружу не утекает, что именно не так с предъявленным токеном.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.ResolveToken"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	user, err := s.users.GetUser(ctx, claims.UserUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return user, nil
}
