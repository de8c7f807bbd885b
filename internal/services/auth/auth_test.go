package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customjwt "github.com/magabrotheeeer/project-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/project-tracker/internal/lib/password"
	"github.com/magabrotheeeer/project-tracker/internal/models"
	services "github.com/magabrotheeeer/project-tracker/internal/services/auth"
	"github.com/magabrotheeeer/project-tracker/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestMaker() *customjwt.MakerImpl {
	return customjwt.NewJWTMaker("test_secret_key_1234567890", 7*24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	const uid = "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name       string
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name: "успешная регистрация",
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "test@example.com" &&
						user.PasswordHash != "" &&
						user.PasswordHash != "password123"
				})).Return(&models.User{
					UID:   uid,
					Email: "test@example.com",
					Name:  "Test User",
				}, nil).Once()
			},
		},
		{
			name: "занятый email",
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return(nil, repository.ErrEmailTaken).Once()
			},
			wantErr: services.ErrEmailTaken,
		},
		{
			name: "ошибка базы данных",
			setupMocks: func(r *UserRepoMock) {
				r.On("CreateUser", mock.Anything, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := services.NewAuthService(repo, newTestMaker())
			tt.setupMocks(repo)

			user := models.User{
				Email:       "test@example.com",
				Name:        "Test User",
				DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
				Gender:      models.GenderFemale,
			}
			created, token, err := svc.Register(context.Background(), user, "password123")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uid, created.UID)

				// выпущенный токен резолвится обратно в того же пользователя
				claims, err := newTestMaker().ParseToken(token)
				require.NoError(t, err)
				assert.Equal(t, uid, claims.UserUID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	const uid = "550e8400-e29b-41d4-a716-446655440000"
	rawPassword := "correctpassword"
	hash, err := password.GetHash(rawPassword)
	require.NoError(t, err)

	tests := []struct {
		name        string
		email       string
		rawPassword string
		setupMocks  func(r *UserRepoMock)
		wantErr     error
	}{
		{
			name:        "успешный вход",
			email:       "test@example.com",
			rawPassword: rawPassword,
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").
					Return(&models.User{UID: uid, Email: "test@example.com", PasswordHash: hash}, nil).Once()
			},
		},
		{
			name:        "неверный пароль",
			email:       "test@example.com",
			rawPassword: "wrongpassword",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "test@example.com").
					Return(&models.User{UID: uid, Email: "test@example.com", PasswordHash: hash}, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:        "несуществующий email",
			email:       "ghost@example.com",
			rawPassword: rawPassword,
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByEmail", mock.Anything, "ghost@example.com").
					Return(nil, repository.ErrUserNotFound).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := services.NewAuthService(repo, newTestMaker())
			tt.setupMocks(repo)

			user, token, err := svc.Login(context.Background(), tt.email, tt.rawPassword)

			if tt.wantErr != nil {
				// неверный пароль и несуществующий email дают одну и ту же ошибку
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uid, user.UID)
				assert.NotEmpty(t, token)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ResolveToken(t *testing.T) {
	const uid = "550e8400-e29b-41d4-a716-446655440000"
	maker := newTestMaker()

	validToken, err := maker.GenerateToken(uid)
	require.NoError(t, err)

	expiredMaker := customjwt.NewJWTMaker("test_secret_key_1234567890", -time.Hour)
	expiredToken, err := expiredMaker.GenerateToken(uid)
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		setupMocks func(r *UserRepoMock)
		wantErr    bool
	}{
		{
			name:  "валидный токен существующего пользователя",
			token: validToken,
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUser", mock.Anything, uid).
					Return(&models.User{UID: uid, Email: "test@example.com"}, nil).Once()
			},
		},
		{
			name:       "просроченный токен",
			token:      expiredToken,
			setupMocks: func(_ *UserRepoMock) {},
			wantErr:    true,
		},
		{
			name:       "мусор вместо токена",
			token:      "garbage.token.value",
			setupMocks: func(_ *UserRepoMock) {},
			wantErr:    true,
		},
		{
			name:  "токен удалённого пользователя",
			token: validToken,
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUser", mock.Anything, uid).
					Return(nil, repository.ErrUserNotFound).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := services.NewAuthService(repo, maker)
			tt.setupMocks(repo)

			user, err := svc.ResolveToken(context.Background(), tt.token)

			if tt.wantErr {
				require.ErrorIs(t, err, services.ErrInvalidToken)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uid, user.UID)
			}

			repo.AssertExpectations(t)
		})
	}
}
