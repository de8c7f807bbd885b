package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/project-tracker/internal/models"
)

// uniqueViolation — код ошибки PostgreSQL о нарушении ограничения уникальности.
const uniqueViolation = "23505"

// CreateUser сохраняет нового пользователя и возвращает запись с заполненными
// uid и отметками времени. Повторная регистрация с занятым email возвращает
// ErrEmailTaken, не меняя состояния базы.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, name, password_hash, bio, date_of_birth, gender)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING uid, created_at, updated_at;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.Bio, user.DateOfBirth,
		user.Gender).Scan(&user.UID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, name, password_hash, bio, date_of_birth, gender,
			      created_at, updated_at
			  FROM users
			  WHERE email = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

// GetUser возвращает пользователя по его uid.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, name, password_hash, bio, date_of_birth, gender,
			      created_at, updated_at
			  FROM users
			  WHERE uid = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, userUID), op)
}

// UpdateUser обновляет профильные поля пользователя и возвращает свежую запись.
// Email и хэш пароля этим методом не меняются.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET name = $1, bio = $2, date_of_birth = $3, gender = $4, updated_at = now()
			  WHERE uid = $5
			  RETURNING uid, email, name, password_hash, bio, date_of_birth, gender,
			      created_at, updated_at`
	return s.scanUser(s.DB.QueryRowContext(ctx, query,
		user.Name, user.Bio, user.DateOfBirth, user.Gender, user.UID), op)
}

// DeleteUser удаляет пользователя по uid и возвращает количество удалённых строк.
func (s *Storage) DeleteUser(ctx context.Context, userUID string) (int, error) {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var bio sql.NullString
	if err := row.Scan(&u.UID, &u.Email, &u.Name, &u.PasswordHash, &bio,
		&u.DateOfBirth, &u.Gender, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if bio.Valid {
		u.Bio = &bio.String
	}
	return u, nil
}
