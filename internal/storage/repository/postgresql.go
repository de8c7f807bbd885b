// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями и их проектами. Предоставляет методы
// создания, чтения, обновления и удаления записей.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисный слой транслирует их в HTTP-статусы.
var (
	// ErrUserNotFound возвращается, когда пользователь с таким uid или email отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound возвращается, когда проект с таким uid отсутствует.
	ErrProjectNotFound = errors.New("project not found")
	// ErrEmailTaken возвращается при нарушении уникальности email.
	// Состояние базы при этом не меняется.
	ErrEmailTaken = errors.New("email already exists")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и проектами.
// Соединение открывается один раз при старте процесса и передается
// во все компоненты явно, database/sql сам управляет пулом.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'projects'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table projects missing or query error: %w", err)
	}
	return nil
}
