// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и отметки времени.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Допустимые значения пола пользователя.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	Name         string    // Отображаемое имя
	PasswordHash string    // Хэш пароля, наружу никогда не отдается
	Bio          *string   // Краткая информация о себе, до 500 символов
	DateOfBirth  time.Time // Дата рождения
	Gender       string    // Пол: male, female или other
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserInfo — проекция пользователя для JSON-ответов.
// Поле с хэшем пароля здесь отсутствует намеренно.
type UserInfo struct {
	UID         string  `json:"uid"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Bio         *string `json:"bio,omitempty"`
	DateOfBirth string  `json:"dob"`
	Gender      string  `json:"gender"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// Info возвращает проекцию пользователя без учётных данных.
func (u *User) Info() UserInfo {
	return UserInfo{
		UID:         u.UID,
		Email:       u.Email,
		Name:        u.Name,
		Bio:         u.Bio,
		DateOfBirth: u.DateOfBirth.Format("2006-01-02"),
		Gender:      u.Gender,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   u.UpdatedAt.Format(time.RFC3339),
	}
}

// DummyProfile используется для приёма данных обновления профиля из JSON-запроса.
// Дата рождения приходит строкой и парсится вручную после валидации.
type DummyProfile struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	DateOfBirth string  `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender      string  `json:"gender" validate:"required,oneof=male female other"`
}
