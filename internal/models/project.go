// Package models содержит доменные структуры, описывающие проект пользователя,
// а также вспомогательные типы для работы с данными из JSON-запросов.
package models

import "time"

// Статусы проекта. Новый проект без явного статуса получает StatusDraft.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Project — основная модель проекта, используемая в бизнес-логике и хранилище.
// Поля Description и DueDate могут быть nil: описание и срок не обязательны.
// Каждый проект принадлежит ровно одному пользователю (OwnerUID).
type Project struct {
	UID         string     `json:"uid"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	OwnerUID    string     `json:"owner_uid"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DummyProject используется для приёма данных нового проекта из JSON-запроса.
// Дата срока приходит строкой, чтобы её можно было валидировать и парсить вручную.
type DummyProject struct {
	Title       string  `json:"title" validate:"required,min=1"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=draft active completed"`
	DueDate     string  `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// DummyProjectUpdate описывает частичное обновление проекта.
// Nil-поля не трогают текущие значения в хранилище.
type DummyProjectUpdate struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=draft active completed"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
