// Package models содержит доменные структуры задачи,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Task представляет собой задачу пользователя,
// используемую в бизнес-логике и хранилище.
//
// UserID — слабая ссылка на владельца: каскадного удаления и ссылочной
// целостности на уровне хранилища нет.
type Task struct {
	ID          string    `bson:"_id,omitempty" json:"id"`        // Уникальный идентификатор задачи
	UserID      string    `bson:"user_id" json:"userId"`          // Идентификатор владельца
	Title       string    `bson:"title" json:"title"`             // Заголовок задачи
	Description string    `bson:"description" json:"description"` // Описание задачи
	Date        time.Time `bson:"date" json:"date"`               // Срок выполнения
}

// DummyTask используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Task.
// Дата приходит в виде строки, чтобы её можно было валидировать и парсить вручную.
type DummyTask struct {
	Title       string `json:"title" validate:"required"`       // Заголовок
	Description string `json:"description" validate:"required"` // Описание
	Date        string `json:"date" validate:"required"`        // Дата в формате 2006-01-02
}
