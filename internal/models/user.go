// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи и хэш пароля.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
//
// Email задуман уникальным, но уникальность на уровне хранилища не
// обеспечивается — проверка выполняется при регистрации.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"` // Уникальный идентификатор пользователя
	Name         string `bson:"name" json:"name"`        // Имя пользователя
	Email        string `bson:"email" json:"email"`      // Электронная почта
	PasswordHash string `bson:"password_hash" json:"-"`  // Хэш пароля, никогда не отдается клиенту
}
