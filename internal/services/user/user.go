// Package user содержит бизнес-логику чтения и обновления профиля пользователя.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/task-tracker/internal/lib/password"
	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// ErrNotOwner возвращается, когда вызывающий пытается читать или изменять
// чужой профиль.
var ErrNotOwner = errors.New("profile belongs to another user")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// GetUserByID возвращает пользователя по ID или mongodb.ErrNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// UpdateUser частично обновляет поля пользователя по ID.
	UpdateUser(ctx context.Context, id string, user models.User) error
}

// Service реализует операции над профилем пользователя.
type Service struct {
	users UserRepository
}

// New создает новый экземпляр Service.
func New(users UserRepository) *Service {
	return &Service{users: users}
}

// Details возвращает запись вызывающего пользователя.
func (s *Service) Details(ctx context.Context, callerID string) (*models.User, error) {
	return s.users.GetUserByID(ctx, callerID)
}

// Profile возвращает профиль по ID после проверки, что он принадлежит вызывающему.
//
// Выданный токен действует до истечения срока независимо от изменений профиля.
func (s *Service) Profile(ctx context.Context, id, callerID string) (*models.User, error) {
	if id != callerID {
		return nil, ErrNotOwner
	}
	return s.users.GetUserByID(ctx, id)
}

// Update перехэширует пароль и перезаписывает поля профиля по ID
// после проверки владения.
func (s *Service) Update(ctx context.Context, id, callerID, name, email, rawPassword string) error {
	const op = "services.user.Update"
	if id != callerID {
		return ErrNotOwner
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	return s.users.UpdateUser(ctx, id, user)
}
