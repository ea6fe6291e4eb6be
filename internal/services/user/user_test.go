package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/task-tracker/internal/lib/password"
	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// MockUserRepository реализует интерфейс user.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id string, user models.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func TestProfile_OwnershipCheck(t *testing.T) {
	user := &models.User{ID: "user-1", Name: "Ann", Email: "ann@x.com"}

	t.Run("владелец читает профиль", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByID", mock.Anything, "user-1").Return(user, nil)
		service := New(repo)

		got, err := service.Profile(context.Background(), "user-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "ann@x.com", got.Email)
	})

	t.Run("чужой профиль не выдается", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := New(repo)

		got, err := service.Profile(context.Background(), "user-1", "user-2")
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Nil(t, got)
		repo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})
}

func TestUpdate_RehashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	var stored models.User
	repo.On("UpdateUser", mock.Anything, "user-1", mock.AnythingOfType("models.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).(models.User)
		}).
		Return(nil)
	service := New(repo)

	err := service.Update(context.Background(), "user-1", "user-1", "Ann", "ann@x.com", "newpw")
	require.NoError(t, err)

	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "ann@x.com", stored.Email)
	assert.NotEqual(t, "newpw", stored.PasswordHash)
	assert.NoError(t, password.CompareHash(stored.PasswordHash, "newpw"))
}

func TestUpdate_OwnershipCheck(t *testing.T) {
	repo := new(MockUserRepository)
	service := New(repo)

	err := service.Update(context.Background(), "user-1", "user-2", "Ann", "ann@x.com", "newpw")
	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}
