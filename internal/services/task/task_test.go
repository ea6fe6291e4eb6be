package task

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/task-tracker/internal/models"
	"github.com/magabrotheeeer/task-tracker/internal/storage/mongodb"
)

// MockRepository реализует интерфейс task.TaskRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTask(ctx context.Context, task models.Task) (string, error) {
	args := m.Called(ctx, task)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) ListTasksByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	args := m.Called(ctx, userID)
	tasks, _ := args.Get(0).([]*models.Task)
	return tasks, args.Error(1)
}

func (m *MockRepository) GetTask(ctx context.Context, id string) (*models.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *MockRepository) UpdateTask(ctx context.Context, id string, task models.Task) error {
	args := m.Called(ctx, id, task)
	return args.Error(0)
}

func (m *MockRepository) RemoveTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeCache — кеш в памяти для тестов.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, result any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, result)
}

func (c *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreate(t *testing.T) {
	repo := new(MockRepository)
	cache := newFakeCache()
	service := New(repo, cache, newNoopLogger())

	var stored models.Task
	repo.On("CreateTask", mock.Anything, mock.AnythingOfType("models.Task")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.Task)
		}).
		Return("task-1", nil)

	id, err := service.Create(context.Background(), "user-1",
		models.DummyTask{Title: "T", Description: "D", Date: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)

	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "T", stored.Title)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), stored.Date)
}

func TestCreate_InvalidDate(t *testing.T) {
	repo := new(MockRepository)
	service := New(repo, newFakeCache(), newNoopLogger())

	_, err := service.Create(context.Background(), "user-1",
		models.DummyTask{Title: "T", Description: "D", Date: "01-2024"})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestList_UsesCache(t *testing.T) {
	repo := new(MockRepository)
	cache := newFakeCache()
	service := New(repo, cache, newNoopLogger())

	tasks := []*models.Task{{ID: "task-1", UserID: "user-1", Title: "T"}}
	repo.On("ListTasksByUser", mock.Anything, "user-1").Return(tasks, nil).Once()

	// первый вызов идет в хранилище и наполняет кеш
	got, err := service.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// второй вызов обслуживается из кеша
	got, err = service.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertNumberOfCalls(t, "ListTasksByUser", 1)
}

func TestRead_OwnershipCheck(t *testing.T) {
	task := &models.Task{ID: "task-1", UserID: "user-1", Title: "T"}

	tests := []struct {
		name     string
		callerID string
		wantErr  error
	}{
		{
			name:     "владелец читает задачу",
			callerID: "user-1",
			wantErr:  nil,
		},
		{
			name:     "чужая задача",
			callerID: "user-2",
			wantErr:  ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("GetTask", mock.Anything, "task-1").Return(task, nil)
			service := New(repo, newFakeCache(), newNoopLogger())

			got, err := service.Read(context.Background(), "task-1", tt.callerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "task-1", got.ID)
		})
	}
}

func TestRead_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetTask", mock.Anything, "missing").Return(nil, mongodb.ErrNotFound)
	service := New(repo, newFakeCache(), newNoopLogger())

	_, err := service.Read(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, mongodb.ErrNotFound)
}

func TestUpdate_OwnershipCheck(t *testing.T) {
	current := &models.Task{ID: "task-1", UserID: "user-1", Title: "T"}
	req := models.DummyTask{Title: "T2", Description: "D2", Date: "2024-02-01"}

	t.Run("владелец обновляет задачу", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTask", mock.Anything, "task-1").Return(current, nil)
		repo.On("UpdateTask", mock.Anything, "task-1", mock.AnythingOfType("models.Task")).Return(nil)
		service := New(repo, newFakeCache(), newNoopLogger())

		err := service.Update(context.Background(), "task-1", "user-1", req)
		assert.NoError(t, err)
	})

	t.Run("чужая задача не обновляется", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTask", mock.Anything, "task-1").Return(current, nil)
		service := New(repo, newFakeCache(), newNoopLogger())

		err := service.Update(context.Background(), "task-1", "user-2", req)
		assert.ErrorIs(t, err, ErrNotOwner)
		repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	current := &models.Task{ID: "task-1", UserID: "user-1", Title: "T"}
	repo := new(MockRepository)
	repo.On("GetTask", mock.Anything, "task-1").Return(current, nil)
	repo.On("UpdateTask", mock.Anything, "task-1", mock.AnythingOfType("models.Task")).Return(nil)
	repo.On("ListTasksByUser", mock.Anything, "user-1").
		Return([]*models.Task{current}, nil)

	cache := newFakeCache()
	service := New(repo, cache, newNoopLogger())

	_, err := service.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Contains(t, cache.data, "tasks:user-1")

	err = service.Update(context.Background(), "task-1", "user-1",
		models.DummyTask{Title: "T2", Description: "D2", Date: "2024-02-01"})
	require.NoError(t, err)
	assert.NotContains(t, cache.data, "tasks:user-1")
}

func TestRemove_OwnershipCheck(t *testing.T) {
	current := &models.Task{ID: "task-1", UserID: "user-1", Title: "T"}

	t.Run("владелец удаляет задачу", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTask", mock.Anything, "task-1").Return(current, nil)
		repo.On("RemoveTask", mock.Anything, "task-1").Return(nil)
		service := New(repo, newFakeCache(), newNoopLogger())

		err := service.Remove(context.Background(), "task-1", "user-1")
		assert.NoError(t, err)
	})

	t.Run("чужая задача не удаляется", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetTask", mock.Anything, "task-1").Return(current, nil)
		service := New(repo, newFakeCache(), newNoopLogger())

		err := service.Remove(context.Background(), "task-1", "user-2")
		assert.ErrorIs(t, err, ErrNotOwner)
		repo.AssertNotCalled(t, "RemoveTask", mock.Anything, mock.Anything)
	})
}
