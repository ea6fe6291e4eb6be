// Package task содержит бизнес-логику для управления задачами, включая
// проверку владения и кеширование.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// ErrNotOwner возвращается, когда вызывающий пытается работать
// с задачей другого пользователя.
var ErrNotOwner = errors.New("task belongs to another user")

// dateLayout формат даты задачи в JSON-запросах.
const dateLayout = "2006-01-02"

// cacheTTL время жизни кешированных задач.
const cacheTTL = time.Hour

// TaskRepository определяет методы для работы с задачами в хранилище.
type TaskRepository interface {
	// CreateTask добавляет новую задачу и возвращает её ID.
	CreateTask(ctx context.Context, task models.Task) (string, error)
	// ListTasksByUser возвращает все задачи пользователя.
	ListTasksByUser(ctx context.Context, userID string) ([]*models.Task, error)
	// GetTask возвращает задачу по ID.
	GetTask(ctx context.Context, id string) (*models.Task, error)
	// UpdateTask обновляет данные задачи по ID.
	UpdateTask(ctx context.Context, id string, task models.Task) error
	// RemoveTask удаляет задачу по ID.
	RemoveTask(ctx context.Context, id string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// Service реализует бизнес-логику работы с задачами, включая кеширование.
type Service struct {
	repo  TaskRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo TaskRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую задачу, владельцем становится вызывающий пользователь.
func (s *Service) Create(ctx context.Context, userID string, req models.DummyTask) (string, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return "", fmt.Errorf("invalid date: %w", err)
	}

	task := models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
	}
	id, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return "", err
	}
	s.log.Info("created new task", slog.String("id", id))

	s.invalidate(ctx, listKey(userID))
	return id, nil
}

// List возвращает задачи вызывающего пользователя, используя кеш или хранилище.
//
// В выборку никогда не попадают задачи других пользователей.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Task, error) {
	var result []*models.Task
	key := listKey(userID)
	found, err := s.cache.Get(ctx, key, &result)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", key), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache task list", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// Read возвращает задачу по ID после проверки, что она принадлежит вызывающему.
func (s *Service) Read(ctx context.Context, id, callerID string) (*models.Task, error) {
	var cached models.Task
	key := taskKey(id)
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", key), slog.Any("err", err))
	}
	if found {
		if cached.UserID != callerID {
			return nil, ErrNotOwner
		}
		return &cached, nil
	}

	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != callerID {
		return nil, ErrNotOwner
	}
	if err := s.cache.Set(ctx, key, task, cacheTTL); err != nil {
		s.log.Warn("failed to cache task", slog.String("key", key), slog.Any("err", err))
	}
	return task, nil
}

// Update обновляет задачу по ID после проверки владения и инвалидирует кеш.
func (s *Service) Update(ctx context.Context, id, callerID string, req models.DummyTask) error {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	current, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != callerID {
		return ErrNotOwner
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
	}
	if err := s.repo.UpdateTask(ctx, id, task); err != nil {
		return err
	}

	s.invalidate(ctx, taskKey(id))
	s.invalidate(ctx, listKey(current.UserID))
	return nil
}

// Remove удаляет задачу по ID после проверки владения и инвалидирует кеш.
func (s *Service) Remove(ctx context.Context, id, callerID string) error {
	current, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if current.UserID != callerID {
		return ErrNotOwner
	}

	if err := s.repo.RemoveTask(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, taskKey(id))
	s.invalidate(ctx, listKey(current.UserID))
	return nil
}

func (s *Service) invalidate(ctx context.Context, key string) {
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", key), slog.Any("err", err))
	}
}

func listKey(userID string) string {
	return "tasks:" + userID
}

func taskKey(id string) string {
	return "task:" + id
}
