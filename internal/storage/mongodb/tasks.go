package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/magabrotheeeer/task-tracker/internal/models"
)

// CreateTask сохраняет новую задачу в коллекцию и возвращает её ID.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (string, error) {
	const op = "storage.CreateTask"
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if _, err := s.tasks.InsertOne(ctx, task); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return task.ID, nil
}

// ListTasksByUser возвращает все задачи, принадлежащие пользователю.
func (s *Storage) ListTasksByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	const op = "storage.ListTasksByUser"
	cursor, err := s.tasks.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	result := []*models.Task{}
	for cursor.Next(ctx) {
		var t models.Task
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetTask возвращает задачу по её идентификатору или ErrNotFound.
func (s *Storage) GetTask(ctx context.Context, id string) (*models.Task, error) {
	const op = "storage.GetTask"
	var t models.Task
	err := s.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &t, nil
}

// UpdateTask частично обновляет поля задачи по её идентификатору.
//
// Если документ не найден, возвращается ErrNotFound.
func (s *Storage) UpdateTask(ctx context.Context, id string, task models.Task) error {
	const op = "storage.UpdateTask"
	res, err := s.tasks.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":       task.Title,
		"description": task.Description,
		"date":        task.Date,
	}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// RemoveTask удаляет задачу по её идентификатору.
//
// Если документ не найден, возвращается ErrNotFound.
func (s *Storage) RemoveTask(ctx context.Context, id string) error {
	const op = "storage.RemoveTask"
	res, err := s.tasks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
