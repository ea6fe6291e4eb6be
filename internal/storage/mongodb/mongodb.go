// Package mongodb реализует хранилище данных на основе MongoDB
// для управления пользователями и задачами. Предоставляет методы
// вставки, поиска, частичного обновления и удаления документов.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound возвращается, когда запрошенный документ отсутствует в хранилище.
// Отсутствие записи — отдельное состояние, а не ошибка соединения.
var ErrNotFound = errors.New("record not found")

// Storage инкапсулирует подключение к MongoDB и коллекции приложения.
type Storage struct {
	client *mongo.Client
	users  *mongo.Collection
	tasks  *mongo.Collection
}

// New подключается к MongoDB по строке соединения, проверяет доступность
// сервера и возвращает готовое хранилище.
func New(ctx context.Context, connectionString, dbName string) (*Storage, error) {
	const op = "storage.mongodb.New"

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(dbName)
	s := &Storage{
		client: client,
		users:  db.Collection("users"),
		tasks:  db.Collection("tasks"),
	}
	if err := s.initializeIndexes(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Уникальность email на уровне хранилища не закрепляется,
// индекс по владельцу нужен только для выборки списка задач.
func (s *Storage) initializeIndexes(ctx context.Context) error {
	_, err := s.tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create tasks index: %w", err)
	}
	return nil
}

// Close разрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
