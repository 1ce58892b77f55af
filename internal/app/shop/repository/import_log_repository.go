package repository

import (
	"context"
	"fmt"
	"time"

	"shopline/internal/app/shop/entity"
	"shopline/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type importLogRepository struct {
	collection *mongo.Collection
}

// NewImportLogRepository создает журнал импортов в MongoDB.
// Создает индекс по user_id для выборки истории импортов пользователя.
func NewImportLogRepository(db *mongo.Database) ImportLogRepository {
	collection := db.Collection("import_logs")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("user_id_created_at_idx"),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		// Индекс может уже существовать, работу не прерываем
		logger.Warn().Err(err).Msg("failed to create index on import_logs")
	}

	return &importLogRepository{
		collection: collection,
	}
}

// Append добавляет запись в журнал импортов
func (r *importLogRepository) Append(ctx context.Context, log *entity.ImportLog) error {
	log.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, log); err != nil {
		return fmt.Errorf("failed to insert import log: %w", err)
	}

	return nil
}
