package repository

import (
	"context"
	"errors"
	"fmt"
	mongodb "stay/infras/mongo"
	"stay/infras/otel"
	"stay/shared/constant"
	"stay/shared/dto"
	"stay/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document is a Store over a MongoDB collection. Field names in filters and update maps are
// the bson names of T, which match its db tags.
type Document[T any] struct {
	collection *mongo.Collection
	otel       otel.Otel
	entitas    string
}

func NewDocument[T any](entitasName, collectionName string, conn *mongodb.Connection, otl otel.Otel) *Document[T] {
	return &Document[T]{
		collection: conn.Collection(collectionName),
		otel:       otl,
		entitas:    entitasName,
	}
}

// EnsureIndexes creates an ascending index on each field. Existing indexes are left untouched.
func (repo *Document[T]) EnsureIndexes(ctx context.Context, fields ...string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.EnsureIndexes", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	models := make([]mongo.IndexModel, 0, len(fields))
	for _, field := range fields {
		models = append(models, mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}})
	}

	if len(models) == 0 {
		return nil
	}

	if _, err := repo.collection.Indexes().CreateMany(ctx, models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to create indexes (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Document[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if _, err := repo.collection.InsertOne(ctx, model); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Document[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if filter.IsEmpty() {
		return false, errRequiredFilter
	}

	query := filter.GetBSON()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	count, err := repo.collection.CountDocuments(ctx, query, options.Count().SetLimit(1))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return count > 0, nil
}

func (repo *Document[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := filter.GetBSON()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	opts := options.FindOne()
	if len(columns) > 0 {
		opts.SetProjection(projection(columns))
	}

	err := repo.collection.FindOne(ctx, query, opts).Decode(&model)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

func (repo *Document[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := filter.GetBSON()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	opts := options.Find().SetSort(bson.D{{Key: constant.FieldCreatedAt, Value: 1}, {Key: "_id", Value: 1}})

	if params.Limit > 0 {
		opts.SetLimit(int64(params.Limit))
	}

	if offset := params.Offset(); offset > 0 {
		opts.SetSkip(int64(offset))
	}

	if len(columns) > 0 {
		opts.SetProjection(projection(columns))
	}

	models := []T{}

	cursor, err := repo.collection.Find(ctx, query, opts)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	if err = cursor.All(ctx, &models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to decode all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

func (repo *Document[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	query := filter.GetBSON()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	count, err := repo.collection.CountDocuments(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entitas, err)
	}

	return int(count), nil
}

// EstimatedCount reads the collection size from its metadata instead of scanning it.
func (repo *Document[T]) EstimatedCount(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.EstimatedCount", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	count, err := repo.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to estimate count (%s): %w", repo.entitas, err)
	}

	return int(count), nil
}

func (repo *Document[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if filter.IsEmpty() {
		return errRequiredFilter
	}

	query := filter.GetBSON()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.collection.UpdateOne(ctx, query, bson.M{"$set": mod}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Document[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if filter.IsEmpty() {
		return errRequiredFilter
	}

	query := filter.GetBSON()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.collection.DeleteOne(ctx, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return nil
}

func projection(columns []string) bson.M {
	fields := bson.M{}

	for _, column := range columns {
		if column == constant.FieldID {
			column = "_id"
		}

		fields[column] = 1
	}

	return fields
}
