package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/repository"
)

// Collection stores documents of type T in a single MongoDB collection.
type Collection[T repository.Document[T]] struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewCollection wraps an existing MongoDB collection.
func NewCollection[T repository.Document[T]](coll *mongo.Collection, logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T]{coll: coll, logger: logger.With(zap.String("collection", coll.Name()))}
}

// Insert saves doc, assigning a UUID key when it has none.
func (c *Collection[T]) Insert(ctx context.Context, doc T) (T, error) {
	if doc.Key() == "" {
		doc = doc.WithKey(uuid.NewString())
	}
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		var zero T
		return zero, fmt.Errorf("insert into %s: %w", c.coll.Name(), err)
	}
	c.logger.Debug("document inserted", zap.String("id", doc.Key()))
	return doc, nil
}

// Get loads the document stored under id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var doc T
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, fmt.Errorf("get %s/%s: %w", c.coll.Name(), id, repository.ErrNotFound)
	}
	if err != nil {
		return doc, fmt.Errorf("get %s/%s: %w", c.coll.Name(), id, err)
	}
	return doc, nil
}

// List returns every document ordered by creation time, then key.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := c.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.coll.Name(), err)
	}

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}
	return docs, nil
}

// Replace overwrites the stored document carrying the same key.
func (c *Collection[T]) Replace(ctx context.Context, doc T) error {
	res, err := c.coll.ReplaceOne(ctx, bson.M{"_id": doc.Key()}, doc)
	if err != nil {
		return fmt.Errorf("replace %s/%s: %w", c.coll.Name(), doc.Key(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("replace %s/%s: %w", c.coll.Name(), doc.Key(), repository.ErrNotFound)
	}
	return nil
}

// Delete removes the document stored under id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.coll.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete %s/%s: %w", c.coll.Name(), id, repository.ErrNotFound)
	}
	c.logger.Debug("document deleted", zap.String("id", id))
	return nil
}
