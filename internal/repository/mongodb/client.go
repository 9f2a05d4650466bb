// Package mongodb implements the document store on MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
)

// Client owns the MongoDB connection and hands out typed collections.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// Connect opens and verifies a MongoDB connection.
func Connect(ctx context.Context, cfg config.MongoDBConfig, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(cfg.URI).SetRegistry(NewRegistry())
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.DBName))
	return &Client{client: client, db: client.Database(cfg.DBName), logger: logger}, nil
}

// EnsureIndexes creates the secondary indexes used by list queries.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(repository.CollectionProductions).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create production indexes: %w", err)
	}
	return nil
}

// Store builds the repository bundle backed by this connection.
func (c *Client) Store() repository.Store {
	return repository.Store{
		Productions:   collection[models.ProductionRecord](c, repository.CollectionProductions),
		Todos:         collection[models.ToDoItem](c, repository.CollectionTodos),
		Equipments:    collection[models.EquipmentItem](c, repository.CollectionEquipments),
		Subscriptions: collection[models.Subscription](c, repository.CollectionSubscriptions),
		Gallery:       collection[models.GalleryItem](c, repository.CollectionGallery),
		Lifestyle:     collection[models.GalleryItem](c, repository.CollectionLifestyle),
		Documents:     collection[models.DocumentItem](c, repository.CollectionDocuments),
		Settings:      &Settings{coll: c.db.Collection(repository.CollectionSettings)},
	}
}

func collection[T repository.Document[T]](c *Client, name string) *Collection[T] {
	return NewCollection[T](c.db.Collection(name), c.logger)
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
