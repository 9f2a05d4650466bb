// Package repository declares the storage contracts shared by the memory and MongoDB backends.
package repository

import (
	"context"
	"errors"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// ErrNotFound is returned when a document with the requested key does not exist.
var ErrNotFound = errors.New("document not found")

// Collection names.
const (
	CollectionProductions   = "productions"
	CollectionTodos         = "todos"
	CollectionEquipments    = "equipments"
	CollectionSubscriptions = "subscriptions"
	CollectionGallery       = "thisFridayGallery"
	CollectionLifestyle     = "lifestyleGallery"
	CollectionDocuments     = "documents"
	CollectionSettings      = "settings"
)

// Document is a value stored under a string key.
type Document[T any] interface {
	Key() string
	WithKey(id string) T
}

// Collection is a named set of documents keyed by generated IDs.
// Insert assigns the key; List returns documents in insertion order.
type Collection[T Document[T]] interface {
	Insert(ctx context.Context, doc T) (T, error)
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	Replace(ctx context.Context, doc T) error
	Delete(ctx context.Context, id string) error
}

// SettingsRepository persists singleton configuration documents.
type SettingsRepository interface {
	// ActivePeriod returns ErrNotFound when no period was stored yet.
	ActivePeriod(ctx context.Context) (models.Period, error)
	SetActivePeriod(ctx context.Context, period models.Period) error
}

// Store bundles every collection the application reads and writes.
type Store struct {
	Productions   Collection[models.ProductionRecord]
	Todos         Collection[models.ToDoItem]
	Equipments    Collection[models.EquipmentItem]
	Subscriptions Collection[models.Subscription]
	Gallery       Collection[models.GalleryItem]
	Lifestyle     Collection[models.GalleryItem]
	Documents     Collection[models.DocumentItem]
	Settings      SettingsRepository
}
