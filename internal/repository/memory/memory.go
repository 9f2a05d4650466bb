// Package memory provides an in-process store used for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
)

// Collection keeps documents in a map and remembers insertion order.
type Collection[T repository.Document[T]] struct {
	mu    sync.RWMutex
	name  string
	docs  map[string]T
	order []string
}

// NewCollection creates an empty collection.
func NewCollection[T repository.Document[T]](name string) *Collection[T] {
	return &Collection[T]{name: name, docs: make(map[string]T)}
}

// Insert stores doc under a fresh key unless it already carries one.
func (c *Collection[T]) Insert(_ context.Context, doc T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if doc.Key() == "" {
		doc = doc.WithKey(uuid.NewString())
	}
	if _, exists := c.docs[doc.Key()]; exists {
		var zero T
		return zero, fmt.Errorf("insert into %s: duplicate key %s", c.name, doc.Key())
	}

	c.docs[doc.Key()] = doc
	c.order = append(c.order, doc.Key())
	return doc, nil
}

// Get returns the document stored under id.
func (c *Collection[T]) Get(_ context.Context, id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("get %s/%s: %w", c.name, id, repository.ErrNotFound)
	}
	return doc, nil
}

// List returns every document in insertion order.
func (c *Collection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out, nil
}

// Replace overwrites an existing document.
func (c *Collection[T]) Replace(_ context.Context, doc T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[doc.Key()]; !ok {
		return fmt.Errorf("replace %s/%s: %w", c.name, doc.Key(), repository.ErrNotFound)
	}
	c.docs[doc.Key()] = doc
	return nil
}

// Delete removes the document stored under id.
func (c *Collection[T]) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return fmt.Errorf("delete %s/%s: %w", c.name, id, repository.ErrNotFound)
	}
	delete(c.docs, id)
	for i, key := range c.order {
		if key == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Settings holds singleton documents in memory.
type Settings struct {
	mu     sync.RWMutex
	period *models.Period
}

// ActivePeriod returns repository.ErrNotFound until a period has been set.
func (s *Settings) ActivePeriod(_ context.Context) (models.Period, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.period == nil {
		return models.Period{}, fmt.Errorf("active period: %w", repository.ErrNotFound)
	}
	return *s.period, nil
}

// SetActivePeriod replaces the active period.
func (s *Settings) SetActivePeriod(_ context.Context, period models.Period) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.period = &period
	return nil
}

// NewStore builds a Store whose collections all live in memory.
func NewStore() repository.Store {
	return repository.Store{
		Productions:   NewCollection[models.ProductionRecord](repository.CollectionProductions),
		Todos:         NewCollection[models.ToDoItem](repository.CollectionTodos),
		Equipments:    NewCollection[models.EquipmentItem](repository.CollectionEquipments),
		Subscriptions: NewCollection[models.Subscription](repository.CollectionSubscriptions),
		Gallery:       NewCollection[models.GalleryItem](repository.CollectionGallery),
		Lifestyle:     NewCollection[models.GalleryItem](repository.CollectionLifestyle),
		Documents:     NewCollection[models.DocumentItem](repository.CollectionDocuments),
		Settings:      &Settings{},
	}
}
