// Package catalog manages the studio's supporting collections and the active period.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
)

// ErrInvalidItem indicates a submitted item fails validation.
var ErrInvalidItem = errors.New("invalid catalog item")

// Invalidator drops derived views after a write that affects them.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Service implements CRUD over to-dos, equipment, subscriptions, galleries and documents.
type Service struct {
	store       repository.Store
	invalidator Invalidator
	now         func() time.Time
	logger      *zap.Logger
}

// NewService constructs a catalog service. invalidator may be nil.
func NewService(store repository.Store, invalidator Invalidator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, invalidator: invalidator, now: time.Now, logger: logger}
}

// AddToDo stores a new open note.
func (s *Service) AddToDo(ctx context.Context, text string) (models.ToDoItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ToDoItem{}, fmt.Errorf("%w: text is required", ErrInvalidItem)
	}
	return insert(ctx, s, s.store.Todos, models.ToDoItem{Text: text, CreatedAt: s.now().UTC()})
}

// ToggleToDo flips the completion flag of a note.
func (s *Service) ToggleToDo(ctx context.Context, id string) (models.ToDoItem, error) {
	item, err := s.store.Todos.Get(ctx, id)
	if err != nil {
		return models.ToDoItem{}, fmt.Errorf("toggle todo: %w", err)
	}
	item.IsCompleted = !item.IsCompleted
	if err := s.store.Todos.Replace(ctx, item); err != nil {
		return models.ToDoItem{}, fmt.Errorf("toggle todo: %w", err)
	}
	return item, nil
}

func (s *Service) DeleteToDo(ctx context.Context, id string) error {
	return remove(ctx, s, s.store.Todos, id)
}

func (s *Service) ListToDos(ctx context.Context) ([]models.ToDoItem, error) {
	return list(ctx, s.store.Todos)
}

// AddEquipment stores a piece of gear.
func (s *Service) AddEquipment(ctx context.Context, name, category string) (models.EquipmentItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.EquipmentItem{}, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	return insert(ctx, s, s.store.Equipments, models.EquipmentItem{
		Name:      name,
		Category:  strings.TrimSpace(category),
		CreatedAt: s.now().UTC(),
	})
}

func (s *Service) DeleteEquipment(ctx context.Context, id string) error {
	return remove(ctx, s, s.store.Equipments, id)
}

func (s *Service) ListEquipment(ctx context.Context) ([]models.EquipmentItem, error) {
	return list(ctx, s.store.Equipments)
}

// AddSubscription stores a recurring expense. Subscriptions are never edited in place.
func (s *Service) AddSubscription(ctx context.Context, name string, price decimal.Decimal, currency models.Currency, cycle models.BillingCycle) (models.Subscription, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return models.Subscription{}, fmt.Errorf("%w: name is required", ErrInvalidItem)
	case price.IsNegative():
		return models.Subscription{}, fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
	case !currency.Valid():
		return models.Subscription{}, fmt.Errorf("%w: unknown currency %q", ErrInvalidItem, currency)
	case !cycle.Valid():
		return models.Subscription{}, fmt.Errorf("%w: unknown billing cycle %q", ErrInvalidItem, cycle)
	}

	sub, err := insert(ctx, s, s.store.Subscriptions, models.Subscription{
		Name:      name,
		Price:     price,
		Currency:  currency,
		Cycle:     cycle,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return models.Subscription{}, err
	}
	s.invalidate(ctx)
	return sub, nil
}

func (s *Service) DeleteSubscription(ctx context.Context, id string) error {
	if err := remove(ctx, s, s.store.Subscriptions, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	return list(ctx, s.store.Subscriptions)
}

// AddGalleryItem adds a reference image to the "this Friday" board.
func (s *Service) AddGalleryItem(ctx context.Context, imageURL string) (models.GalleryItem, error) {
	if err := validateImage(imageURL); err != nil {
		return models.GalleryItem{}, err
	}
	return insert(ctx, s, s.store.Gallery, models.GalleryItem{ImageURL: imageURL, CreatedAt: s.now().UTC()})
}

// ToggleGalleryItem flips the done flag of a "this Friday" image.
func (s *Service) ToggleGalleryItem(ctx context.Context, id string) (models.GalleryItem, error) {
	item, err := s.store.Gallery.Get(ctx, id)
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("toggle gallery item: %w", err)
	}
	item.IsCompleted = !item.IsCompleted
	if err := s.store.Gallery.Replace(ctx, item); err != nil {
		return models.GalleryItem{}, fmt.Errorf("toggle gallery item: %w", err)
	}
	return item, nil
}

func (s *Service) DeleteGalleryItem(ctx context.Context, id string) error {
	return remove(ctx, s, s.store.Gallery, id)
}

func (s *Service) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	return list(ctx, s.store.Gallery)
}

// AddLifestyleItem adds an inspiration image to the lifestyle gallery.
func (s *Service) AddLifestyleItem(ctx context.Context, imageURL string) (models.GalleryItem, error) {
	if err := validateImage(imageURL); err != nil {
		return models.GalleryItem{}, err
	}
	return insert(ctx, s, s.store.Lifestyle, models.GalleryItem{ImageURL: imageURL, CreatedAt: s.now().UTC()})
}

func (s *Service) DeleteLifestyleItem(ctx context.Context, id string) error {
	return remove(ctx, s, s.store.Lifestyle, id)
}

func (s *Service) ListLifestyle(ctx context.Context) ([]models.GalleryItem, error) {
	return list(ctx, s.store.Lifestyle)
}

// AddDocument stores a company document reference.
func (s *Service) AddDocument(ctx context.Context, name, category, fileURL string, fileType models.DocumentFileType) (models.DocumentItem, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return models.DocumentItem{}, fmt.Errorf("%w: name is required", ErrInvalidItem)
	case fileType != models.FilePDF && fileType != models.FileImage:
		return models.DocumentItem{}, fmt.Errorf("%w: unknown file type %q", ErrInvalidItem, fileType)
	}
	if err := validateImage(fileURL); err != nil {
		return models.DocumentItem{}, err
	}
	if category = strings.TrimSpace(category); category == "" {
		category = "Genel"
	}

	return insert(ctx, s, s.store.Documents, models.DocumentItem{
		Name:      name,
		Category:  category,
		FileURL:   fileURL,
		FileType:  fileType,
		CreatedAt: s.now().UTC(),
	})
}

func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	return remove(ctx, s, s.store.Documents, id)
}

func (s *Service) ListDocuments(ctx context.Context) ([]models.DocumentItem, error) {
	return list(ctx, s.store.Documents)
}

func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.logger.Warn("dashboard invalidation failed", zap.Error(err))
	}
}

func insert[T repository.Document[T]](ctx context.Context, s *Service, coll repository.Collection[T], doc T) (T, error) {
	created, err := coll.Insert(ctx, doc)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("add item: %w", err)
	}
	s.logger.Debug("catalog item added", zap.String("id", created.Key()))
	return created, nil
}

func remove[T repository.Document[T]](ctx context.Context, s *Service, coll repository.Collection[T], id string) error {
	if err := coll.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.logger.Debug("catalog item deleted", zap.String("id", id))
	return nil
}

func list[T repository.Document[T]](ctx context.Context, coll repository.Collection[T]) ([]T, error) {
	items, err := coll.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// validateImage accepts http(s) URLs and data URIs; the payload itself is stored opaquely.
func validateImage(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%w: file URL is required", ErrInvalidItem)
	}
	if strings.HasPrefix(raw, "data:") {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: unsupported file URL", ErrInvalidItem)
	}
	return nil
}
