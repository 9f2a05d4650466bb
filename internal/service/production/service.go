// Package production manages production records and keeps their flags consistent.
package production

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
)

// ErrInvalidRecord indicates the submitted record fails validation.
var ErrInvalidRecord = errors.New("invalid production record")

// Invalidator drops derived views after a write.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Input carries the editable fields of a production record.
type Input struct {
	Date          time.Time
	Title         string
	Quantity      int
	Type          models.VideoType
	Status        models.VideoStatus
	ProductStatus models.ProductStatus
	Notes         string
}

// Service implements the production record workflow.
type Service struct {
	records     repository.Collection[models.ProductionRecord]
	invalidator Invalidator
	now         func() time.Time
	logger      *zap.Logger
}

// NewService constructs a production service. invalidator may be nil.
func NewService(records repository.Collection[models.ProductionRecord], invalidator Invalidator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		records:     records,
		invalidator: invalidator,
		now:         time.Now,
		logger:      logger,
	}
}

// Create stores a new record. New records start neither completed nor invoiced.
func (s *Service) Create(ctx context.Context, in Input) (models.ProductionRecord, error) {
	in = withDefaults(in)
	if err := validate(in); err != nil {
		return models.ProductionRecord{}, err
	}

	record := models.ProductionRecord{
		Date:          models.NormalizeDate(in.Date),
		Title:         strings.TrimSpace(in.Title),
		Quantity:      in.Quantity,
		Type:          in.Type,
		Status:        in.Status,
		ProductStatus: in.ProductStatus,
		Notes:         in.Notes,
		CreatedAt:     s.now().UTC(),
	}

	created, err := s.records.Insert(ctx, record)
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("create production record: %w", err)
	}

	s.logger.Info("production record created",
		zap.String("id", created.ID),
		zap.String("type", string(created.Type)),
		zap.Int("quantity", created.Quantity),
		zap.Time("date", created.Date),
	)
	s.invalidate(ctx)
	return created, nil
}

// Update replaces the editable fields of a record. Completion, invoicing and pin flags are kept.
func (s *Service) Update(ctx context.Context, id string, in Input) (models.ProductionRecord, error) {
	in = withDefaults(in)
	if err := validate(in); err != nil {
		return models.ProductionRecord{}, err
	}

	return s.mutate(ctx, id, "update", func(r *models.ProductionRecord) {
		r.Date = models.NormalizeDate(in.Date)
		r.Title = strings.TrimSpace(in.Title)
		r.Quantity = in.Quantity
		r.Type = in.Type
		r.Status = in.Status
		r.ProductStatus = in.ProductStatus
		r.Notes = in.Notes
	})
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete production record: %w", err)
	}
	s.logger.Info("production record deleted", zap.String("id", id))
	s.invalidate(ctx)
	return nil
}

// Get loads a single record.
func (s *Service) Get(ctx context.Context, id string) (models.ProductionRecord, error) {
	record, err := s.records.Get(ctx, id)
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("get production record: %w", err)
	}
	return record, nil
}

// List returns every record in storage order.
func (s *Service) List(ctx context.Context) ([]models.ProductionRecord, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list production records: %w", err)
	}
	return records, nil
}

// ToggleComplete flips the completion flag. Completing a record also moves it to the completed status;
// reopening leaves the status alone.
func (s *Service) ToggleComplete(ctx context.Context, id string) (models.ProductionRecord, error) {
	return s.mutate(ctx, id, "toggle complete", func(r *models.ProductionRecord) {
		r.IsCompleted = !r.IsCompleted
		if r.IsCompleted {
			r.Status = models.StatusCompleted
		}
	})
}

// ToggleInvoiced flips the invoiced flag.
func (s *Service) ToggleInvoiced(ctx context.Context, id string) (models.ProductionRecord, error) {
	return s.mutate(ctx, id, "toggle invoiced", func(r *models.ProductionRecord) {
		r.IsInvoiced = !r.IsInvoiced
	})
}

// ToggleProductStatus flips between arrived and not arrived.
func (s *Service) ToggleProductStatus(ctx context.Context, id string) (models.ProductionRecord, error) {
	return s.mutate(ctx, id, "toggle product status", func(r *models.ProductionRecord) {
		r.ProductStatus = r.ProductStatus.Toggle()
	})
}

// TogglePinned flips the pinned flag.
func (s *Service) TogglePinned(ctx context.Context, id string) (models.ProductionRecord, error) {
	return s.mutate(ctx, id, "toggle pinned", func(r *models.ProductionRecord) {
		r.IsPinned = !r.IsPinned
	})
}

// ChangeStatus sets the workflow status and keeps the completion flag in step with it.
func (s *Service) ChangeStatus(ctx context.Context, id string, status models.VideoStatus) (models.ProductionRecord, error) {
	if !status.Valid() {
		return models.ProductionRecord{}, fmt.Errorf("%w: unknown status %q", ErrInvalidRecord, status)
	}
	return s.mutate(ctx, id, "change status", func(r *models.ProductionRecord) {
		r.Status = status
		r.IsCompleted = status == models.StatusCompleted
	})
}

func (s *Service) mutate(ctx context.Context, id, action string, apply func(*models.ProductionRecord)) (models.ProductionRecord, error) {
	record, err := s.records.Get(ctx, id)
	if err != nil {
		return models.ProductionRecord{}, fmt.Errorf("%s: %w", action, err)
	}

	apply(&record)

	if err := s.records.Replace(ctx, record); err != nil {
		return models.ProductionRecord{}, fmt.Errorf("%s: %w", action, err)
	}

	s.logger.Debug("production record updated", zap.String("id", id), zap.String("action", action))
	s.invalidate(ctx)
	return record, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.logger.Warn("dashboard invalidation failed", zap.Error(err))
	}
}

func withDefaults(in Input) Input {
	if in.Status == "" {
		in.Status = models.StatusPlanned
	}
	if in.ProductStatus == "" {
		in.ProductStatus = models.ProductNotArrived
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	return in
}

func validate(in Input) error {
	switch {
	case in.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidRecord)
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidRecord)
	case in.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidRecord)
	case !in.Type.Valid():
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRecord, in.Type)
	case !in.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRecord, in.Status)
	case !in.ProductStatus.Valid():
		return fmt.Errorf("%w: unknown product status %q", ErrInvalidRecord, in.ProductStatus)
	}
	return nil
}
