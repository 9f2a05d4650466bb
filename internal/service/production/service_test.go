package production

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
	"github.com/1005Studio/1005ManagmentV02/internal/repository/memory"
)

type invalidationCounter struct{ calls int }

func (c *invalidationCounter) Invalidate(context.Context) error {
	c.calls++
	return nil
}

func newTestService(t *testing.T) (*Service, *invalidationCounter) {
	t.Helper()
	counter := &invalidationCounter{}
	svc := NewService(memory.NewCollection[models.ProductionRecord]("productions"), counter, nil)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return svc, counter
}

func validInput() Input {
	return Input{
		Date:     time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC),
		Title:    "  Yaz Lansmanı ",
		Quantity: 2,
		Type:     models.TypeVideo,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, counter := newTestService(t)

	record, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, "Yaz Lansmanı", record.Title)
	assert.Equal(t, models.StatusPlanned, record.Status)
	assert.Equal(t, models.ProductNotArrived, record.ProductStatus)
	assert.False(t, record.IsCompleted)
	assert.False(t, record.IsInvoiced)
	assert.Equal(t, 1, counter.calls)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{name: "missing date", mutate: func(in *Input) { in.Date = time.Time{} }},
		{name: "blank title", mutate: func(in *Input) { in.Title = "   " }},
		{name: "negative quantity", mutate: func(in *Input) { in.Quantity = -1 }},
		{name: "unknown type", mutate: func(in *Input) { in.Type = "Podcast" }},
		{name: "unknown status", mutate: func(in *Input) { in.Status = "Arşiv" }},
		{name: "unknown product status", mutate: func(in *Input) { in.ProductStatus = "Kayıp" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, counter := newTestService(t)
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.Zero(t, counter.calls)
		})
	}
}

func TestUpdateKeepsFlags(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.ToggleInvoiced(ctx, record.ID)
	require.NoError(t, err)

	in := validInput()
	in.Title = "Kurgu revizyonu"
	in.Type = models.TypeAnimation
	in.Status = models.StatusEditing
	in.Notes = "müşteri notu"

	updated, err := svc.Update(ctx, record.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Kurgu revizyonu", updated.Title)
	assert.Equal(t, models.TypeAnimation, updated.Type)
	assert.True(t, updated.IsInvoiced)

	stored, err := svc.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestToggleComplete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in := validInput()
	in.Status = models.StatusEditing
	record, err := svc.Create(ctx, in)
	require.NoError(t, err)

	done, err := svc.ToggleComplete(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, done.IsCompleted)
	assert.Equal(t, models.StatusCompleted, done.Status)

	reopened, err := svc.ToggleComplete(ctx, record.ID)
	require.NoError(t, err)
	assert.False(t, reopened.IsCompleted)
	assert.Equal(t, models.StatusCompleted, reopened.Status, "reopening does not rewind the status")
}

func TestChangeStatusSyncsCompletion(t *testing.T) {
	svc, counter := newTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	completed, err := svc.ChangeStatus(ctx, record.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)

	review, err := svc.ChangeStatus(ctx, record.ID, models.StatusReview)
	require.NoError(t, err)
	assert.False(t, review.IsCompleted)

	_, err = svc.ChangeStatus(ctx, record.ID, "Bilinmeyen")
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Equal(t, 3, counter.calls)
}

func TestToggles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	arrived, err := svc.ToggleProductStatus(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProductArrived, arrived.ProductStatus)

	pinned, err := svc.TogglePinned(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	invoiced, err := svc.ToggleInvoiced(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, invoiced.IsInvoiced)
	assert.True(t, invoiced.IsPinned)
}

func TestMissingRecord(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleComplete(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteAndList(t *testing.T) {
	svc, counter := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	second, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, first.ID))

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, 3, counter.calls)
}
