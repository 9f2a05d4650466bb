package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
)

func TestCollectionLifecycle(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection[models.ToDoItem]("todos")

	first, err := coll.Insert(ctx, models.ToDoItem{Text: "kamera şarj"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := coll.Insert(ctx, models.ToDoItem{Text: "ışık seti"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := coll.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "kamera şarj", got.Text)

	got.IsCompleted = true
	require.NoError(t, coll.Replace(ctx, got))

	items, err := coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.True(t, items[0].IsCompleted)
	assert.Equal(t, second.ID, items[1].ID)

	require.NoError(t, coll.Delete(ctx, first.ID))
	items, err = coll.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
}

func TestCollectionMissingDocuments(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection[models.EquipmentItem]("equipments")

	_, err := coll.Get(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = coll.Replace(ctx, models.EquipmentItem{ID: "nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = coll.Delete(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollectionRejectsDuplicateKey(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection[models.EquipmentItem]("equipments")

	_, err := coll.Insert(ctx, models.EquipmentItem{ID: "cam-1", Name: "FX3"})
	require.NoError(t, err)

	_, err = coll.Insert(ctx, models.EquipmentItem{ID: "cam-1", Name: "FX6"})
	assert.Error(t, err)
}

func TestSettingsActivePeriod(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Settings.ActivePeriod(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.Settings.SetActivePeriod(ctx, models.Period{Year: 2024, Month: 6}))

	period, err := store.Settings.ActivePeriod(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Period{Year: 2024, Month: 6}, period)
}
