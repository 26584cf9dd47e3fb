package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/plant-care/internal/apperror"
	"github.com/sakif/plant-care/internal/model"
)

func newTestPlantService(t *testing.T) (*PlantService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	return NewPlantService(store, testLogger), store
}

// =========================================================================
// CREATE
// =========================================================================

func TestPlantCreate_AppliesDefaults(t *testing.T) {
	svc, store := newTestPlantService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, model.NewPlant{Name: "Monstera"})
	require.NoError(t, err)

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPlantEmoji, p.Emoji)
	require.NotNil(t, p.WaterFrequencyDays)
	assert.Equal(t, 7, *p.WaterFrequencyDays)
	assert.Equal(t, 50, p.Humidity)
	assert.Equal(t, 100, p.Health)

	// Created today with a weekly schedule → next watering in a week.
	require.NotNil(t, p.NextWater)
	assert.Equal(t, store.today.AddDays(7), *p.NextWater)
}

func TestPlantCreate_FalsyOptionalsStoredAsNull(t *testing.T) {
	svc, store := newTestPlantService(t)

	var in model.NewPlant
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Fern","variety":"","price":0,"photo_url":""}`), &in))

	id, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	p := store.plants[id]
	assert.Nil(t, p.Variety)
	assert.Nil(t, p.Price)
	assert.Nil(t, p.PhotoURL)
	assert.Nil(t, p.PurchaseDate)
}

func TestPlantCreate_RejectsNegativeFrequency(t *testing.T) {
	svc, store := newTestPlantService(t)
	freq := -1

	_, err := svc.Create(context.Background(), model.NewPlant{Name: "x", WaterFrequencyDays: &freq})

	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Empty(t, store.plants)
}

func TestPlantCreate_StoreErrorIsWrapped(t *testing.T) {
	svc, store := newTestPlantService(t)
	store.err = errors.New("connection refused")

	_, err := svc.Create(context.Background(), model.NewPlant{Name: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.err)
	var appErr *apperror.AppError
	assert.False(t, errors.As(err, &appErr), "store failures must not look like client errors")
}

// =========================================================================
// READ
// =========================================================================

func TestPlantGet_NotFound(t *testing.T) {
	svc, _ := newTestPlantService(t)

	_, err := svc.Get(context.Background(), 42)

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestPlantList_EmptyIsNonNil(t *testing.T) {
	svc, _ := newTestPlantService(t)

	plants, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, plants)

	body, err := json.Marshal(plants)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestPlantList_NextWaterPerPlant(t *testing.T) {
	svc, store := newTestPlantService(t)
	ctx := context.Background()

	zero := 0
	_, err := svc.Create(ctx, model.NewPlant{Name: "weekly"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, model.NewPlant{Name: "daily-ish", WaterFrequencyDays: &zero})
	require.NoError(t, err)

	plants, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, plants, 2)

	assert.Equal(t, "daily-ish", plants[0].Name)
	require.NotNil(t, plants[0].NextWater)
	assert.Equal(t, store.today, *plants[0].NextWater)

	require.NotNil(t, plants[1].NextWater)
	assert.Equal(t, store.today.AddDays(7), *plants[1].NextWater)
}

func TestPlantList_NextWaterCrossesMonthAndYear(t *testing.T) {
	svc, store := newTestPlantService(t)
	store.today = model.NewDate(2024, time.December, 28)

	_, err := svc.Create(context.Background(), model.NewPlant{Name: "Holly"})
	require.NoError(t, err)

	plants, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "2025-01-04", plants[0].NextWater.String())
}

// =========================================================================
// UPDATE & WATER
// =========================================================================

func TestPlantUpdate_PassesPatchThrough(t *testing.T) {
	svc, store := newTestPlantService(t)

	patch := model.PlantPatch{Humidity: model.Of(80), Variety: model.NullField[string]()}
	require.NoError(t, svc.Update(context.Background(), 3, patch))

	assert.Equal(t, 1, store.updates)
	assert.Equal(t, patch, store.patches[3])
}

func TestPlantUpdate_EmptyPatchSkipsStore(t *testing.T) {
	svc, store := newTestPlantService(t)

	require.NoError(t, svc.Update(context.Background(), 3, model.PlantPatch{}))

	assert.Zero(t, store.updates)
}

func TestPlantUpdate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		id    int64
		patch model.PlantPatch
		field string
	}{
		{"missing id", 0, model.PlantPatch{Name: model.Of("x")}, "id"},
		{"null name", 1, model.PlantPatch{Name: model.NullField[string]()}, "name"},
		{"null health", 1, model.PlantPatch{Health: model.NullField[int]()}, "health"},
		{"negative frequency", 1, model.PlantPatch{WaterFrequencyDays: model.Of(-3)}, "water_frequency_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestPlantService(t)

			err := svc.Update(context.Background(), tt.id, tt.patch)

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr), "got %v", err)
			assert.True(t, errors.Is(err, apperror.ErrValidation))
			assert.Equal(t, tt.field, appErr.Field)
			assert.Zero(t, store.updates)
		})
	}
}

func TestPlantWater_Idempotent(t *testing.T) {
	svc, store := newTestPlantService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, model.NewPlant{Name: "Cactus"})
	require.NoError(t, err)

	old := model.NewDate(2020, time.January, 1)
	p := store.plants[id]
	p.LastWatered = &old
	store.plants[id] = p

	require.NoError(t, svc.Water(ctx, id))
	first, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.NoError(t, svc.Water(ctx, id))
	second, err := svc.Get(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, store.today, *first.LastWatered)
	assert.Equal(t, first.LastWatered, second.LastWatered)
}

func TestPlantWater_MissingIDIsClientError(t *testing.T) {
	svc, store := newTestPlantService(t)

	err := svc.Water(context.Background(), 0)

	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Zero(t, store.waterings)
}

func TestPlantWater_UnknownIDSucceeds(t *testing.T) {
	svc, store := newTestPlantService(t)

	require.NoError(t, svc.Water(context.Background(), 999))
	assert.Equal(t, 1, store.waterings)
}
