package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

func newTestStore(t *testing.T) *AssemblyStore {
	t.Helper()
	db, err := Open(DriverSQLite, "")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewAssemblyStore(db, zaptest.NewLogger(t))
}

func savedAssembly(name string, epsThickness float64) *entities.SavedAssembly {
	return &entities.SavedAssembly{
		Name: name,
		Layers: []entities.SavedLayer{
			{MaterialName: "Lime plaster", Thickness: 15},
			{MaterialName: "Solid brick", Thickness: 300},
			{MaterialName: "EPS 20", Thickness: epsThickness},
		},
		InteriorSurfaceResistance: 0.13,
		ExteriorSurfaceResistance: 0.04,
		Climate: entities.Climate{
			InteriorTemperature: 21,
			ExteriorTemperature: -12,
			InteriorHumidity:    55,
			ExteriorHumidity:    85,
		},
		SavedAt: time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestAssemblyStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveAssembly(ctx, savedAssembly("House", 120)))

	loaded, err := store.GetAssembly(ctx, "House")
	require.NoError(t, err)

	assert.Equal(t, "House", loaded.Name)
	require.Len(t, loaded.Layers, 3)
	assert.Equal(t, "Solid brick", loaded.Layers[1].MaterialName)
	assert.Equal(t, 120.0, loaded.Layers[2].Thickness)
	assert.Equal(t, -12.0, loaded.Climate.ExteriorTemperature)
	assert.Equal(t, 0.04, loaded.ExteriorSurfaceResistance)
	assert.True(t, loaded.SavedAt.Equal(time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)))
}

func TestAssemblyStore_SaveReplacesByName(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SaveAssembly(ctx, savedAssembly("House", 120)))
	require.NoError(t, store.SaveAssembly(ctx, savedAssembly("House", 200)))

	all, err := store.GetAllAssemblies(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 200.0, all[0].Layers[2].Thickness)
}

func TestAssemblyStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, name := range []string{"Garage", "Attic", "House"} {
		require.NoError(t, store.SaveAssembly(ctx, savedAssembly(name, 100)))
	}

	all, err := store.GetAllAssemblies(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Attic", all[0].Name)
	assert.Equal(t, "House", all[2].Name)

	require.NoError(t, store.DeleteAssembly(ctx, "Garage"))
	assert.ErrorIs(t, store.DeleteAssembly(ctx, "Garage"), entities.ErrAssemblyNotFound)

	_, err = store.GetAssembly(ctx, "Garage")
	assert.ErrorIs(t, err, entities.ErrAssemblyNotFound)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("oracle", "")
	assert.Error(t, err)

	_, err = Open(DriverPostgres, "")
	assert.Error(t, err)
}
