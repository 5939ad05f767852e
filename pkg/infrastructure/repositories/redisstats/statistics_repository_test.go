package redisstats

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *StatisticsRepository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewStatisticsRepository(client, "test", zap.NewNop())
}

func TestStatisticsRepository_Increment(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)

	first := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	middle := first.Add(time.Hour)
	last := first.Add(24 * time.Hour)

	require.NoError(t, repo.Increment(ctx, entities.CounterCalculations, 1, middle))
	require.NoError(t, repo.Increment(ctx, entities.CounterCalculations, 1, last))
	require.NoError(t, repo.Increment(ctx, entities.CounterLayers, 4, first))

	assert.Equal(t, "2", mr.HGet("test:stats:counters", "calculations"))

	stats, err := repo.GetStatistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Counters[entities.CounterCalculations])
	assert.Equal(t, int64(4), stats.Counters[entities.CounterLayers])
	assert.Equal(t, 2.0, stats.AverageLayersPerCalculation())
	assert.True(t, stats.FirstUsed.Equal(first), "first use %v", stats.FirstUsed)
	assert.True(t, stats.LastUsed.Equal(last), "last use %v", stats.LastUsed)
}

func TestStatisticsRepository_RecordMaterial(t *testing.T) {
	ctx := context.Background()
	_, repo := setupTestRedis(t)

	require.NoError(t, repo.RecordMaterial(ctx, "EPS 20", "Insulation"))
	require.NoError(t, repo.RecordMaterial(ctx, "EPS 20", "Insulation"))
	require.NoError(t, repo.RecordMaterial(ctx, "Solid brick", "Masonry"))

	stats, err := repo.GetStatistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.MaterialUsage["EPS 20"])
	assert.Equal(t, int64(1), stats.MaterialUsage["Solid brick"])
	assert.Equal(t, int64(2), stats.CategoryUsage["Insulation"])

	top := stats.TopMaterials(1)
	require.Len(t, top, 1)
	assert.Equal(t, "EPS 20", top[0].Name)
}

func TestStatisticsRepository_EmptyAndReset(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)

	stats, err := repo.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats.Counters)
	assert.True(t, stats.FirstUsed.IsZero())

	require.NoError(t, repo.Increment(ctx, entities.CounterSaves, 1, time.Now()))
	require.NoError(t, repo.RecordMaterial(ctx, "Spruce", "Wood"))
	require.NoError(t, repo.Reset(ctx))

	assert.False(t, mr.Exists("test:stats:counters"))
	assert.False(t, mr.Exists("test:stats:materials"))

	stats, err = repo.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Counters[entities.CounterSaves])
	assert.True(t, stats.LastUsed.IsZero())
}

func TestStatisticsRepository_MalformedCounterSkipped(t *testing.T) {
	ctx := context.Background()
	mr, repo := setupTestRedis(t)

	mr.HSet("test:stats:counters", "calculations", "many")
	mr.HSet("test:stats:counters", "saves", "3")

	stats, err := repo.GetStatistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Counters[entities.CounterCalculations])
	assert.Equal(t, int64(3), stats.Counters[entities.CounterSaves])
}

func TestNewStatisticsRepository_DefaultPrefix(t *testing.T) {
	repo := NewStatisticsRepository(redis.NewClient(&redis.Options{}), "", nil)
	assert.Equal(t, "wallcalc:stats:counters", repo.key("counters"))
}
