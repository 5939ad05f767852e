package memory

import (
	"context"
	"sync"
	"time"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
)

// StatisticsRepository keeps usage counters in memory
type StatisticsRepository struct {
	stats *entities.UsageStatistics
	mu    sync.Mutex
}

// NewStatisticsRepository creates an empty in-memory statistics repository
func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{stats: entities.NewUsageStatistics()}
}

// Verify interface compliance
var _ repositories.StatisticsRepository = (*StatisticsRepository)(nil)

// Increment adds delta to a counter and stamps the usage time
func (r *StatisticsRepository) Increment(ctx context.Context, counter entities.UsageCounter, delta int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Counters[counter] += delta
	if r.stats.FirstUsed.IsZero() || at.Before(r.stats.FirstUsed) {
		r.stats.FirstUsed = at
	}
	if at.After(r.stats.LastUsed) {
		r.stats.LastUsed = at
	}
	return nil
}

// RecordMaterial counts one use of a material and its category
func (r *StatisticsRepository) RecordMaterial(ctx context.Context, material, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.MaterialUsage[material]++
	r.stats.CategoryUsage[category]++
	return nil
}

// GetStatistics returns a snapshot of the counters
func (r *StatisticsRepository) GetStatistics(ctx context.Context) (*entities.UsageStatistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := entities.NewUsageStatistics()
	for k, v := range r.stats.Counters {
		snapshot.Counters[k] = v
	}
	for k, v := range r.stats.MaterialUsage {
		snapshot.MaterialUsage[k] = v
	}
	for k, v := range r.stats.CategoryUsage {
		snapshot.CategoryUsage[k] = v
	}
	snapshot.FirstUsed = r.stats.FirstUsed
	snapshot.LastUsed = r.stats.LastUsed
	return snapshot, nil
}

// Reset clears every counter
func (r *StatisticsRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats = entities.NewUsageStatistics()
	return nil
}
