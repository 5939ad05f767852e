package repositories

import (
	"context"
	"time"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

// StatisticsRepository stores usage counters
type StatisticsRepository interface {
	Increment(ctx context.Context, counter entities.UsageCounter, delta int64, at time.Time) error
	RecordMaterial(ctx context.Context, material, category string) error
	GetStatistics(ctx context.Context) (*entities.UsageStatistics, error)
	Reset(ctx context.Context) error
}
