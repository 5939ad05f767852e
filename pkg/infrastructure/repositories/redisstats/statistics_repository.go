// Package redisstats keeps usage counters in Redis so several processes share them.
package redisstats

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
	"github.com/vsinha/wallcalc/pkg/domain/repositories"
)

// DefaultPrefix namespaces every key written by the repository
const DefaultPrefix = "wallcalc"

const (
	firstUsedMember = "first"
	lastUsedMember  = "last"
)

// StatisticsRepository stores counters in a hash, material usage in a sorted
// set and first/last use as scores in unix milliseconds
type StatisticsRepository struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewStatisticsRepository creates a repository on an existing client
func NewStatisticsRepository(client *redis.Client, prefix string, logger *zap.Logger) *StatisticsRepository {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatisticsRepository{
		client: client,
		prefix: prefix,
		logger: logger.With(zap.String("component", "redis_statistics")),
	}
}

// Verify interface compliance
var _ repositories.StatisticsRepository = (*StatisticsRepository)(nil)

func (r *StatisticsRepository) key(name string) string {
	return r.prefix + ":stats:" + name
}

// Increment adds delta to a counter and updates first/last use
func (r *StatisticsRepository) Increment(ctx context.Context, counter entities.UsageCounter, delta int64, at time.Time) error {
	score := float64(at.UnixMilli())
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, r.key("counters"), string(counter), delta)
		pipe.ZAddLT(ctx, r.key("usage"), redis.Z{Score: score, Member: firstUsedMember})
		pipe.ZAddGT(ctx, r.key("usage"), redis.Z{Score: score, Member: lastUsedMember})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", counter, err)
	}
	return nil
}

// RecordMaterial counts one use of a material and its category
func (r *StatisticsRepository) RecordMaterial(ctx context.Context, material, category string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, r.key("materials"), 1, material)
		pipe.HIncrBy(ctx, r.key("categories"), category, 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record material %s: %w", material, err)
	}
	return nil
}

// GetStatistics reads a snapshot of every counter
func (r *StatisticsRepository) GetStatistics(ctx context.Context) (*entities.UsageStatistics, error) {
	stats := entities.NewUsageStatistics()

	counters, err := r.client.HGetAll(ctx, r.key("counters")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read counters: %w", err)
	}
	for name, raw := range counters {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			r.logger.Warn("skipping malformed counter", zap.String("counter", name), zap.String("value", raw))
			continue
		}
		stats.Counters[entities.UsageCounter(name)] = value
	}

	categories, err := r.client.HGetAll(ctx, r.key("categories")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read category usage: %w", err)
	}
	for name, raw := range categories {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			r.logger.Warn("skipping malformed category count", zap.String("category", name), zap.String("value", raw))
			continue
		}
		stats.CategoryUsage[name] = value
	}

	materials, err := r.client.ZRangeWithScores(ctx, r.key("materials"), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read material usage: %w", err)
	}
	for _, z := range materials {
		if name, ok := z.Member.(string); ok {
			stats.MaterialUsage[name] = int64(z.Score)
		}
	}

	if stats.FirstUsed, err = r.usageTime(ctx, firstUsedMember); err != nil {
		return nil, err
	}
	if stats.LastUsed, err = r.usageTime(ctx, lastUsedMember); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *StatisticsRepository) usageTime(ctx context.Context, member string) (time.Time, error) {
	score, err := r.client.ZScore(ctx, r.key("usage"), member).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read %s use: %w", member, err)
	}
	return time.UnixMilli(int64(score)).UTC(), nil
}

// Reset deletes every statistics key
func (r *StatisticsRepository) Reset(ctx context.Context) error {
	err := r.client.Del(ctx,
		r.key("counters"),
		r.key("categories"),
		r.key("materials"),
		r.key("usage"),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to reset statistics: %w", err)
	}
	r.logger.Info("usage statistics reset")
	return nil
}
