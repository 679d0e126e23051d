package repository

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StatsKey is the Redis key holding the global ingestion counters hash.
const StatsKey = "stats:global"

// StatsRepository reads coarse operational counters from the store. Every
// accessor degrades to a zero value on failure instead of returning an
// error; stats are strictly best-effort.
type StatsRepository struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(rdb *redis.Client, logger *zap.Logger) *StatsRepository {
	return &StatsRepository{
		rdb:    rdb,
		logger: logger,
	}
}

// GlobalStats returns the ingestion counters hash, or an empty map when the
// read fails.
func (r *StatsRepository) GlobalStats(ctx context.Context) map[string]string {
	stats, err := r.rdb.HGetAll(ctx, StatsKey).Result()
	if err != nil {
		r.logger.Debug("Failed to read global stats", zap.Error(err))
		return map[string]string{}
	}
	return stats
}

// DBSize returns the total key count of the store, or zero on failure.
func (r *StatsRepository) DBSize(ctx context.Context) int64 {
	size, err := r.rdb.DBSize(ctx).Result()
	if err != nil {
		r.logger.Debug("Failed to read store size", zap.Error(err))
		return 0
	}
	return size
}

// MemoryUsed returns the store's human-readable memory usage from INFO
// memory, or "N/A" when unavailable.
func (r *StatsRepository) MemoryUsed(ctx context.Context) string {
	info, err := r.rdb.Info(ctx, "memory").Result()
	if err != nil {
		r.logger.Debug("Failed to read memory info", zap.Error(err))
		return "N/A"
	}

	for _, line := range strings.Split(info, "\r\n") {
		if value, ok := strings.CutPrefix(line, "used_memory_human:"); ok {
			return strings.TrimSpace(value)
		}
	}
	return "N/A"
}
