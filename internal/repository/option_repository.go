package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// OptionKeyPrefix prefixes every instrument record key in the store.
	OptionKeyPrefix = "option:"

	scanBatchSize = 100
)

// OptionRepository reads instrument records from the keyed store. Records
// are hashes under "option:{ASSET}-{EXPIRY}-{STRIKE}-{TYPE}" keys, written
// by the external ingestion pipeline.
type OptionRepository struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewOptionRepository creates a new option repository
func NewOptionRepository(rdb *redis.Client, logger *zap.Logger) *OptionRepository {
	return &OptionRepository{
		rdb:    rdb,
		logger: logger,
	}
}

// ScanKeys returns store keys matching the asset's instrument prefix. A
// positive limit caps the number of keys collected regardless of store
// size; limit <= 0 enumerates everything.
func (r *OptionRepository) ScanKeys(ctx context.Context, asset string, limit int) ([]string, error) {
	pattern := OptionKeyPrefix + strings.ToUpper(asset) + "-*"

	var keys []string
	var cursor uint64
	for {
		batch, next, err := r.rdb.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			r.logger.Error("Failed to scan option keys",
				zap.Error(err),
				zap.String("pattern", pattern))
			return nil, err
		}

		keys = append(keys, batch...)
		if limit > 0 && len(keys) >= limit {
			return keys[:limit], nil
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// GetFields retrieves the field map of a single instrument record. A
// missing record yields an empty map, not an error.
func (r *OptionRepository) GetFields(ctx context.Context, key string) (map[string]string, error) {
	fields, err := r.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		r.logger.Debug("Failed to read instrument record",
			zap.Error(err),
			zap.String("key", key))
		return nil, err
	}
	return fields, nil
}

// FieldFloat extracts a numeric field from a record field map. Missing,
// empty, or malformed values become zero, never an error.
func FieldFloat(fields map[string]string, name string) float64 {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
