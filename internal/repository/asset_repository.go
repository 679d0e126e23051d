package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yourorg/options-dashboard/internal/model"
)

// AssetsKey is the Redis key holding the asset registry document.
const AssetsKey = "config:assets"

// AssetRepository persists the asset registry as a single JSON document.
// Writes are last-write-wins; there is no compare-and-swap on the document.
type AssetRepository struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(rdb *redis.Client, logger *zap.Logger) *AssetRepository {
	return &AssetRepository{
		rdb:    rdb,
		logger: logger,
	}
}

// Get retrieves the asset registry document. A missing document returns
// (nil, nil) so the service layer can seed defaults.
func (r *AssetRepository) Get(ctx context.Context) (model.AssetMap, error) {
	data, err := r.rdb.Get(ctx, AssetsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to read asset registry", zap.Error(err))
		return nil, fmt.Errorf("failed to read asset registry: %w", err)
	}

	var assets model.AssetMap
	if err := json.Unmarshal([]byte(data), &assets); err != nil {
		r.logger.Error("Failed to decode asset registry", zap.Error(err))
		return nil, fmt.Errorf("failed to decode asset registry: %w", err)
	}

	return assets, nil
}

// Save overwrites the asset registry document.
func (r *AssetRepository) Save(ctx context.Context, assets model.AssetMap) error {
	data, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("failed to encode asset registry: %w", err)
	}

	if err := r.rdb.Set(ctx, AssetsKey, data, 0).Err(); err != nil {
		r.logger.Error("Failed to save asset registry", zap.Error(err))
		return fmt.Errorf("failed to save asset registry: %w", err)
	}

	return nil
}
