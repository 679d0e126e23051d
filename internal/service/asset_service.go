package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yourorg/options-dashboard/internal/client"
	"github.com/yourorg/options-dashboard/internal/model"
	"github.com/yourorg/options-dashboard/internal/repository"
)

// AssetService owns the asset registry: which underlyings are tracked,
// their metadata, and enablement state. All mutations are read-modify-write
// on a single document without compare-and-swap; concurrent writers are
// last-write-wins.
type AssetService struct {
	assetRepo   *repository.AssetRepository
	bybitClient *client.BybitClient
	logger      *zap.Logger
}

// NewAssetService creates a new asset service
func NewAssetService(assetRepo *repository.AssetRepository, bybitClient *client.BybitClient, logger *zap.Logger) *AssetService {
	return &AssetService{
		assetRepo:   assetRepo,
		bybitClient: bybitClient,
		logger:      logger,
	}
}

// GetAssets returns the registry, seeding it with the default assets when
// no document exists yet. The bootstrap is idempotent: concurrent first
// reads all write the same seed document.
func (s *AssetService) GetAssets(ctx context.Context) (model.AssetMap, error) {
	assets, err := s.assetRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if assets == nil {
		assets = model.DefaultAssets()
		if err := s.assetRepo.Save(ctx, assets); err != nil {
			s.logger.Warn("Failed to persist default assets", zap.Error(err))
		} else {
			s.logger.Info("Initialized asset registry with defaults",
				zap.Int("count", len(assets)))
		}
	}

	return assets, nil
}

// AddAsset registers a new underlying. The symbol must not already be
// present, and the exchange catalog must list at least one option
// instrument for it.
func (s *AssetService) AddAsset(ctx context.Context, symbol, name string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if name == "" {
		name = symbol
	}

	assets, err := s.GetAssets(ctx)
	if err != nil {
		return err
	}

	if _, exists := assets[symbol]; exists {
		return model.ErrAssetExists
	}

	if !s.bybitClient.HasOptions(ctx, symbol) {
		return model.ErrNoInstruments
	}

	now := time.Now().UTC()
	assets[symbol] = model.Asset{
		Name:    name,
		Enabled: true,
		Order:   len(assets) + 1,
		AddedAt: &now,
	}

	if err := s.assetRepo.Save(ctx, assets); err != nil {
		return err
	}

	s.logger.Info("Added asset", zap.String("symbol", symbol), zap.String("name", name))
	return nil
}

// ToggleAsset flips an asset's enabled flag. Returns false when the symbol
// is not registered.
func (s *AssetService) ToggleAsset(ctx context.Context, symbol string) (bool, error) {
	assets, err := s.GetAssets(ctx)
	if err != nil {
		return false, err
	}

	asset, exists := assets[symbol]
	if !exists {
		return false, nil
	}

	asset.Enabled = !asset.Enabled
	assets[symbol] = asset

	if err := s.assetRepo.Save(ctx, assets); err != nil {
		return false, err
	}

	s.logger.Info("Toggled asset",
		zap.String("symbol", symbol),
		zap.Bool("enabled", asset.Enabled))
	return true, nil
}

// RemoveAsset deletes an asset from the registry. Default assets are
// permanently protected; removing one returns false.
func (s *AssetService) RemoveAsset(ctx context.Context, symbol string) (bool, error) {
	if model.IsDefaultAsset(symbol) {
		return false, nil
	}

	assets, err := s.GetAssets(ctx)
	if err != nil {
		return false, err
	}

	if _, exists := assets[symbol]; !exists {
		return false, nil
	}

	delete(assets, symbol)

	if err := s.assetRepo.Save(ctx, assets); err != nil {
		return false, err
	}

	s.logger.Info("Removed asset", zap.String("symbol", symbol))
	return true, nil
}
