package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/yourorg/options-dashboard/internal/model"
	"github.com/yourorg/options-dashboard/internal/repository"
)

// StatsService derives coarse operational stats from the record store.
type StatsService struct {
	statsRepo *repository.StatsRepository
	logger    *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo *repository.StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// GetStats assembles best-effort counters. Store failures collapse to zero
// values rather than errors; the dashboard tolerates stale or empty stats.
func (s *StatsService) GetStats(ctx context.Context) model.Stats {
	global := s.statsRepo.GlobalStats(ctx)

	messages, _ := strconv.ParseInt(global["messages"], 10, 64)

	lastUpdate := global["last_update"]
	if lastUpdate == "" {
		lastUpdate = "N/A"
	}

	// Each instrument contributes an option hash plus an index entry, so
	// half the keyspace is a fair symbol-count estimate.
	return model.Stats{
		TotalSymbols:      s.statsRepo.DBSize(ctx) / 2,
		MessagesProcessed: messages,
		LastUpdate:        lastUpdate,
		RedisMemory:       s.statsRepo.MemoryUsed(ctx),
	}
}
