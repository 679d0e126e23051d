package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yourorg/options-dashboard/internal/model"
	"github.com/yourorg/options-dashboard/internal/repository"
)

// FilterAll disables an expiry or type filter when passed as its value.
const FilterAll = "all"

// DefaultScanLimit caps how many instrument keys a single query will
// examine, trading completeness for predictable latency.
const DefaultScanLimit = 500

// OptionsService builds filtered, ranked views over the instrument records
// of a single asset.
type OptionsService struct {
	optionRepo *repository.OptionRepository
	scanLimit  int
	logger     *zap.Logger
}

// NewOptionsService creates a new options service
func NewOptionsService(optionRepo *repository.OptionRepository, scanLimit int, logger *zap.Logger) *OptionsService {
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}

	return &OptionsService{
		optionRepo: optionRepo,
		scanLimit:  scanLimit,
		logger:     logger,
	}
}

// GetOptions returns the asset's instrument records matching the expiry and
// type filters, sorted by 24h volume descending. The underlying key scan is
// capped at the configured limit; records with no fields are skipped. An
// asset with no matching keys yields an empty slice, not an error.
func (s *OptionsService) GetOptions(ctx context.Context, asset, expiry, optionType string) ([]model.OptionView, error) {
	keys, err := s.optionRepo.ScanKeys(ctx, asset, s.scanLimit)
	if err != nil {
		return nil, err
	}

	views := make([]model.OptionView, 0, len(keys))
	for _, key := range keys {
		fields, err := s.optionRepo.GetFields(ctx, key)
		if err != nil || len(fields) == 0 {
			continue
		}

		symbol := strings.TrimPrefix(key, repository.OptionKeyPrefix)
		parsed := model.ParseOptionSymbol(symbol)

		if expiry != "" && expiry != FilterAll && parsed.Expiry != expiry {
			continue
		}
		if optionType != "" && optionType != FilterAll {
			if optionType == "call" && !model.IsCallSymbol(symbol) {
				continue
			}
			if optionType == "put" && !model.IsPutSymbol(symbol) {
				continue
			}
		}

		views = append(views, model.OptionView{
			Symbol:          symbol,
			Expiry:          parsed.Expiry,
			Strike:          parsed.Strike,
			Type:            parsed.Type,
			LastPrice:       repository.FieldFloat(fields, "last_price"),
			MarkPrice:       repository.FieldFloat(fields, "mark_price"),
			Volume24h:       repository.FieldFloat(fields, "volume_24h"),
			OpenInterest:    repository.FieldFloat(fields, "open_interest"),
			Delta:           repository.FieldFloat(fields, "delta"),
			Gamma:           repository.FieldFloat(fields, "gamma"),
			Theta:           repository.FieldFloat(fields, "theta"),
			Vega:            repository.FieldFloat(fields, "vega"),
			IV:              repository.FieldFloat(fields, "mark_iv"),
			UnderlyingPrice: repository.FieldFloat(fields, "underlying_price"),
			Timestamp:       repository.FieldFloat(fields, "timestamp"),
		})
	}

	// Stable sort keeps scan order for equal volumes.
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Volume24h > views[j].Volume24h
	})

	return views, nil
}

// GetExpiries returns the sorted, deduplicated expiry codes present across
// all of the asset's instrument keys. The scan is uncapped since only key
// names are examined.
func (s *OptionsService) GetExpiries(ctx context.Context, asset string) ([]string, error) {
	keys, err := s.optionRepo.ScanKeys(ctx, asset, 0)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, key := range keys {
		symbol := strings.TrimPrefix(key, repository.OptionKeyPrefix)
		parsed := model.ParseOptionSymbol(symbol)
		if parsed.Expiry == model.SymbolPlaceholder {
			continue
		}
		seen[parsed.Expiry] = struct{}{}
	}

	expiries := make([]string, 0, len(seen))
	for expiry := range seen {
		expiries = append(expiries, expiry)
	}
	sort.Strings(expiries)

	return expiries, nil
}
