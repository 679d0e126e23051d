package model

import (
	"sort"
	"time"
)

// Asset represents a tracked underlying coin. Assets are stored as a single
// JSON document in Redis keyed by uppercase symbol.
type Asset struct {
	Name    string     `json:"name"`
	Enabled bool       `json:"enabled"`
	Order   int        `json:"order"`
	AddedAt *time.Time `json:"added_date,omitempty"`
}

// AssetMap is the serialized form of the asset registry: symbol -> Asset.
type AssetMap map[string]Asset

// AddAssetRequest is the payload for registering a new asset.
type AddAssetRequest struct {
	Symbol string `json:"symbol" binding:"required,assetsymbol"`
	Name   string `json:"name"`
}

// defaultAssetSymbols are the seed assets that can be toggled but never removed.
var defaultAssetSymbols = map[string]struct{}{
	"BTC": {},
	"ETH": {},
	"SOL": {},
}

// DefaultAssets returns the seed registry used when no configuration
// document exists yet.
func DefaultAssets() AssetMap {
	return AssetMap{
		"BTC": {Name: "Bitcoin", Enabled: true, Order: 1},
		"ETH": {Name: "Ethereum", Enabled: true, Order: 2},
		"SOL": {Name: "Solana", Enabled: true, Order: 3},
	}
}

// IsDefaultAsset reports whether symbol is one of the protected seed assets.
func IsDefaultAsset(symbol string) bool {
	_, ok := defaultAssetSymbols[symbol]
	return ok
}

// SortedSymbols returns the registry symbols ordered by their Order field.
// Map iteration order is not meaningful for display, the order field is.
func (m AssetMap) SortedSymbols() []string {
	symbols := make([]string, 0, len(m))
	for symbol := range m {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return m[symbols[i]].Order < m[symbols[j]].Order
	})
	return symbols
}
