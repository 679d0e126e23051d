package model

import "strings"

const (
	// SymbolPlaceholder is rendered for expiry/strike components missing
	// from a short instrument symbol.
	SymbolPlaceholder = "N/A"

	OptionTypeCall = "Call"
	OptionTypePut  = "Put"
)

// ParsedSymbol holds the structured components of a raw option instrument
// symbol such as "BTC-27JUN25-45000-C-USDT". It is derived per request and
// never persisted.
type ParsedSymbol struct {
	Underlying string
	Expiry     string
	Strike     string
	Type       string
	Raw        string
}

// ParseOptionSymbol decomposes a raw instrument symbol on the "-" delimiter.
// Symbols with fewer than three components get placeholder expiry/strike
// values rather than an error.
//
// Type classification uses substring containment: any symbol containing "-C"
// is a Call, everything else is a Put. This mirrors the exchange feed's
// naming convention where the call/put marker is terminal or followed only
// by the settlement currency. Filtering uses the stricter suffix predicates
// IsCallSymbol/IsPutSymbol.
func ParseOptionSymbol(raw string) ParsedSymbol {
	parts := strings.Split(raw, "-")

	parsed := ParsedSymbol{
		Underlying: parts[0],
		Expiry:     SymbolPlaceholder,
		Strike:     SymbolPlaceholder,
		Type:       OptionTypePut,
		Raw:        raw,
	}

	if len(parts) > 1 {
		parsed.Expiry = parts[1]
	}
	if len(parts) > 2 {
		parsed.Strike = parts[2]
	}
	if strings.Contains(raw, "-C") {
		parsed.Type = OptionTypeCall
	}

	return parsed
}

// IsCallSymbol reports whether the symbol carries a terminal call marker,
// with or without a settlement-currency suffix.
func IsCallSymbol(symbol string) bool {
	return strings.HasSuffix(symbol, "-C") || strings.HasSuffix(symbol, "-C-USDT")
}

// IsPutSymbol reports whether the symbol carries a terminal put marker,
// with or without a settlement-currency suffix.
func IsPutSymbol(symbol string) bool {
	return strings.HasSuffix(symbol, "-P") || strings.HasSuffix(symbol, "-P-USDT")
}

// OptionView is the normalized, display-ready form of a single instrument
// record merged with its parsed symbol components. Numeric fields default to
// zero when the underlying record is missing or malformed.
type OptionView struct {
	Symbol          string  `json:"symbol"`
	Expiry          string  `json:"expiry"`
	Strike          string  `json:"strike"`
	Type            string  `json:"type"`
	LastPrice       float64 `json:"last_price"`
	MarkPrice       float64 `json:"mark_price"`
	Volume24h       float64 `json:"volume_24h"`
	OpenInterest    float64 `json:"open_interest"`
	Delta           float64 `json:"delta"`
	Gamma           float64 `json:"gamma"`
	Theta           float64 `json:"theta"`
	Vega            float64 `json:"vega"`
	IV              float64 `json:"iv"`
	UnderlyingPrice float64 `json:"underlying"`
	Timestamp       float64 `json:"timestamp"`
}
