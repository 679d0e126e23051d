package model

import "errors"

var (
	// ErrAssetExists is returned when registering a symbol that is
	// already present in the registry.
	ErrAssetExists = errors.New("asset already exists")

	// ErrNoInstruments is returned when the exchange catalog reports no
	// listed option instruments for a symbol. Probe failures are folded
	// into this error rather than distinguished.
	ErrNoInstruments = errors.New("no option instruments available")
)
