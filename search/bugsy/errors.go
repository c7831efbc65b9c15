package bugsy

import "errors"

// Sentinel errors for BUGSY's configuration validation.
var (
	// ErrNegativeWeight indicates a negative WF or WT was supplied.
	ErrNegativeWeight = errors.New("bugsy: utility weights must be >= 0")

	// ErrBadPerTick indicates a non-positive PerTick was supplied.
	ErrBadPerTick = errors.New("bugsy: PerTick must be > 0")
)
