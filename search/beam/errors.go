package beam

import "errors"

// ErrBadWidth indicates a non-positive Width was supplied (spec's
// `-width W`, required > 0).
var ErrBadWidth = errors.New("beam: Width must be > 0")

// ErrBadN indicates a negative N was supplied (MonoFloorSearch's `-n`
// trailing-slot count).
var ErrBadN = errors.New("beam: N must be >= 0")
