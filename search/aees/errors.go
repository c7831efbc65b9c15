package aees

import "errors"

// ErrWeightBelowOne indicates WT0 < 1 was supplied (spec's `-wt0 F`, AEES
// initial weight, must be >= 1).
var ErrWeightBelowOne = errors.New("aees: WT0 must be >= 1")
