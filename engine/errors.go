package engine

import (
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/seq"
)

// Sentinel errors for the taxonomy of spec §7, re-exported at the package
// callers actually import so a caller never needs to reach into seq or
// registry directly to errors.Is against them.
var (
	ErrInvalidAlphabet      = seq.ErrInvalidAlphabet
	ErrRegistryMissing      = registry.ErrMissing
	ErrRegistryInconsistent = registry.ErrInconsistent
)
