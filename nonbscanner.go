// Package nonbscanner scans DNA sequences for non-B structural motifs: a
// fixed taxonomy of eleven classes (nine detected directly, two
// synthesized: Hybrid overlap annotations and density-based clusters).
//
// Basic usage:
//
//	eng, err := nonbscanner.New(nonbscanner.ConstructOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	motifs, err := eng.Scan("GGGTTAGGGTTAGGGTTAGGG", nonbscanner.ScanOptions{})
//
// Scan runs every class detector over the forward strand only; callers
// that want reverse-complement coverage run Scan again on the
// reverse-complemented sequence and adjust coordinates themselves.
//
// Construction is the only blocking step: it loads a compiled pattern
// registry and builds a scanner per class. An Engine is safe for
// concurrent use across multiple Scan calls once constructed.
package nonbscanner

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/engine"
	"github.com/VRYella/nonbscanner/motif"
)

type (
	Engine            = engine.Engine
	ScanOptions       = engine.ScanOptions
	ConstructOptions  = engine.ConstructOptions
	Mode              = engine.Mode
	Motif             = motif.Motif
	Class             = motif.Class
)

const (
	ModeStrict = engine.ModeStrict
	ModeHybrid = engine.ModeHybrid
)

var (
	ErrInvalidAlphabet      = engine.ErrInvalidAlphabet
	ErrRegistryMissing      = engine.ErrRegistryMissing
	ErrRegistryInconsistent = engine.ErrRegistryInconsistent
)

// New constructs an Engine from opts. Pass a zero-value ConstructOptions
// to use the built-in representative default registries; set RegistryDir
// to load a generator-produced registry directory (spec §6.1).
func New(opts ConstructOptions) (*Engine, error) {
	return engine.New(opts, slog.Default())
}

// NewWithLogger is New, but with an explicit logger in place of
// slog.Default() for fallback-activation and IterationCapReached
// notices (spec §7, SPEC_FULL.md "Logging").
func NewWithLogger(opts ConstructOptions, logger *slog.Logger) (*Engine, error) {
	return engine.New(opts, logger)
}
