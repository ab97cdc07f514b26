// Package engine implements the ScanEngine orchestrator of spec §4.7: it
// owns the compiled registries and scanners, dispatches the nine class
// detectors, then runs cross-class resolution, hybrid synthesis, and
// cluster synthesis over their combined output.
package engine

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/VRYella/nonbscanner/cluster"
	"github.com/VRYella/nonbscanner/detect"
	"github.com/VRYella/nonbscanner/kmerdetect"
	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/resolve"
	"github.com/VRYella/nonbscanner/scanner"
	"github.com/VRYella/nonbscanner/seq"
)

// detectorFunc is the explicit dispatch-table entry type replacing the
// source's reflection-based detector discovery (spec §9: "replace with an
// explicit table mapping class-name to detector-handle").
type detectorFunc func(sequence string, reg *registry.Registry, scn scanner.Scanner, logger *slog.Logger) []motif.Candidate

// classOrder is the fixed dispatch/collection order (spec §5: "collects
// per-detector results in a fixed class order... regardless of
// worker-completion order"), taken from the registry table in spec §4.1.
var classOrder = []string{
	"A-philic_DNA", "Z-DNA", "Curved_DNA", "G-Quadruplex",
	"i-Motif", "R-Loop", "Slipped_DNA", "Triplex", "Cruciform",
}

var detectors = map[string]detectorFunc{
	"A-philic_DNA": kmerdetect.APhilic,
	"Z-DNA":        kmerdetect.ZDNA,
	"Curved_DNA":   detect.Curved,
	"G-Quadruplex": detect.GQuadruplex,
	"i-Motif":      detect.IMotif,
	"R-Loop":       detect.RLoop,
	"Slipped_DNA":  detect.Slipped,
	"Triplex":      detect.Triplex,
	"Cruciform":    detect.Cruciform,
}

// Engine holds the immutable, process-wide compiled state: one registry
// and one scanner per class (spec §9 "Global compiled state": initialize
// at construction, never reset between scans).
type Engine struct {
	registries map[string]*registry.Registry
	scanners   map[string]scanner.Scanner
	logger     *slog.Logger
}

// New constructs an Engine, loading either the embedded default
// registries or, if opts.RegistryDir is set, the on-disk registry
// directory (spec §6.1). Registry load and automaton compilation errors
// are fatal and propagate out of construction (spec §7).
func New(opts ConstructOptions, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	regs := make(map[string]*registry.Registry, len(classOrder))
	for _, class := range classOrder {
		var (
			reg *registry.Registry
			err error
		)
		if opts.RegistryDir == "" {
			reg, err = registry.Default(class)
		} else {
			reg, err = registry.LoadDir(opts.RegistryDir, class, registry.KindOf(class))
		}
		if err != nil {
			return nil, err
		}
		regs[class] = reg
	}

	scns := make(map[string]scanner.Scanner, len(classOrder))
	for class, reg := range regs {
		scns[class] = scanner.New(reg, logger)
	}

	return &Engine{registries: regs, scanners: scns, logger: logger}, nil
}

// Scan runs the full pipeline of spec §4.7 over sequence and returns a
// deterministic, fully positioned motif list.
func (e *Engine) Scan(sequence string, opts ScanOptions) ([]motif.Motif, error) {
	opts = opts.withDefaults()

	normalized, err := seq.New(sequence)
	if err != nil {
		return nil, err
	}
	s := normalized.String()
	if len(s) == 0 {
		return nil, nil
	}

	perClass := e.runDetectors(s, opts.Parallel)

	var union []motif.Candidate
	for _, class := range classOrder {
		union = append(union, perClass[class]...)
	}

	mode := resolve.Strict
	if opts.Mode == ModeHybrid {
		mode = resolve.HybridMode
	}
	resolved := resolve.Resolve(mode, union)

	clusters := cluster.Synthesize(resolved, opts.ClusterWindow, opts.ClusterStep)
	resolved = append(resolved, clusters...)

	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Start < resolved[j].Start })

	out := make([]motif.Motif, len(resolved))
	for i, c := range resolved {
		out[i] = motif.FromCandidate(c)
	}
	return out, nil
}

// runDetectors invokes every class detector, collecting results in the
// fixed classOrder regardless of completion order (spec §5). When
// parallel is true, detectors run on a semaphore-bounded goroutine pool
// sized min(9, GOMAXPROCS) (SPEC_FULL.md "Parallel worker pool");
// otherwise they run sequentially in classOrder.
func (e *Engine) runDetectors(sequence string, parallel bool) map[string][]motif.Candidate {
	out := make(map[string][]motif.Candidate, len(classOrder))

	if !parallel {
		for _, class := range classOrder {
			out[class] = detectors[class](sequence, e.registries[class], e.scanners[class], e.logger)
		}
		return out
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > 9 {
		workers = 9
	}
	sem := make(chan struct{}, workers)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, class := range classOrder {
		class := class
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			result := detectors[class](sequence, e.registries[class], e.scanners[class], e.logger)
			mu.Lock()
			out[class] = result
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}
