// Package scanner implements the multi-pattern scanner of spec §4.1: given
// one compiled registry and one sequence, return every (start, end,
// pattern id) match triple, overlap between triples preserved.
//
// Two interchangeable engines are provided per registry: a fast path
// backed by github.com/coregx/ahocorasick (literal registries) or
// github.com/coregx/coregex (regex registries), and a correct fallback
// backed by a plain map scan or stdlib regexp. Selection happens once, at
// construction, never per call (spec §4.1, §9 "Fast-path availability").
package scanner

import (
	"log/slog"
	"sort"

	"github.com/VRYella/nonbscanner/registry"
)

// Match is one scanner hit. Overlap between matches (same or different
// pattern ids) is expected and preserved.
type Match struct {
	Start, End int
	PatternID  int
}

// Scanner runs one compiled registry against a sequence.
type Scanner interface {
	// Scan returns every match, deterministically ordered by
	// (start, pattern id, end) as required by spec §4.1.
	Scan(seq string) []Match
	// Engine reports which implementation is active: "fast" or "fallback".
	Engine() string
}

// New selects and builds a Scanner for reg. It never returns an error: if
// the fast engine cannot be built, it logs a visible notice (spec §9) and
// returns the correct fallback instead.
func New(reg *registry.Registry, logger *slog.Logger) Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	if reg.Kind == registry.Literal10mer {
		if s, err := newFastLiteral(reg); err == nil {
			return s
		} else {
			logger.Info("scanner: fast literal engine unavailable, using fallback",
				slog.String("class", reg.Class), slog.String("error", err.Error()))
		}
		return newFallbackLiteral(reg)
	}

	if s, err := newFastRegex(reg); err == nil {
		return s
	} else {
		logger.Info("scanner: fast regex engine unavailable, using fallback",
			slog.String("class", reg.Class), slog.String("error", err.Error()))
	}
	return newFallbackRegex(reg)
}

func sortMatches(m []Match) {
	sort.Slice(m, func(i, j int) bool {
		if m[i].Start != m[j].Start {
			return m[i].Start < m[j].Start
		}
		if m[i].PatternID != m[j].PatternID {
			return m[i].PatternID < m[j].PatternID
		}
		return m[i].End < m[j].End
	})
}
