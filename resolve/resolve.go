// Package resolve implements the cross-class OverlapResolver of spec §4.4:
// strict-mode greedy non-overlapping selection, and hybrid mode which
// keeps the strict-mode subset and separately synthesizes Hybrid motifs
// for the displaced overlaps.
package resolve

import (
	"sort"

	"github.com/VRYella/nonbscanner/motif"
)

// Mode selects the cross-class resolution algorithm.
type Mode string

const (
	Strict Mode = "strict"
	HybridMode Mode = "hybrid"
)

// Resolve runs the cross-class resolver over the union of every class
// detector's output. In Strict mode it returns only the non-overlapping
// accepted subset; in HybridMode it additionally appends the synthesized
// Hybrid motifs (spec §4.5), merged in and re-sorted by start.
func Resolve(mode Mode, input []motif.Candidate) []motif.Candidate {
	accepted := resolveStrict(input)
	if mode != HybridMode {
		return accepted
	}

	hybrids := SynthesizeHybrids(input)
	out := make([]motif.Candidate, 0, len(accepted)+len(hybrids))
	out = append(out, accepted...)
	out = append(out, hybrids...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// resolveStrict implements spec §4.4 strict mode: sort by
// (-score, -length, start, class), greedily accept non-overlapping
// candidates, re-sort the kept set by start. The comparator is total
// (class name breaks the final tie), so the result is deterministic.
func resolveStrict(input []motif.Candidate) []motif.Candidate {
	if len(input) == 0 {
		return nil
	}
	sorted := make([]motif.Candidate, len(input))
	copy(sorted, input)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		if sorted[i].Length() != sorted[j].Length() {
			return sorted[i].Length() > sorted[j].Length()
		}
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].Class < sorted[j].Class
	})

	var kept []motif.Candidate
	for _, c := range sorted {
		overlapped := false
		for _, k := range kept {
			if c.Overlaps(k) {
				overlapped = true
				break
			}
		}
		if !overlapped {
			kept = append(kept, c)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}
