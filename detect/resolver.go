// Package detect implements the interval-based class detectors (spec
// §4.3): Cruciform, Curved_DNA, R-Loop, G-Quadruplex, i-Motif, Triplex,
// Slipped_DNA, plus the intra-class resolver they all share.
package detect

import (
	"sort"

	"github.com/VRYella/nonbscanner/motif"
)

// ResolveIntraClass applies the shared greedy algorithm of spec §4.3:
// score candidates, sort by (-score, -length, start), greedily keep a
// candidate iff it does not strictly overlap an already-kept one, then
// re-sort the kept set by start.
func ResolveIntraClass(candidates []motif.Candidate) []motif.Candidate {
	if len(candidates) == 0 {
		return nil
	}
	sorted := make([]motif.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		if sorted[i].Length() != sorted[j].Length() {
			return sorted[i].Length() > sorted[j].Length()
		}
		return sorted[i].Start < sorted[j].Start
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
