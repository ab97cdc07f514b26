package detect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

var imotifThreshold = map[string]float64{
	"Canonical i-Motif": 0.5,
	"Relaxed i-Motif":   0.3,
	"AC-motif":          0.2,
}

// IMotif detects i-Motif candidates: the symmetric, C-based analogue of
// G4Hunter (spec §4.3: "C-based analogue: C→+1, G→−1"). AC-motif variants
// are seeded by their own explicit registry regexes and scored the same
// way, with a lower acceptance threshold.
func IMotif(sequence string, reg *registry.Registry, scn scanner.Scanner, _ *slog.Logger) []motif.Candidate {
	matches := scn.Scan(sequence)
	byID := make(map[int]registry.Pattern, len(reg.Patterns))
	for _, p := range reg.Patterns {
		byID[p.ID] = p
	}

	type span struct{ start, end int }
	seen := make(map[span]bool)

	var candidates []motif.Candidate
	for _, m := range matches {
		key := span{m.Start, m.End}
		if seen[key] {
			continue
		}
		seen[key] = true

		p := byID[m.PatternID]
		text := sequence[m.Start:m.End]
		score := signedRunScore(text, 'C', 'G', 4)
		threshold := imotifThreshold[p.Subclass]
		if threshold == 0 {
			threshold = 0.3
		}
		if score < threshold {
			continue
		}
		candidates = append(candidates, motif.Candidate{
			Class: motif.IMotif, Subclass: p.Subclass,
			Start: m.Start, End: m.End, Score: score,
			Method: "iMotifHunter", Sequence: text,
		})
	}

	return ResolveIntraClass(candidates)
}
