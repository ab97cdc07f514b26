package detect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

// g4Priority is the specificity order of spec §4.3: "canonical > bulged >
// relaxed > long-loop > multimeric > imperfect > G-triplex".
var g4Priority = map[string]int{
	"Canonical G4":  0,
	"Bulged G4":     1,
	"Relaxed G4":    2,
	"Long-loop G4":  3,
	"Multimeric G4": 4,
	"Imperfect G4":  5,
	"G-Triplex":     6,
}

var g4Threshold = map[string]float64{
	"Canonical G4":  1.2,
	"Imperfect G4":  0.4,
	"Relaxed G4":    0.3,
	"Multimeric G4": 0.3,
}

const g4DefaultThreshold = 0.5

// GQuadruplex detects G-quadruplex motifs via G4Hunter scoring (spec
// §4.3, GLOSSARY). The seven registry patterns seed candidate intervals;
// when more than one pattern matches the same exact span, the
// higher-specificity subclass wins per g4Priority.
func GQuadruplex(sequence string, reg *registry.Registry, scn scanner.Scanner, _ *slog.Logger) []motif.Candidate {
	matches := scn.Scan(sequence)
	byID := make(map[int]registry.Pattern, len(reg.Patterns))
	for _, p := range reg.Patterns {
		byID[p.ID] = p
	}

	type span struct{ start, end int }
	best := make(map[span]registry.Pattern)
	for _, m := range matches {
		p := byID[m.PatternID]
		key := span{m.Start, m.End}
		if cur, ok := best[key]; !ok || g4Priority[p.Subclass] < g4Priority[cur.Subclass] {
			best[key] = p
		}
	}

	var candidates []motif.Candidate
	for key, p := range best {
		text := sequence[key.start:key.end]
		score := signedRunScore(text, 'G', 'C', 4)
		threshold := g4DefaultThreshold
		if t, ok := g4Threshold[p.Subclass]; ok {
			threshold = t
		}
		if score < threshold {
			continue
		}
		candidates = append(candidates, motif.Candidate{
			Class: motif.GQuadruplex, Subclass: p.Subclass,
			Start: key.start, End: key.end, Score: score,
			Method: "G4Hunter", Sequence: text,
		})
	}

	return ResolveIntraClass(candidates)
}
