package kmerdetect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

// APhilic detects A-philic DNA regions: merged, per-base-redistributed
// 10-mer log2-odds scores (spec §4.2). Subclass is fixed.
func APhilic(sequence string, reg *registry.Registry, scn scanner.Scanner, _ *slog.Logger) []motif.Candidate {
	matches := scn.Scan(sequence)
	regions := Detect(len(sequence), matches, reg, 0)

	candidates := make([]motif.Candidate, 0, len(regions))
	for _, r := range regions {
		candidates = append(candidates, motif.Candidate{
			Class: motif.APhilicDNA, Subclass: "A-philic_DNA",
			Start: r.Start, End: r.End, Score: r.Score,
			Method: "kmer_redistribution", Sequence: sequence[r.Start:r.End],
		})
	}
	return candidates
}
