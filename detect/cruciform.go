package detect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
	"github.com/VRYella/nonbscanner/seq"
)

const (
	cruciformMinArm         = 6
	cruciformMaxArm         = 20
	cruciformMinSpacer      = 1
	cruciformMaxSpacer      = 20
	cruciformMaxIterations  = 200_000
	cruciformLongSeq        = 1000
	cruciformVeryLongSeq    = 50_000
)

// Cruciform finds inverted repeats by brute-force arm/spacer search
// around each AT-rich seed region the scanner returns (spec §4.3): an arm
// of length a matches if seq[i:i+a) equals the reverse complement of
// seq[i+a+s:i+2a+s). Per spec §4.3, sequences over 1000 bp slide the
// position step at a/2 to bound work, sequences over 50 000 bp sample
// even coarser, and the iteration cap is a hard budget per seed window
// (not a single global counter shared by every seed).
func Cruciform(sequence string, reg *registry.Registry, scn scanner.Scanner, logger *slog.Logger) []motif.Candidate {
	seeds := scn.Scan(sequence)
	n := len(sequence)

	var candidates []motif.Candidate

	for _, seed := range seeds {
		iterations := 0
	arms:
		for a := cruciformMinArm; a <= cruciformMaxArm; a++ {
			step := 1
			switch {
			case n > cruciformVeryLongSeq:
				step = a
			case n > cruciformLongSeq:
				step = a / 2
			}
			if step < 1 {
				step = 1
			}

			for i := seed.Start; i < seed.End; i += step {
				if i+2*a+cruciformMinSpacer > n {
					break
				}
				for s := cruciformMinSpacer; s <= cruciformMaxSpacer; s++ {
					iterations++
					if iterations > cruciformMaxIterations {
						if logger != nil {
							logger.Debug("cruciform: per-seed iteration cap reached, returning best-effort results for this seed")
						}
						break arms
					}
					end := i + 2*a + s
					if end > n {
						break
					}
					left := sequence[i : i+a]
					right := sequence[i+a+s : end]
					if left == seq.ReverseComplement(right) {
						text := sequence[i:end]
						score := float64(a) * stabilityFactor(seq.GCFraction(text))
						candidates = append(candidates, motif.Candidate{
							Class: motif.Cruciform, Subclass: "Cruciform",
							Start: i, End: end, Score: score,
							Method: "inverted_repeat", Sequence: text,
						})
					}
				}
			}
		}
	}

	return ResolveIntraClass(candidates)
}

// stabilityFactor models the stacking-stability bonus arms gain from GC
// content: a pure-AT cruciform is the baseline (0.5), a pure-GC cruciform
// scores double.
func stabilityFactor(gcFraction float64) float64 {
	return 0.5 + 0.5*gcFraction
}
