package detect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

var rloopMinGC = map[string]float64{
	"RLFS model 1": 0.5,
	"RLFS model 2": 0.6,
}

// RLoop detects R-loop forming sequences: score = GC_fraction * GC_skew *
// run_length on the forward strand (spec §4.3), gated by a minimum
// GC_fraction that is stricter for model 2.
func RLoop(sequence string, reg *registry.Registry, scn scanner.Scanner, _ *slog.Logger) []motif.Candidate {
	matches := scn.Scan(sequence)
	byID := make(map[int]registry.Pattern, len(reg.Patterns))
	for _, p := range reg.Patterns {
		byID[p.ID] = p
	}

	var candidates []motif.Candidate
	for _, m := range matches {
		p := byID[m.PatternID]
		text := sequence[m.Start:m.End]
		gFrac, cFrac, gc := baseFractions(text)
		minGC := rloopMinGC[p.Subclass]
		if minGC == 0 {
			minGC = 0.5
		}
		if gc < minGC || gFrac+cFrac == 0 {
			continue
		}
		skew := (gFrac - cFrac) / (gFrac + cFrac)
		score := gc * skew * float64(len(text))
		if score <= 0 {
			continue
		}
		candidates = append(candidates, motif.Candidate{
			Class: motif.RLoop, Subclass: p.Subclass,
			Start: m.Start, End: m.End, Score: score,
			Method: "RLFS", Sequence: text,
		})
	}

	return ResolveIntraClass(candidates)
}

// gcSkewBase classifies one base as +1 (G), -1 (C), or 0 (A/T/N), mirroring
// soniakeys-bio/dna8.go's GCSkew: that file isolates G/C from the ASCII
// code via b&6 (6 for G, 2 for C) rather than a literal-byte switch.
func gcSkewBase(b byte) int {
	if b == 'N' {
		return 0
	}
	switch b & 6 {
	case 6:
		return 1
	case 2:
		return -1
	default:
		return 0
	}
}

// baseFractions returns the G fraction, C fraction, and combined GC
// fraction of s (each relative to len(s)), built by summing gcSkewBase
// over every base.
func baseFractions(s string) (gFrac, cFrac, gc float64) {
	if len(s) == 0 {
		return 0, 0, 0
	}
	var g, c int
	for i := 0; i < len(s); i++ {
		switch gcSkewBase(s[i]) {
		case 1:
			g++
		case -1:
			c++
		}
	}
	n := float64(len(s))
	return float64(g) / n, float64(c) / n, float64(g+c) / n
}
