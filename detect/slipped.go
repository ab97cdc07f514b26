package detect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

const (
	slippedMinRepeats     = 3
	directRepeatMinLen    = 10
	directRepeatMaxWindow = 100
	// largeSequenceThreshold and the sampling step below bound direct-repeat
	// search to O(n) work on chromosome-scale input (spec §4.3: "For
	// sequences > 50,000 bp, step-size sampling is allowed with an explicit
	// iteration cap").
	largeSequenceThreshold = 50_000
	directRepeatStepBig    = 4
)

// Slipped detects short tandem repeats from the seed regions the scanner
// returns, then validates and sizes the repeat in the detector itself
// (spec §4.1: "Slipped_DNA does need repeat back-references and performs
// its validation in the detector, not the scanner").
func Slipped(sequence string, reg *registry.Registry, scn scanner.Scanner, _ *slog.Logger) []motif.Candidate {
	matches := scn.Scan(sequence)

	var candidates []motif.Candidate
	for _, m := range matches {
		text := sequence[m.Start:m.End]
		unit, repeats, ok := bestTandemUnit(text)
		if !ok {
			continue
		}
		end := m.Start + unit*repeats
		candidates = append(candidates, motif.Candidate{
			Class: motif.SlippedDNA, Subclass: "STR",
			Start: m.Start, End: end,
			Score:  float64(unit * repeats),
			Method: "str_unit_repeat", Sequence: sequence[m.Start:end],
		})
	}

	candidates = append(candidates, directRepeats(sequence)...)

	return ResolveIntraClass(candidates)
}

// bestTandemUnit finds the unit length in [1,9] that tiles the largest
// exact-repeat prefix of text at least slippedMinRepeats times, preferring
// the unit/repeat-count product (the STR score) when several qualify.
func bestTandemUnit(text string) (unit, repeats int, ok bool) {
	bestScore := 0
	for u := 1; u <= 9 && u*slippedMinRepeats <= len(text); u++ {
		r := 1
		for (r+1)*u <= len(text) && text[r*u:(r+1)*u] == text[:u] {
			r++
		}
		if r < slippedMinRepeats {
			continue
		}
		if score := u * r; score > bestScore {
			bestScore, unit, repeats, ok = score, u, r, true
		}
	}
	return unit, repeats, ok
}

// directRepeats finds pairs of ≥10 bp exact direct repeats within a
// 100 bp window (spec §4.3), sampling the outer loop's step on long
// sequences to stay linear.
func directRepeats(sequence string) []motif.Candidate {
	n := len(sequence)
	step := 1
	if n > largeSequenceThreshold {
		step = directRepeatStepBig
	}

	var candidates []motif.Candidate
	for i := 0; i < n; i += step {
		limit := i + directRepeatMaxWindow
		if limit > n {
			limit = n
		}
		for j := i + directRepeatMinLen; j+directRepeatMinLen <= limit; j++ {
			length := commonPrefixLen(sequence, i, j, limit-j)
			if length < directRepeatMinLen {
				continue
			}
			candidates = append(candidates, motif.Candidate{
				Class: motif.SlippedDNA, Subclass: "Direct Repeat",
				Start: i, End: j + length,
				Score:  float64(length),
				Method: "direct_repeat", Sequence: sequence[i : j+length],
			})
		}
	}
	return candidates
}

func commonPrefixLen(s string, i, j, max int) int {
	n := 0
	for n < max && s[i+n] == s[j+n] {
		n++
	}
	return n
}
