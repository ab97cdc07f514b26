package kmerdetect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

const egzMinLength = 12

// ZDNA detects Z-DNA regions the same way as APhilic, then relabels a
// region "eGZ" when it is a pure CGG trinucleotide-repeat expansion of at
// least 12 bp (spec §4.2, GLOSSARY "eGZ").
func ZDNA(sequence string, reg *registry.Registry, scn scanner.Scanner, _ *slog.Logger) []motif.Candidate {
	matches := scn.Scan(sequence)
	regions := Detect(len(sequence), matches, reg, 0)

	candidates := make([]motif.Candidate, 0, len(regions))
	for _, r := range regions {
		text := sequence[r.Start:r.End]
		subclass := "Z-DNA"
		if isPureCGGRepeat(text) {
			subclass = "eGZ"
		}
		candidates = append(candidates, motif.Candidate{
			Class: motif.ZDNA, Subclass: subclass,
			Start: r.Start, End: r.End, Score: r.Score,
			Method: "kmer_redistribution", Sequence: text,
		})
	}
	return candidates
}

// isPureCGGRepeat reports whether text is, end to end, a tandem repeat of
// a 3-bp unit that is a rotation of "CGG" (one C, two G per unit), at
// least egzMinLength bp long.
func isPureCGGRepeat(text string) bool {
	if len(text) < egzMinLength {
		return false
	}
	unit := text[:3]
	c, g := 0, 0
	for i := 0; i < 3; i++ {
		switch unit[i] {
		case 'C':
			c++
		case 'G':
			g++
		default:
			return false
		}
	}
	if c != 1 || g != 2 {
		return false
	}
	for i := 3; i < len(text); i++ {
		if text[i] != unit[i%3] {
			return false
		}
	}
	return true
}
