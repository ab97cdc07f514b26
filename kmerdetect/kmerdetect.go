// Package kmerdetect implements the shared three-step algorithm behind the
// two k-mer detectors, A-philic_DNA and Z-DNA (spec §4.2): scan the
// 10-mer registry, redistribute each match's scalar evenly across its ten
// bases, then merge touching/overlapping matches into scored regions.
package kmerdetect

import (
	"sort"

	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

// Region is one merged, scored k-mer region before class-specific
// subclass labeling.
type Region struct {
	Start, End int
	Score      float64
}

// Detect runs the find/redistribute/merge pipeline over seq using matches
// already produced by a registry scan. mergeGap is the maximum gap (in
// bases) between two matches for them to join the same region; spec
// default is 0 (touching or overlapping only).
//
// Per spec §4.2 and §8.5, for any emitted region R:
//
//	R.Score == sum(contrib[R.Start:R.End])
//	sum(contrib[0:len(seq)]) == sum(match.Scalar for every match)
//
// Literal 10-mer matches can never span an N base: exact substring
// matching against an all-ACGT pattern body cannot succeed where the
// sequence holds an N, so the §4.3 "N disqualifies the match" rule for
// A-philic_DNA/Z-DNA holds automatically and needs no separate check here.
func Detect(seqLen int, matches []scanner.Match, reg *registry.Registry, mergeGap int) []Region {
	if len(matches) == 0 {
		return nil
	}

	scalarByID := make(map[int]float64, len(reg.Patterns))
	widthByID := make(map[int]int, len(reg.Patterns))
	for _, p := range reg.Patterns {
		scalarByID[p.ID] = p.Scalar
		widthByID[p.ID] = len(p.Body)
	}

	contrib := make([]float64, seqLen)
	for _, m := range matches {
		w := widthByID[m.PatternID]
		if w == 0 {
			w = m.End - m.Start
		}
		per := scalarByID[m.PatternID] / float64(w)
		for i := m.Start; i < m.End; i++ {
			contrib[i] += per
		}
	}

	sorted := make([]scanner.Match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var regions []Region
	curStart, curEnd := sorted[0].Start, sorted[0].End
	for _, m := range sorted[1:] {
		if m.Start <= curEnd+mergeGap {
			if m.End > curEnd {
				curEnd = m.End
			}
			continue
		}
		regions = append(regions, Region{Start: curStart, End: curEnd, Score: sum(contrib, curStart, curEnd)})
		curStart, curEnd = m.Start, m.End
	}
	regions = append(regions, Region{Start: curStart, End: curEnd, Score: sum(contrib, curStart, curEnd)})
	return regions
}

func sum(contrib []float64, start, end int) float64 {
	var s float64
	for i := start; i < end; i++ {
		s += contrib[i]
	}
	return s
}
