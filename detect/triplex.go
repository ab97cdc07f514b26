package detect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

const triplexMinTractLen = 15
const triplexCenterMatchBonus = 1.0

// Triplex detects homopurine/homopyrimidine tracts and mirror-repeat
// candidates (spec §4.3). Mirror repeats are not representable with the
// backreference-free registry regexes, so the seed interval is only
// validated (and its arm length measured) here in the detector.
func Triplex(sequence string, reg *registry.Registry, scn scanner.Scanner, _ *slog.Logger) []motif.Candidate {
	matches := scn.Scan(sequence)
	byID := make(map[int]registry.Pattern, len(reg.Patterns))
	for _, p := range reg.Patterns {
		byID[p.ID] = p
	}

	var candidates []motif.Candidate
	for _, m := range matches {
		p := byID[m.PatternID]
		text := sequence[m.Start:m.End]
		if len(text) < triplexMinTractLen {
			continue
		}

		switch p.Subclass {
		case "Mirror Repeat":
			armLen, ok := mirrorArmLength(text)
			if !ok {
				continue
			}
			score := float64(armLen)*2 + triplexCenterMatchBonus
			candidates = append(candidates, motif.Candidate{
				Class: motif.Triplex, Subclass: p.Subclass,
				Start: m.Start, End: m.End, Score: score,
				Method: "mirror_repeat", Sequence: text,
			})
		default:
			purity := maxFraction(text, "AG", "CT")
			score := float64(len(text)) * purity
			candidates = append(candidates, motif.Candidate{
				Class: motif.Triplex, Subclass: "Homopurine/Homopyrimidine",
				Start: m.Start, End: m.End, Score: score,
				Method: "homopurine_pyrimidine", Sequence: text,
			})
		}
	}

	return ResolveIntraClass(candidates)
}

// maxFraction returns the larger of the two sets' base fractions within s.
func maxFraction(s string, setA, setB string) float64 {
	fa := fractionIn(s, setA)
	fb := fractionIn(s, setB)
	if fa > fb {
		return fa
	}
	return fb
}

func fractionIn(s, set string) float64 {
	if len(s) == 0 {
		return 0
	}
	count := 0
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(set); j++ {
			if s[i] == set[j] {
				count++
				break
			}
		}
	}
	return float64(count) / float64(len(s))
}

// mirrorArmLength checks whether s is (approximately) a mirror repeat
// around its center — its first half read forwards equals its second
// half read backwards — and returns the matching arm length.
func mirrorArmLength(s string) (int, bool) {
	half := len(s) / 2
	if half == 0 {
		return 0, false
	}
	left := s[:half]
	right := s[len(s)-half:]
	matched := 0
	for i := 0; i < half; i++ {
		if left[i] == right[half-1-i] {
			matched++
		}
	}
	if float64(matched)/float64(half) < 0.9 {
		return 0, false
	}
	return half, true
}
