package detect

import (
	"log/slog"

	"github.com/VRYella/nonbscanner/motif"
	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

const (
	curvedMinPeriod   = 7.0
	curvedMaxPeriod   = 14.0
	curvedIdealPeriod = 10.5
	curvedMaxArraySize = 5
	curvedMinArraySize = 3
)

// Curved detects intrinsically curved DNA from A/T tracts (spec §4.3):
// a run of 3-5 tracts spaced ~10.5 bp apart is a phased array ("Global
// curvature"); an isolated tract is "Local Curvature".
func Curved(sequence string, reg *registry.Registry, scn scanner.Scanner, _ *slog.Logger) []motif.Candidate {
	matches := scn.Scan(sequence)
	if len(matches) == 0 {
		return nil
	}

	var candidates []motif.Candidate
	i := 0
	for i < len(matches) {
		j := i + 1
		var periods []float64
		for j < len(matches) && j-i < curvedMaxArraySize {
			period := float64(matches[j].Start - matches[j-1].Start)
			if period < curvedMinPeriod || period > curvedMaxPeriod {
				break
			}
			periods = append(periods, period)
			j++
		}
		count := j - i

		if count >= curvedMinArraySize {
			meanPeriod := meanOf(periods)
			meanLen := meanTractLen(matches[i:j])
			phaseQ := clamp01(1-absFloat(meanPeriod-curvedIdealPeriod)/5)
			start, end := matches[i].Start, matches[j-1].End
			candidates = append(candidates, motif.Candidate{
				Class: motif.CurvedDNA, Subclass: "Global curvature",
				Start: start, End: end,
				Score:  float64(count) * meanLen * phaseQ,
				Method: "phased_array", Sequence: sequence[start:end],
			})
			i = j
			continue
		}

		m := matches[i]
		candidates = append(candidates, motif.Candidate{
			Class: motif.CurvedDNA, Subclass: "Local Curvature",
			Start: m.Start, End: m.End,
			Score:  float64(m.End - m.Start),
			Method: "single_tract", Sequence: sequence[m.Start:m.End],
		})
		i++
	}

	return ResolveIntraClass(candidates)
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}

func meanTractLen(matches []scanner.Match) float64 {
	if len(matches) == 0 {
		return 0
	}
	var s float64
	for _, m := range matches {
		s += float64(m.End - m.Start)
	}
	return s / float64(len(matches))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
