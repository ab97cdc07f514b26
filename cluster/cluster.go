// Package cluster implements the ClusterSynthesizer of spec §4.6: sliding
// a window over the post-resolver motif list and emitting a synthetic
// Non-B_DNA_Clusters motif for every region dense enough in distinct
// classes.
package cluster

import (
	"fmt"
	"sort"

	"github.com/VRYella/nonbscanner/motif"
)

const (
	DefaultWindow = 1000
	DefaultStep   = 100
	minMotifs     = 3
	minClasses    = 3
)

// Synthesize scans motifs (assumed sorted or not, re-sorted here by start)
// with a sliding window of the given length/step, keeps every window
// containing at least minMotifs motifs spanning at least minClasses
// distinct classes, merges overlapping/adjacent qualifying windows into
// their minimal covering interval, and emits one Non-B_DNA_Clusters
// candidate per merged interval.
func Synthesize(motifs []motif.Candidate, window, step int) []motif.Candidate {
	if window <= 0 {
		window = DefaultWindow
	}
	if step <= 0 {
		step = DefaultStep
	}
	if len(motifs) == 0 {
		return nil
	}

	sorted := make([]motif.Candidate, len(motifs))
	copy(sorted, motifs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	seqEnd := sorted[0].End
	for _, m := range sorted {
		if m.End > seqEnd {
			seqEnd = m.End
		}
	}

	var qualifying [][2]int
	for winStart := 0; winStart < seqEnd; winStart += step {
		winEnd := winStart + window
		members := inWindow(sorted, winStart, winEnd)
		if len(members) < minMotifs {
			continue
		}
		if countClasses(members) < minClasses {
			continue
		}
		qualifying = append(qualifying, [2]int{winStart, winEnd})
	}

	merged := mergeWindows(qualifying)

	var out []motif.Candidate
	for _, iv := range merged {
		members := inWindow(sorted, iv[0], iv[1])
		start, end := iv[0], iv[1]
		// Tighten the synthetic interval to the actual member span rather
		// than the raw window bounds, per §4.5's "interval union" rule
		// applied here too.
		realStart, realEnd := members[0].Start, members[0].End
		for _, m := range members {
			if m.Start < realStart {
				realStart = m.Start
			}
			if m.End > realEnd {
				realEnd = m.End
			}
		}
		if realStart > start {
			start = realStart
		}
		end = realEnd

		classes := countClasses(members)
		density := float64(len(members)) / float64(end-start) * 1000
		out = append(out, motif.Candidate{
			Class:    motif.Cluster,
			Subclass: fmt.Sprintf("Mixed_Cluster_%d_classes", classes),
			Start:    start, End: end,
			Score:  float64(classes) * density,
			Method: "cluster_density",
		})
	}
	return out
}

func inWindow(sorted []motif.Candidate, start, end int) []motif.Candidate {
	var out []motif.Candidate
	for _, m := range sorted {
		if m.Start < end && start < m.End {
			out = append(out, m)
		}
	}
	return out
}

func countClasses(members []motif.Candidate) int {
	seen := map[motif.Class]bool{}
	for _, m := range members {
		seen[m.Class] = true
	}
	return len(seen)
}

func mergeWindows(windows [][2]int) [][2]int {
	if len(windows) == 0 {
		return nil
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i][0] < windows[j][0] })
	merged := [][2]int{windows[0]}
	for _, w := range windows[1:] {
		last := &merged[len(merged)-1]
		if w[0] <= last[1] {
			if w[1] > last[1] {
				last[1] = w[1]
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}
