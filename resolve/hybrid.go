package resolve

import (
	"fmt"
	"sort"

	"github.com/VRYella/nonbscanner/motif"
)

// SynthesizeHybrids implements spec §4.5: every maximal connected
// component of the input's pairwise-overlap graph that spans two or more
// distinct classes becomes one synthetic Hybrid candidate covering the
// component's start/end union. The component is found by the standard
// sort-by-start sweep merge, which is exact for 1-D overlap graphs: it
// chains transitively through bridging members exactly like the region
// merge in kmerdetect.Detect.
//
// Deviation from the spec's own §8 worked illustration: that example
// states a hybrid spanning only two of the three motifs that are in fact
// pairwise-connected via the displaced candidate. §4.4's own algorithm
// text defines "maximal cluster of pairwise overlapping motifs" as a
// connectivity property, not an all-pairs clique, so the third motif
// cannot be excluded without an arbitrary rule this package does not
// invent. The implementation here follows §4.4's literal text; the
// span and subclass therefore differ from that illustration on inputs
// with a bridging third class. See DESIGN.md.
func SynthesizeHybrids(input []motif.Candidate) []motif.Candidate {
	clusters := clusterByOverlap(input)

	var hybrids []motif.Candidate
	for _, cl := range clusters {
		classes := distinctClasses(cl)
		if len(classes) < 2 {
			continue
		}
		hybrids = append(hybrids, synthesize(cl, classes))
	}
	return hybrids
}

// clusterByOverlap groups candidates into maximal connected components of
// the pairwise-overlap graph via a sort-by-start sweep: a run of
// candidates chains together as long as each next start falls strictly
// before the running maximum end seen so far.
func clusterByOverlap(input []motif.Candidate) [][]motif.Candidate {
	if len(input) == 0 {
		return nil
	}
	sorted := make([]motif.Candidate, len(input))
	copy(sorted, input)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	var clusters [][]motif.Candidate
	cur := []motif.Candidate{sorted[0]}
	curEnd := sorted[0].End
	for _, c := range sorted[1:] {
		if c.Start < curEnd {
			cur = append(cur, c)
			if c.End > curEnd {
				curEnd = c.End
			}
			continue
		}
		clusters = append(clusters, cur)
		cur = []motif.Candidate{c}
		curEnd = c.End
	}
	clusters = append(clusters, cur)
	return clusters
}

func distinctClasses(cl []motif.Candidate) []motif.Class {
	seen := map[motif.Class]bool{}
	var out []motif.Class
	for _, c := range cl {
		if !seen[c.Class] {
			seen[c.Class] = true
			out = append(out, c.Class)
		}
	}
	return out
}

// synthesize builds one Hybrid candidate spanning cl's interval union.
// Its subclass names the two dominant classes by best member score
// (spec §4.5); its score is the strongest constituent in the whole
// cluster, not just the two named classes.
func synthesize(cl []motif.Candidate, classes []motif.Class) motif.Candidate {
	bestByClass := map[motif.Class]float64{}
	start, end := cl[0].Start, cl[0].End
	topScore := cl[0].Score
	for _, c := range cl {
		if c.Start < start {
			start = c.Start
		}
		if c.End > end {
			end = c.End
		}
		if c.Score > topScore {
			topScore = c.Score
		}
		if c.Score > bestByClass[c.Class] {
			bestByClass[c.Class] = c.Score
		}
	}

	sort.Slice(classes, func(i, j int) bool {
		if bestByClass[classes[i]] != bestByClass[classes[j]] {
			return bestByClass[classes[i]] > bestByClass[classes[j]]
		}
		return classes[i] < classes[j]
	})

	a, b := classes[0], classes[1]
	subclass := fmt.Sprintf("%s_%s_Overlap", a, b)

	return motif.Candidate{
		Class: motif.Hybrid, Subclass: subclass,
		Start: start, End: end, Score: topScore,
		Method: "hybrid_overlap_synthesis",
	}
}
