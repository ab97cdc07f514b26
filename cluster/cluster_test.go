package cluster

import (
	"testing"

	"github.com/VRYella/nonbscanner/motif"
)

func denseInput() []motif.Candidate {
	return []motif.Candidate{
		{Class: motif.GQuadruplex, Start: 0, End: 20, Score: 1},
		{Class: motif.ZDNA, Start: 30, End: 50, Score: 1},
		{Class: motif.APhilicDNA, Start: 60, End: 80, Score: 1},
		{Class: motif.Triplex, Start: 90, End: 110, Score: 1},
	}
}

func TestSynthesizeFindsDenseCluster(t *testing.T) {
	got := Synthesize(denseInput(), 200, 50)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].Class != motif.Cluster {
		t.Errorf("Class = %v, want %v", got[0].Class, motif.Cluster)
	}
	if got[0].Start != 0 || got[0].End != 110 {
		t.Errorf("cluster = [%d,%d), want [0,110)", got[0].Start, got[0].End)
	}
}

func TestSynthesizeRequiresMinimumClassesAndCount(t *testing.T) {
	input := []motif.Candidate{
		{Class: motif.GQuadruplex, Start: 0, End: 20, Score: 1},
		{Class: motif.GQuadruplex, Start: 30, End: 50, Score: 1},
	}
	got := Synthesize(input, 200, 50)
	if len(got) != 0 {
		t.Errorf("Synthesize() = %+v, want empty (only 1 distinct class)", got)
	}
}

// TestSynthesizeWindowMonotonicity covers spec §8 invariant 7: increasing
// cluster_window never decreases the cluster motif count for the same
// input.
func TestSynthesizeWindowMonotonicity(t *testing.T) {
	input := denseInput()
	small := Synthesize(input, 50, 25)
	large := Synthesize(input, 2000, 50)
	if len(large) < len(small) {
		t.Errorf("len(large) = %d < len(small) = %d, want non-decreasing", len(large), len(small))
	}
}

func TestEmptyInput(t *testing.T) {
	if got := Synthesize(nil, 1000, 100); got != nil {
		t.Errorf("Synthesize(nil) = %+v, want nil", got)
	}
}
