package resolve

import (
	"testing"

	"github.com/VRYella/nonbscanner/motif"
)

// TestResolveStrictCrossClassOverlap covers spec §8 end-to-end scenario 5.
func TestResolveStrictCrossClassOverlap(t *testing.T) {
	input := []motif.Candidate{
		{Class: motif.GQuadruplex, Start: 10, End: 30, Score: 0.9},
		{Class: motif.APhilicDNA, Start: 25, End: 45, Score: 0.7},
		{Class: motif.ZDNA, Start: 40, End: 60, Score: 0.8},
	}
	got := Resolve(Strict, input)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Class != motif.GQuadruplex || got[0].Start != 10 || got[0].End != 30 {
		t.Errorf("got[0] = %+v, want G-Quadruplex[10,30)", got[0])
	}
	if got[1].Class != motif.ZDNA || got[1].Start != 40 || got[1].End != 60 {
		t.Errorf("got[1] = %+v, want Z-DNA[40,60)", got[1])
	}
}

// TestResolveHybridTwoClassOverlap is the two-class-only variant of spec
// §8 end-to-end scenario 6, isolating the case the spec's own worked
// example describes without the ambiguity a bridging third class
// introduces (see DESIGN.md and the doc comment on SynthesizeHybrids).
func TestResolveHybridTwoClassOverlap(t *testing.T) {
	input := []motif.Candidate{
		{Class: motif.GQuadruplex, Start: 10, End: 30, Score: 0.9},
		{Class: motif.APhilicDNA, Start: 25, End: 45, Score: 0.7},
	}
	got := Resolve(HybridMode, input)

	var hybrids []motif.Candidate
	for _, c := range got {
		if c.Class == motif.Hybrid {
			hybrids = append(hybrids, c)
		}
	}
	if len(hybrids) != 1 {
		t.Fatalf("len(hybrids) = %d, want 1", len(hybrids))
	}
	h := hybrids[0]
	if h.Start != 10 || h.End != 45 {
		t.Errorf("hybrid = [%d,%d), want [10,45)", h.Start, h.End)
	}
	wantSubclass := "G-Quadruplex_A-philic_DNA_Overlap"
	if h.Subclass != wantSubclass {
		t.Errorf("hybrid subclass = %q, want %q", h.Subclass, wantSubclass)
	}
	if h.Score != 0.9 {
		t.Errorf("hybrid score = %v, want 0.9", h.Score)
	}
}

// TestResolveHybridTransitiveBridge documents this implementation's
// literal reading of §4.4's "maximal cluster of pairwise overlapping
// motifs": a third class bridged in through a displaced motif joins the
// same cluster, even though it does not overlap the G-Quadruplex motif
// directly.
func TestResolveHybridTransitiveBridge(t *testing.T) {
	input := []motif.Candidate{
		{Class: motif.GQuadruplex, Start: 10, End: 30, Score: 0.9},
		{Class: motif.APhilicDNA, Start: 25, End: 45, Score: 0.7},
		{Class: motif.ZDNA, Start: 40, End: 60, Score: 0.8},
	}
	hybrids := SynthesizeHybrids(input)
	if len(hybrids) != 1 {
		t.Fatalf("len(hybrids) = %d, want 1", len(hybrids))
	}
	if hybrids[0].Start != 10 || hybrids[0].End != 60 {
		t.Errorf("hybrid = [%d,%d), want [10,60)", hybrids[0].Start, hybrids[0].End)
	}
}

func TestResolveStrictIsIdempotent(t *testing.T) {
	input := []motif.Candidate{
		{Class: motif.GQuadruplex, Start: 10, End: 30, Score: 0.9},
		{Class: motif.ZDNA, Start: 40, End: 60, Score: 0.8},
	}
	once := Resolve(Strict, input)
	twice := Resolve(Strict, once)
	if len(once) != len(twice) {
		t.Fatalf("len(once) = %d, len(twice) = %d, want equal", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("resolver is not idempotent at %d: %+v != %+v", i, once[i], twice[i])
		}
	}
}
