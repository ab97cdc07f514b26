package detect

import (
	"testing"

	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

func TestRLoopGRich(t *testing.T) {
	reg, err := registry.Default("R-Loop")
	if err != nil {
		t.Fatalf("registry.Default() error = %v", err)
	}
	scn := scanner.New(reg, nil)

	// Two G{4,} runs separated by a GC-rich filler: matches the
	// "G{4,}\w{1,20}G{4,}" RLFS model 1 pattern with high GC fraction and
	// positive GC skew.
	seq := "GGGG" + "AGAGAGAGAG" + "GGGG"
	got := RLoop(seq, reg, scn, nil)
	if len(got) == 0 {
		t.Fatalf("RLoop(%q) = empty, want at least one motif", seq)
	}
	for _, c := range got {
		if c.Score <= 0 {
			t.Errorf("candidate %+v has non-positive score", c)
		}
	}
}

func TestBaseFractions(t *testing.T) {
	g, c, gc := baseFractions("GGCCAATT")
	if g != 0.25 || c != 0.25 || gc != 0.5 {
		t.Errorf("baseFractions() = (%v,%v,%v), want (0.25,0.25,0.5)", g, c, gc)
	}
}
