package detect

import (
	"strings"
	"testing"

	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

// TestCurvedPolyA covers spec §8 end-to-end scenario 4: 25 A characters
// yield exactly one Local Curvature motif covering [0, 25).
func TestCurvedPolyA(t *testing.T) {
	reg, err := registry.Default("Curved_DNA")
	if err != nil {
		t.Fatalf("registry.Default() error = %v", err)
	}
	scn := scanner.New(reg, nil)

	seq := strings.Repeat("A", 25)
	got := Curved(seq, reg, scn, nil)
	if len(got) != 1 {
		t.Fatalf("len(candidates) = %d, want 1", len(got))
	}
	if got[0].Subclass != "Local Curvature" {
		t.Errorf("Subclass = %q, want %q", got[0].Subclass, "Local Curvature")
	}
	if got[0].Start != 0 || got[0].End != 25 {
		t.Errorf("candidate = [%d,%d), want [0,25)", got[0].Start, got[0].End)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
