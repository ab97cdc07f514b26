package kmerdetect

import (
	"testing"

	"github.com/VRYella/nonbscanner/registry"
	"github.com/VRYella/nonbscanner/scanner"
)

// TestZDNACGGExpansionIsEGZ covers spec §8 end-to-end scenario 2: "CGG"
// repeated ten times (30 bp) is recognized as an eGZ region of length
// at least 12.
func TestZDNACGGExpansionIsEGZ(t *testing.T) {
	reg, err := registry.Default("Z-DNA")
	if err != nil {
		t.Fatalf("registry.Default() error = %v", err)
	}
	scn := scanner.New(reg, nil)

	seq := ""
	for i := 0; i < 10; i++ {
		seq += "CGG"
	}

	got := ZDNA(seq, reg, scn, nil)
	found := false
	for _, c := range got {
		if c.Subclass == "eGZ" && c.Length() >= 12 {
			found = true
		}
	}
	if !found {
		t.Errorf("ZDNA(%q) = %+v, want an eGZ region of length >= 12", seq, got)
	}
}

// TestZDNAAlternatingCG covers spec §8 end-to-end scenario 3: "CG"
// repeated 15 times is a Z-DNA region, not eGZ.
func TestZDNAAlternatingCG(t *testing.T) {
	reg, err := registry.Default("Z-DNA")
	if err != nil {
		t.Fatalf("registry.Default() error = %v", err)
	}
	scn := scanner.New(reg, nil)

	seq := ""
	for i := 0; i < 15; i++ {
		seq += "CG"
	}

	got := ZDNA(seq, reg, scn, nil)
	if len(got) == 0 {
		t.Fatalf("ZDNA(%q) = empty, want at least one region", seq)
	}
	foundFullSpan := false
	for _, c := range got {
		if c.Start == 0 && c.End == len(seq) && c.Subclass == "Z-DNA" {
			foundFullSpan = true
		}
	}
	if !foundFullSpan {
		t.Errorf("ZDNA(%q) = %+v, want one Z-DNA region covering [0,%d)", seq, got, len(seq))
	}
}

func TestIsPureCGGRepeat(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"CGGCGGCGGCGG", true},
		{"GGCGGCGGCGGC", true},
		{"GCGGCGGCGGCG", true},
		{"CGGCGG", false}, // too short
		{"CGGCGGCGGCGA", false},
		{"CGCGCGCGCGCG", false},
	}
	for _, tt := range tests {
		if got := isPureCGGRepeat(tt.in); got != tt.want {
			t.Errorf("isPureCGGRepeat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
