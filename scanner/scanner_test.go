package scanner

import (
	"testing"

	"github.com/VRYella/nonbscanner/registry"
)

func TestLiteralFastFallbackParity(t *testing.T) {
	reg, err := registry.New("Test", registry.Literal10mer, []registry.RawEntry{
		{Body: "AAAAAAAAAA", Scalar: 1},
		{Body: "CCCCCCCCCC", Scalar: 1},
	})
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}

	fast, err := newFastLiteral(reg)
	if err != nil {
		t.Fatalf("newFastLiteral() error = %v", err)
	}
	slow := newFallbackLiteral(reg)

	seq := "AAAAAAAAAAAAAAA"
	fastMatches := fast.Scan(seq)
	slowMatches := slow.Scan(seq)

	if !sameMatchSet(fastMatches, slowMatches) {
		t.Errorf("fast/fallback mismatch:\nfast=%v\nslow=%v", fastMatches, slowMatches)
	}
}

func TestRegexFastFallbackParity(t *testing.T) {
	reg, err := registry.New("Test", registry.RegexKind, []registry.RawEntry{
		{Body: "A{7,}"},
		{Body: "(?:CGG){3,}"},
	})
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}

	fast, err := newFastRegex(reg)
	if err != nil {
		t.Fatalf("newFastRegex() error = %v", err)
	}
	slow := newFallbackRegex(reg)

	seq := "AAAAAAAAAACGGCGGCGGCGG"
	fastMatches := fast.Scan(seq)
	slowMatches := slow.Scan(seq)

	if !sameMatchSet(fastMatches, slowMatches) {
		t.Errorf("fast/fallback mismatch:\nfast=%v\nslow=%v", fastMatches, slowMatches)
	}
}

func TestNewSelectsFastByDefault(t *testing.T) {
	reg, err := registry.New("Test", registry.Literal10mer, []registry.RawEntry{{Body: "AAAAAAAAAA"}})
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}
	s := New(reg, nil)
	if s.Engine() != "fast" {
		t.Errorf("Engine() = %q, want %q", s.Engine(), "fast")
	}
}

func sameMatchSet(a, b []Match) bool {
	if len(a) != len(b) {
		return false
	}
	set := map[Match]int{}
	for _, m := range a {
		set[m]++
	}
	for _, m := range b {
		set[m]--
	}
	for _, v := range set {
		if v != 0 {
			return false
		}
	}
	return true
}
