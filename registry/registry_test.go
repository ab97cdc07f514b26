package registry

import "testing"

func TestNewAssignsIdsByLexicographicBody(t *testing.T) {
	entries := []RawEntry{
		{Body: "TTTTTTTTTT", Subclass: "x", Scalar: 1},
		{Body: "AAAAAAAAAA", Subclass: "x", Scalar: 2},
		{Body: "CCCCCCCCCC", Subclass: "x", Scalar: 3},
	}
	reg, err := New("Test", Literal10mer, entries)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(reg.Patterns) != 3 {
		t.Fatalf("len(Patterns) = %d, want 3", len(reg.Patterns))
	}
	wantOrder := []string{"AAAAAAAAAA", "CCCCCCCCCC", "TTTTTTTTTT"}
	for i, w := range wantOrder {
		if reg.Patterns[i].Body != w {
			t.Errorf("Patterns[%d].Body = %q, want %q", i, reg.Patterns[i].Body, w)
		}
		if reg.Patterns[i].ID != i {
			t.Errorf("Patterns[%d].ID = %d, want %d", i, reg.Patterns[i].ID, i)
		}
	}
}

func TestNewRejectsBadLiteral(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"too short", "AAAA"},
		{"non-ACGTN byte", "AAAAAAAAAX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("Test", Literal10mer, []RawEntry{{Body: tt.body}})
			if err == nil {
				t.Fatal("New() error = nil, want non-nil")
			}
		})
	}
}

func TestNewRejectsBadRegex(t *testing.T) {
	_, err := New("Test", RegexKind, []RawEntry{{Body: "A{7,}("}})
	if err == nil {
		t.Fatal("New() error = nil, want non-nil")
	}
}

func TestNewAcceptsValidRegex(t *testing.T) {
	reg, err := New("Test", RegexKind, []RawEntry{{Body: "A{7,}"}, {Body: "(?:CGG){4,}"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(reg.Patterns) != 2 {
		t.Fatalf("len(Patterns) = %d, want 2", len(reg.Patterns))
	}
}

func TestDefaultAll(t *testing.T) {
	regs, err := DefaultAll()
	if err != nil {
		t.Fatalf("DefaultAll() error = %v", err)
	}
	for _, class := range Classes() {
		reg, ok := regs[class]
		if !ok {
			t.Errorf("DefaultAll() missing class %q", class)
			continue
		}
		if len(reg.Patterns) == 0 {
			t.Errorf("class %q has empty pattern set", class)
		}
		if reg.Kind != KindOf(class) {
			t.Errorf("class %q Kind = %v, want %v", class, reg.Kind, KindOf(class))
		}
	}
}
