// Package registry loads and validates the per-class pattern registries
// that back the multi-pattern scanner (spec §4.1, §6.1): literal 10-mers
// for A-philic_DNA and Z-DNA, regular expressions for the other seven
// classes.
package registry

import (
	"fmt"
	"sort"

	"github.com/coregx/coregex"
)

// Kind distinguishes the two pattern bodies the registry format supports.
type Kind int

const (
	Literal10mer Kind = iota
	RegexKind
)

func (k Kind) String() string {
	if k == Literal10mer {
		return "literal10mer"
	}
	return "regex"
}

// Pattern is one registry entry: a compiled-once literal or regex body
// with its id, subclass label, scalar, and scoring-method tag.
type Pattern struct {
	ID       int     `json:"id"`
	Kind     Kind     `json:"-"`
	Body     string   `json:"body"`
	Subclass string   `json:"subclass"`
	Scalar   float64  `json:"scalar"`
	Method   string   `json:"method"`
}

// jsonPattern is the on-disk shape: Kind is serialized as a string so the
// JSON file stays human-readable per spec §6.1.
type jsonPattern struct {
	ID       int     `json:"id"`
	Kind     string  `json:"kind"`
	Body     string  `json:"body"`
	Subclass string  `json:"subclass"`
	Scalar   float64 `json:"scalar"`
	Method   string  `json:"method"`
}

// Registry holds the compiled pattern set for one motif class.
type Registry struct {
	Class    string
	Kind     Kind
	Patterns []Pattern
}

// New builds a Registry from raw (body, subclass, scalar, method) tuples,
// assigning dense stable ids by sorting lexicographically on body (spec
// §3: "Ids are... assigned by sorting patterns lexicographically by body
// so that regeneration is reproducible"), then validates every pattern.
func New(class string, kind Kind, entries []RawEntry) (*Registry, error) {
	sorted := make([]RawEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Body < sorted[j].Body })

	r := &Registry{Class: class, Kind: kind}
	for i, e := range sorted {
		p := Pattern{ID: i, Kind: kind, Body: e.Body, Subclass: e.Subclass, Scalar: e.Scalar, Method: e.Method}
		if err := validate(p); err != nil {
			return nil, &InconsistentError{Class: class, Pattern: p.Body, Err: err}
		}
		r.Patterns = append(r.Patterns, p)
	}
	return r, nil
}

// RawEntry is the unvalidated, unordered input to New.
type RawEntry struct {
	Body     string
	Subclass string
	Scalar   float64
	Method   string
}

func validate(p Pattern) error {
	switch p.Kind {
	case Literal10mer:
		if len(p.Body) != 10 {
			return fmt.Errorf("literal pattern %q has length %d, want 10", p.Body, len(p.Body))
		}
		for i := 0; i < len(p.Body); i++ {
			switch p.Body[i] {
			case 'A', 'C', 'G', 'T', 'N':
			default:
				return fmt.Errorf("literal pattern %q contains non-ACGTN byte %q", p.Body, p.Body[i])
			}
		}
	case RegexKind:
		if _, err := coregex.Compile(p.Body); err != nil {
			return fmt.Errorf("regex pattern %q does not compile: %w", p.Body, err)
		}
	default:
		return fmt.Errorf("unknown pattern kind %v", p.Kind)
	}
	return nil
}
