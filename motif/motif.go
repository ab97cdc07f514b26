// Package motif defines the result types shared across every detector,
// resolver, and synthesizer stage: the candidate/motif record and the
// closed taxonomy of non-B DNA classes.
package motif

import "fmt"

// Class is the discriminant of the Motif tagged-variant (spec §9: "Variant
// result records... class as the discriminant").
type Class string

const (
	CurvedDNA   Class = "Curved_DNA"
	SlippedDNA  Class = "Slipped_DNA"
	Cruciform   Class = "Cruciform"
	RLoop       Class = "R-Loop"
	Triplex     Class = "Triplex"
	GQuadruplex Class = "G-Quadruplex"
	IMotif      Class = "i-Motif"
	ZDNA        Class = "Z-DNA"
	APhilicDNA  Class = "A-philic_DNA"
	Hybrid      Class = "Hybrid"
	Cluster     Class = "Non-B_DNA_Clusters"
)

// subclassOrdinal is the fixed per-class subclass numbering used in the
// motif id surface format (spec §6.3, e.g. "G-Quadruplex_6.2_1-21"). The
// ordinal is per (class, subclass) pair, assigned by first-seen order
// within a class in this closed taxonomy.
var subclassOrdinal = map[Class]map[string]string{
	GQuadruplex: {
		"Canonical G4":     "1.1",
		"Relaxed G4":       "1.2",
		"Bulged G4":        "1.3",
		"Long-loop G4":     "1.4",
		"Multimeric G4":    "1.5",
		"Imperfect G4":     "1.6",
		"G-Triplex":        "1.7",
	},
	IMotif: {
		"Canonical i-Motif": "2.1",
		"Relaxed i-Motif":   "2.2",
		"AC-motif":          "2.3",
	},
	ZDNA: {
		"Z-DNA": "3.1",
		"eGZ":   "3.2",
	},
	APhilicDNA: {
		"A-philic_DNA": "4.1",
	},
	CurvedDNA: {
		"Global curvature": "5.1",
		"Local Curvature":  "5.2",
	},
	Cruciform: {
		"Cruciform": "6.1",
	},
	RLoop: {
		"RLFS model 1": "7.1",
		"RLFS model 2": "7.2",
	},
	Triplex: {
		"Homopurine/Homopyrimidine": "8.1",
		"Mirror Repeat":             "8.2",
	},
	SlippedDNA: {
		"STR":           "9.1",
		"Direct Repeat":  "9.2",
	},
	Hybrid: {
		"Overlap": "10.1",
	},
	Cluster: {
		"Mixed_Cluster": "11.1",
	},
}

// Candidate is a raw detector output before cross-class resolution.
// It carries the same fields as Motif minus the derived Length, Strand
// and ID (Length is available as a method).
type Candidate struct {
	Class    Class
	Subclass string
	Start    int // inclusive, 0-based
	End      int // exclusive
	Score    float64
	Method   string
	Sequence string
}

func (c Candidate) Length() int { return c.End - c.Start }

// Overlaps reports strict interval overlap: a.start < b.end && b.start < a.end.
func (c Candidate) Overlaps(o Candidate) bool {
	return c.Start < o.End && o.Start < c.End
}

// Motif is a finished, scored, positioned non-B DNA motif occurrence.
type Motif struct {
	Class    Class
	Subclass string
	Start    int // inclusive, 0-based (half-open internal convention)
	End      int // exclusive
	Length   int
	Score    float64
	Method   string
	Sequence string
	Strand   byte // always '+'
	ID       string
}

// FromCandidate finalizes a Candidate into a Motif, assigning the derived
// Strand and ID fields. The ordinal used in ID is resolved by subclass
// name against the fixed taxonomy; an unrecognized subclass falls back to
// "0.0" rather than panicking, since synthetic subclasses (Hybrid overlap
// descriptions, cluster counts) are generated text, not taxonomy entries.
func FromCandidate(c Candidate) Motif {
	m := Motif{
		Class:    c.Class,
		Subclass: c.Subclass,
		Start:    c.Start,
		End:      c.End,
		Length:   c.End - c.Start,
		Score:    c.Score,
		Method:   c.Method,
		Sequence: c.Sequence,
		Strand:   '+',
	}
	m.ID = fmt.Sprintf("%s_%s_%d-%d", m.Class, ordinalFor(m.Class, m.Subclass), m.Start+1, m.End)
	return m
}

func ordinalFor(class Class, subclass string) string {
	if bySub, ok := subclassOrdinal[class]; ok {
		if ord, ok := bySub[subclass]; ok {
			return ord
		}
	}
	return "0.0"
}
