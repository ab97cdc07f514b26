package scanner

import (
	"github.com/coregx/ahocorasick"

	"github.com/VRYella/nonbscanner/registry"
)

// fastLiteral wraps a coregx/ahocorasick automaton built over every 10-mer
// body in the registry, in insertion order so the automaton's pattern
// index lines up with our Pattern.ID (both 0-based, sorted by body).
type fastLiteral struct {
	auto *ahocorasick.Automaton
}

func newFastLiteral(reg *registry.Registry) (Scanner, error) {
	builder := ahocorasick.NewBuilder()
	for _, p := range reg.Patterns {
		builder.AddPattern([]byte(p.Body))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &fastLiteral{auto: auto}, nil
}

func (s *fastLiteral) Engine() string { return "fast" }

// Scan enumerates every overlapping occurrence of every 10-mer. Because
// each pattern has fixed width 10, re-querying the automaton from
// (previous match start + 1) after each hit is sufficient to recover every
// overlapping occurrence, not just the next non-overlapping one.
func (s *fastLiteral) Scan(seq string) []Match {
	haystack := []byte(seq)
	var out []Match
	pos := 0
	for pos <= len(haystack) {
		m := s.auto.Find(haystack, pos)
		if m == nil {
			break
		}
		out = append(out, Match{Start: m.Start, End: m.End, PatternID: m.Pattern})
		pos = m.Start + 1
	}
	sortMatches(out)
	return out
}

// fallbackLiteral is the correct, stdlib-only counterpart: a direct
// sliding-window substring comparison against a body->ids index.
type fallbackLiteral struct {
	width int
	byBody map[string][]int
}

func newFallbackLiteral(reg *registry.Registry) Scanner {
	width := 10
	idx := make(map[string][]int, len(reg.Patterns))
	for _, p := range reg.Patterns {
		width = len(p.Body)
		idx[p.Body] = append(idx[p.Body], p.ID)
	}
	return &fallbackLiteral{width: width, byBody: idx}
}

func (s *fallbackLiteral) Engine() string { return "fallback" }

func (s *fallbackLiteral) Scan(seq string) []Match {
	var out []Match
	if s.width == 0 || len(seq) < s.width {
		return out
	}
	for i := 0; i+s.width <= len(seq); i++ {
		ids, ok := s.byBody[seq[i:i+s.width]]
		if !ok {
			continue
		}
		for _, id := range ids {
			out = append(out, Match{Start: i, End: i + s.width, PatternID: id})
		}
	}
	sortMatches(out)
	return out
}
