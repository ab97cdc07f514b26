package scanner

import (
	"regexp"

	"github.com/coregx/coregex"

	"github.com/VRYella/nonbscanner/registry"
)

// fastRegex wraps one compiled coregex.Regex per pattern body.
type fastRegex struct {
	patterns []compiledRegex
}

type compiledRegex struct {
	id int
	re *coregex.Regex
}

func newFastRegex(reg *registry.Registry) (Scanner, error) {
	compiled := make([]compiledRegex, 0, len(reg.Patterns))
	for _, p := range reg.Patterns {
		re, err := coregex.Compile(p.Body)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledRegex{id: p.ID, re: re})
	}
	return &fastRegex{patterns: compiled}, nil
}

func (s *fastRegex) Engine() string { return "fast" }

func (s *fastRegex) Scan(seq string) []Match {
	var out []Match
	for _, p := range s.patterns {
		for _, idx := range findAllStringIndex(p.re, seq) {
			out = append(out, Match{Start: idx[0], End: idx[1], PatternID: p.id})
		}
	}
	sortMatches(out)
	return out
}

// findAllStringIndex recovers stdlib regexp's FindAllStringIndex behavior
// on top of coregex.Regex, which only exposes a single-shot
// FindStringIndex (spec §4.1 fast engine is otherwise sufficient; this is
// the thin iteration wrapper the library doesn't provide itself).
func findAllStringIndex(re *coregex.Regex, s string) [][2]int {
	var out [][2]int
	pos := 0
	for pos <= len(s) {
		loc := re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := loc[0]+pos, loc[1]+pos
		out = append(out, [2]int{start, end})
		if end == start {
			pos = end + 1
		} else {
			pos = end
		}
	}
	return out
}

// fallbackRegex is the correct, stdlib-regexp counterpart.
type fallbackRegex struct {
	patterns []compiledStdlib
}

type compiledStdlib struct {
	id int
	re *regexp.Regexp
}

func newFallbackRegex(reg *registry.Registry) Scanner {
	compiled := make([]compiledStdlib, 0, len(reg.Patterns))
	for _, p := range reg.Patterns {
		re := regexp.MustCompile(p.Body)
		compiled = append(compiled, compiledStdlib{id: p.ID, re: re})
	}
	return &fallbackRegex{patterns: compiled}
}

func (s *fallbackRegex) Engine() string { return "fallback" }

func (s *fallbackRegex) Scan(seq string) []Match {
	var out []Match
	for _, p := range s.patterns {
		for _, loc := range p.re.FindAllStringIndex(seq, -1) {
			out = append(out, Match{Start: loc[0], End: loc[1], PatternID: p.id})
		}
	}
	sortMatches(out)
	return out
}
