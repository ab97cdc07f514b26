// Package seq implements the immutable DNA sequence type shared by every
// detector: normalization, alphabet validation, and reverse-complement.
package seq

import (
	"fmt"
	"strings"

	"github.com/biogo/biogo/alphabet"
)

// ErrInvalidAlphabet is returned when a sequence contains a byte outside
// {A,C,G,T,N} (case-insensitive).
var ErrInvalidAlphabet = fmt.Errorf("seq: sequence contains a character outside {A,C,G,T,N}")

// Sequence is an immutable, upper-cased DNA string. All detectors operate
// on the forward strand only; reverse-complement matches (e.g. cruciform
// arms) are still reported in forward-strand coordinates.
type Sequence string

// New normalizes s to upper case and validates its alphabet. An empty
// sequence is valid and yields an empty Sequence (spec §7: EmptySequence is
// not an error).
func New(s string) (Sequence, error) {
	up := strings.ToUpper(s)
	for i := 0; i < len(up); i++ {
		if !isValidBase(up[i]) {
			return "", ErrInvalidAlphabet
		}
	}
	return Sequence(up), nil
}

// isValidBase reports whether b is one of A, C, G, T (checked against
// biogo's DNA alphabet, as used in biogo's pwmscan to validate/index
// bases) or the ambiguity code N, which spec §1 admits but biogo's
// strict four-letter DNA alphabet does not.
func isValidBase(b byte) bool {
	if b == 'N' {
		return true
	}
	return alphabet.DNA.IndexOf(alphabet.Letter(b)) >= 0
}

// Len returns the sequence length in bases.
func (s Sequence) Len() int { return len(s) }

// Slice returns the half-open interval [start, end) as a plain string.
func (s Sequence) Slice(start, end int) string { return string(s)[start:end] }

// String implements fmt.Stringer.
func (s Sequence) String() string { return string(s) }

// complementByte mirrors soniakeys-bio/dna8.go's DNA8Complement bit trick
// (complement is computed from the ASCII code directly rather than a
// lookup table), extended with an explicit N case that trick doesn't
// cover since it assumes strict ACTG input.
func complementByte(b byte) byte {
	if b == 'N' {
		return 'N'
	}
	return (^b&2>>1*17 | 4) ^ b
}

// ReverseComplement returns the reverse complement of s, preserving any N
// bases. Grounded on soniakeys-bio/dna8.go's DNA8.ReverseComplement:
// reverse the string, then complement every base in place.
func ReverseComplement(s string) string {
	b := []byte(s)
	rc := make([]byte, len(b))
	rcx := len(rc)
	for _, c := range b {
		rcx--
		rc[rcx] = complementByte(c)
	}
	return string(rc)
}

// GCFraction returns the fraction of G/C bases in s. Returns 0 for an empty
// string. Grounded on the ACTG bit-mask comparisons soniakeys-bio/dna8.go
// uses throughout (e.g. Cmp's si&6 < ti&6): &6 isolates bits 1-2 of the
// ASCII code, which is 2 for C and 6 for G (and also 6 for N, which is
// excluded explicitly).
func GCFraction(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		if m := s[i] & 6; (m == 2 || m == 6) && s[i] != 'N' {
			gc++
		}
	}
	return float64(gc) / float64(len(s))
}

// HasN reports whether the interval [start,end) of s contains an N base.
func HasN(s string, start, end int) bool {
	for i := start; i < end && i < len(s); i++ {
		if s[i] == 'N' {
			return true
		}
	}
	return false
}
