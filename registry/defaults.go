package registry

import (
	"embed"
)

//go:embed testdata/defaults/*.json
var defaultsFS embed.FS

// literalClasses and regexClasses list every class in the closed taxonomy
// by its scanner kind (spec §4.1 table).
var (
	literalClasses = map[string]bool{
		"A-philic_DNA": true,
		"Z-DNA":        true,
	}
	regexClasses = []string{
		"Curved_DNA", "Slipped_DNA", "Cruciform", "R-Loop",
		"Triplex", "G-Quadruplex", "i-Motif",
	}
)

// Classes returns every registry-backed class name, literal classes first,
// then the regex classes in regexClasses order.
func Classes() []string {
	out := []string{"A-philic_DNA", "Z-DNA"}
	out = append(out, regexClasses...)
	return out
}

// KindOf reports the scanner Kind for a registry-backed class.
func KindOf(class string) Kind {
	if literalClasses[class] {
		return Literal10mer
	}
	return RegexKind
}

// Default returns the built-in representative registry for class, embedded
// via go:embed. This is a small illustrative subset, not the full
// generator-produced biological tables (spec §1, §9: those scalars are
// opaque on-disk configuration, out of scope for this engine's source).
// Production deployments should call LoadDir against a real registry
// directory instead.
func Default(class string) (*Registry, error) {
	data, err := defaultsFS.ReadFile("testdata/defaults/" + class + "_registry.json")
	if err != nil {
		return nil, &MissingError{Class: class, File: class + "_registry.json", Err: err}
	}
	return decodeJSON(class, KindOf(class), data)
}

// DefaultAll loads the built-in registry for every class in the taxonomy.
func DefaultAll() (map[string]*Registry, error) {
	out := make(map[string]*Registry, len(Classes()))
	for _, c := range Classes() {
		reg, err := Default(c)
		if err != nil {
			return nil, err
		}
		out[c] = reg
	}
	return out, nil
}
