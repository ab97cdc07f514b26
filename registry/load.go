package registry

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"
)

// LoadDir loads the registry for class from dir, following the three-file
// contract of spec §6.1: <CLASS>_registry.json is authoritative, and
// <CLASS>_registry.pkl (this engine's gob-encoded accelerator, in place of
// Python pickle — see SPEC_FULL.md) is used when its embedded content hash
// matches the JSON; a JSON-only directory is regenerated on first load and
// the miss is not an error.
func LoadDir(dir, class string, kind Kind) (*Registry, error) {
	jsonPath := filepath.Join(dir, class+"_registry.json")
	jsonBytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, &MissingError{Class: class, File: jsonPath, Err: err}
	}

	sum := sha256.Sum256(jsonBytes)
	pklPath := filepath.Join(dir, class+"_registry.pkl")
	if pklBytes, err := os.ReadFile(pklPath); err == nil {
		if reg, ok := decodeAccelerated(pklBytes, sum); ok {
			return reg, nil
		}
	}

	reg, err := decodeJSON(class, kind, jsonBytes)
	if err != nil {
		return nil, err
	}

	if encoded, err := encodeAccelerated(reg, sum); err == nil {
		_ = os.WriteFile(pklPath, encoded, 0o644)
	}
	return reg, nil
}

// accelEnvelope is the gob payload stored in the .pkl sibling file.
type accelEnvelope struct {
	Hash     [sha256.Size]byte
	Class    string
	Kind     Kind
	Patterns []Pattern
}

func decodeAccelerated(pklBytes []byte, wantHash [sha256.Size]byte) (*Registry, bool) {
	var env accelEnvelope
	if err := gob.NewDecoder(bytes.NewReader(pklBytes)).Decode(&env); err != nil {
		return nil, false
	}
	if env.Hash != wantHash {
		return nil, false
	}
	return &Registry{Class: env.Class, Kind: env.Kind, Patterns: env.Patterns}, true
}

func encodeAccelerated(reg *Registry, hash [sha256.Size]byte) ([]byte, error) {
	env := accelEnvelope{Hash: hash, Class: reg.Class, Kind: reg.Kind, Patterns: reg.Patterns}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeJSON(class string, kind Kind, data []byte) (*Registry, error) {
	var raw []jsonPattern
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MissingError{Class: class, File: class + "_registry.json", Err: err}
	}
	entries := make([]RawEntry, len(raw))
	for i, p := range raw {
		entries[i] = RawEntry{Body: p.Body, Subclass: p.Subclass, Scalar: p.Scalar, Method: p.Method}
	}
	return New(class, kind, entries)
}

// MarshalJSON renders a Registry back to the human-readable on-disk form,
// used by tests and by callers that regenerate a registry directory.
func (r *Registry) MarshalJSON() ([]byte, error) {
	raw := make([]jsonPattern, len(r.Patterns))
	for i, p := range r.Patterns {
		raw[i] = jsonPattern{ID: p.ID, Kind: p.Kind.String(), Body: p.Body, Subclass: p.Subclass, Scalar: p.Scalar, Method: p.Method}
	}
	return json.MarshalIndent(raw, "", "  ")
}
