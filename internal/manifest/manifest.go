// Package manifest reads package.json and extracts the fields pmx needs.
// Object-valued fields keep the order their keys appear in the file, which
// is what the selection prompts show to the user.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nodekit/pmx/internal/pm"
)

// ErrRead means the manifest file could not be read.
var ErrRead = errors.New("read manifest")

// ErrParse means the manifest file is not valid JSON.
var ErrParse = errors.New("parse manifest")

// Preview pairs a name with the command line that selecting it would run.
type Preview struct {
	Name    string
	Command string
}

// dependencyGroups are concatenated by Dependencies, in this order.
// Duplicates across groups are kept.
var dependencyGroups = []string{
	"dependencies",
	"devDependencies",
	"optionalDependencies",
	"peerDependencies",
}

// Manifest is a parsed package.json. It is a read-only snapshot: pmx never
// writes the file, mutation is the package manager's job.
type Manifest struct {
	raw map[string]json.RawMessage
}

// Load reads and parses the manifest at path. Callers load fresh before each
// query rather than holding on to a Manifest across operations.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	return &Manifest{raw: raw}, nil
}

// Field returns the value of a top-level manifest field. Object values come
// back as ordered (key, "<mgr> <key>") previews; any other JSON value is
// returned as decoded. ok reports whether the field exists at all.
func (m *Manifest) Field(name string, mgr pm.Manager) (value any, ok bool, err error) {
	rawv, ok := m.raw[name]
	if !ok {
		return nil, false, nil
	}
	if isObject(rawv) {
		entries, err := decodeOrdered(rawv)
		if err != nil {
			return nil, true, fmt.Errorf("%w: field %q: %v", ErrParse, name, err)
		}
		return previews(entries, mgr), true, nil
	}
	var v any
	if err := json.Unmarshal(rawv, &v); err != nil {
		return nil, true, fmt.Errorf("%w: field %q: %v", ErrParse, name, err)
	}
	return v, true, nil
}

// Scripts returns the entries of the scripts field as (name, preview) pairs.
// A missing scripts field yields an empty slice, not an error.
func (m *Manifest) Scripts(mgr pm.Manager) ([]Preview, error) {
	return m.objectField("scripts", mgr)
}

// Dependencies returns the concatenation of all dependency groups, in the
// fixed order dependencies, devDependencies, optionalDependencies,
// peerDependencies. A package listed in two groups appears twice.
func (m *Manifest) Dependencies(mgr pm.Manager) ([]Preview, error) {
	var out []Preview
	for _, group := range dependencyGroups {
		entries, err := m.objectField(group, mgr)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

func (m *Manifest) objectField(name string, mgr pm.Manager) ([]Preview, error) {
	rawv, ok := m.raw[name]
	if !ok {
		return nil, nil
	}
	if !isObject(rawv) {
		return nil, fmt.Errorf("%w: field %q is not an object", ErrParse, name)
	}
	entries, err := decodeOrdered(rawv)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrParse, name, err)
	}
	return previews(entries, mgr), nil
}

func previews(keys []string, mgr pm.Manager) []Preview {
	out := make([]Preview, len(keys))
	for i, k := range keys {
		out[i] = Preview{Name: k, Command: mgr.String() + " " + k}
	}
	return out
}

// decodeOrdered walks an object's tokens one by one so key order survives;
// unmarshalling into a map would lose it. Values are decoded only to advance
// the stream — pmx never needs them, the manager does.
func decodeOrdered(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, err
	}
	var out []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		out = append(out, key)
	}
	return out, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
