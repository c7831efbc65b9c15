// Package config loads named algorithm-flag-preset bundles from a YAML
// file: a convenience layer over the CLI flags spec §6 defines, letting a
// caller name a bundle of flags instead of repeating them on every
// invocation. The cmd/search driver does not read profiles; it has no
// `-profile` flag.
//
// Grounded on itohio-EasyRobot's x/marshaller/yaml package's use of
// gopkg.in/yaml.v3 for structured decoding, simplified from that
// package's generic tensor/graph marshalling down to a flat struct
// decode since a profile is just named scalar flag values.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is one named preset: the algorithm it targets and its flag
// values. This package only stores and looks up those values; nothing in
// it merges them with flags passed explicitly.
type Profile struct {
	Algorithm string         `yaml:"algorithm"`
	Flags     map[string]any `yaml:"flags"`
}

// File is the top-level shape of a profiles YAML document: a map of
// profile name to Profile.
type File struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Load decodes a profiles file from r.
func Load(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("config: decoding profiles: %w", err)
	}
	return f, nil
}

// LoadFile opens path and decodes it as a profiles file.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Profile looks up a named profile, reporting whether it exists.
func (f File) Profile(name string) (Profile, bool) {
	p, ok := f.Profiles[name]
	return p, ok
}

// StringFlag returns a flag value from the profile as a string, or def
// if absent or not string-shaped.
func (p Profile) StringFlag(name, def string) string {
	v, ok := p.Flags[name]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// FloatFlag returns a flag value from the profile as a float64, or def
// if absent or not numeric.
func (p Profile) FloatFlag(name string, def float64) float64 {
	v, ok := p.Flags[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return def
	}
}

// BoolFlag returns a flag value from the profile as a bool, or def if
// absent or not bool-shaped.
func (p Profile) BoolFlag(name string, def bool) bool {
	v, ok := p.Flags[name]
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}
