// Package modfile loads module interface descriptions from TOML files
// and builds nocgen code models from them. It is the file-based stand-in
// for a live NoC model: every field of the description maps onto the
// model through the Module's public add operations.
package modfile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nocforge/nocgen"
	"github.com/nocforge/nocgen/errors"
)

// File is the top-level TOML schema of a module description.
type File struct {
	Name           string         `toml:"name"`
	Kind           string         `toml:"kind"`
	DocHeader      string         `toml:"docheader"`
	Libraries      string         `toml:"libraries"`
	Implementation string         `toml:"implementation"`
	Generics       []GenericDesc  `toml:"generic"`
	Ports          []PortDesc     `toml:"port"`
	Externals      []ExternalDesc `toml:"external"`
}

// GenericDesc describes one generic.
type GenericDesc struct {
	Name        string   `toml:"name"`
	Type        string   `toml:"type"`
	Array       []string `toml:"array"`
	Default     any      `toml:"default"`
	Current     any      `toml:"current"`
	Description string   `toml:"description"`
}

// PortDesc describes one port and its signals.
type PortDesc struct {
	Name        string       `toml:"name"`
	Type        string       `toml:"type"`
	NocPort     *int         `toml:"nocport"`
	Description string       `toml:"description"`
	Signals     []SignalDesc `toml:"signal"`
}

// SignalDesc describes one signal inside a port.
type SignalDesc struct {
	Name        string   `toml:"name"`
	Type        string   `toml:"type"`
	Array       []string `toml:"array"`
	Direction   string   `toml:"direction"`
	Default     any      `toml:"default"`
	Description string   `toml:"description"`
}

// ExternalDesc describes one signal outside any port.
type ExternalDesc struct {
	Name        string   `toml:"name"`
	Type        string   `toml:"type"`
	Array       []string `toml:"array"`
	Direction   string   `toml:"direction"`
	Default     any      `toml:"default"`
	Description string   `toml:"description"`
}

// fileSubject stands in for the toolchain's hardware-model object when
// a module is described by file instead of by a live NoC model.
type fileSubject struct {
	kind nocgen.Kind
}

func (s fileSubject) ModuleKind() nocgen.Kind { return s.kind }

// Load reads a TOML module description and builds its code model.
func Load(path string) (*nocgen.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read module description %s", path)
	}
	return Parse(data)
}

// Parse decodes a TOML module description and builds its code model.
func Parse(data []byte) (*nocgen.Module, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to decode module description")
	}
	return Build(&f)
}

// Build turns a decoded description into a code model.
func Build(f *File) (*nocgen.Module, error) {
	if f.Name == "" {
		return nil, errors.Wrap(errors.ErrArgument, "module description needs a name")
	}
	kind := nocgen.KindFromString(f.Kind)
	if kind == nocgen.KindInvalid {
		return nil, errors.Wrapf(errors.ErrValue, "unknown module kind %q", f.Kind)
	}

	m, err := nocgen.NewModule(fileSubject{kind: kind},
		nocgen.WithModuleName(f.Name),
		nocgen.WithDocHeader(f.DocHeader),
		nocgen.WithLibraries(f.Libraries),
	)
	if err != nil {
		return nil, err
	}
	m.Implementation = f.Implementation

	for _, gd := range f.Generics {
		opts := []nocgen.GenericOption{nocgen.GenericType(gd.Type)}
		if ta, err := boundPair(gd.Array); err != nil {
			return nil, errors.Wrapf(err, "generic %q", gd.Name)
		} else if !ta.IsZero() {
			opts = append(opts, nocgen.GenericTypeArray(ta.Lo(), ta.Hi()))
		}
		if gd.Current != nil {
			opts = append(opts, nocgen.GenericCurrentValue(coerceValue(gd.Current)))
		}
		if _, err := m.AddGeneric(gd.Name, genericDefault(gd.Default), gd.Description, opts...); err != nil {
			return nil, errors.Wrapf(err, "generic %q", gd.Name)
		}
	}

	for _, pd := range f.Ports {
		opts := []nocgen.PortOption{nocgen.PortType(pd.Type)}
		if pd.NocPort != nil {
			opts = append(opts, nocgen.PortNocPort(*pd.NocPort))
		}
		if len(pd.Signals) == 0 {
			if _, err := m.AddPort(pd.Name, nil, pd.Description, opts...); err != nil {
				return nil, errors.Wrapf(err, "port %q", pd.Name)
			}
			continue
		}
		for _, sd := range pd.Signals {
			sig, err := buildSignal(sd)
			if err != nil {
				return nil, errors.Wrapf(err, "port %q", pd.Name)
			}
			if _, err := m.AddPort(pd.Name, sig, pd.Description, opts...); err != nil {
				return nil, errors.Wrapf(err, "port %q", pd.Name)
			}
		}
	}

	for _, ed := range f.Externals {
		opts := []nocgen.SignalOption{nocgen.SignalType(ed.Type)}
		if ta, err := boundPair(ed.Array); err != nil {
			return nil, errors.Wrapf(err, "external signal %q", ed.Name)
		} else if !ta.IsZero() {
			opts = append(opts, nocgen.SignalTypeArray(ta.Lo(), ta.Hi()))
		}
		if _, err := m.AddExternalSignal(ed.Name, ed.Direction, signalDefault(ed.Default), ed.Description, opts...); err != nil {
			return nil, errors.Wrapf(err, "external signal %q", ed.Name)
		}
	}

	return m, nil
}

func buildSignal(sd SignalDesc) (*nocgen.Signal, error) {
	sig := nocgen.NewSignal(sd.Name)
	sig.Type = sd.Type
	sig.Direction = sd.Direction
	sig.Description = sd.Description
	if sd.Default != nil {
		sig.DefaultValue = coerceValue(sd.Default)
	}
	ta, err := boundPair(sd.Array)
	if err != nil {
		return nil, errors.Wrapf(err, "signal %q", sd.Name)
	}
	sig.TypeArray = ta
	return sig, nil
}

// boundPair validates an array bound list from the file: absent, or
// exactly two entries.
func boundPair(bounds []string) (nocgen.TypeArray, error) {
	switch len(bounds) {
	case 0:
		return nocgen.TypeArray{}, nil
	case 2:
		return nocgen.TypeArray{bounds[0], bounds[1]}, nil
	default:
		return nocgen.TypeArray{}, errors.Wrapf(errors.ErrShape, "array bounds must be a 2-element pair, got %d", len(bounds))
	}
}

// coerceValue maps TOML decoding artifacts onto the model's value
// types: integers arrive as int64, and a {value, width} table denotes a
// bit-vector.
func coerceValue(v any) any {
	switch val := v.(type) {
	case int64:
		return int(val)
	case map[string]any:
		value, okValue := val["value"].(int64)
		width, okWidth := val["width"].(int64)
		if okValue && okWidth {
			return nocgen.NewBitVector(uint64(value), int(width))
		}
	}
	return v
}

// genericDefault fills the schema default for generics that declare no
// default value.
func genericDefault(v any) any {
	if v == nil {
		return ""
	}
	return coerceValue(v)
}

// signalDefault fills the schema default for signals that declare no
// default value. Signals take no string defaults, so the fallback is a
// low bit.
func signalDefault(v any) any {
	if v == nil {
		return false
	}
	return coerceValue(v)
}
