package nocgen

import (
	"github.com/nocforge/nocgen/errors"
)

// Module is the code model of one hardware module. Although inspired by
// VHDL, it also holds for Verilog. A module has the following sections:
//
//	DocHeader      - file header and documentation about the module
//	Libraries      - declarations at the beginning (VHDL library clauses)
//	ModuleName     - module name (VHDL entity name)
//	generics       - parameters for the module
//	ports          - grouped inputs and outputs
//	externals      - directional signals not grouped under any port
//	Implementation - implementation body (plain VHDL or Verilog)
//
// The model supplies data and validation only; rendering any of it as
// source text is a backend's job (see Generator). Particular changes or
// adjustments to a model should be done through an Extension object.
type Module struct {
	subject Subject

	ModuleName string
	DocHeader  string
	Libraries  string

	Generics        []*Generic
	Ports           []*Port
	ExternalSignals []*Signal

	Implementation string

	// InterfaceHash caches the last computed structural fingerprint.
	// Mutations do not invalidate it; recompute after changing the model.
	InterfaceHash string

	// ExternalConversion marks modules whose implementation is produced
	// by an outside converter instead of the subject's code model.
	ExternalConversion bool
}

// ModuleOption configures a Module at construction.
type ModuleOption func(*Module)

// WithModuleName sets the module (entity) name.
func WithModuleName(name string) ModuleOption {
	return func(m *Module) { m.ModuleName = name }
}

// WithDocHeader sets the documentation header text.
func WithDocHeader(header string) ModuleOption {
	return func(m *Module) { m.DocHeader = header }
}

// WithLibraries sets the library-import text.
func WithLibraries(libraries string) ModuleOption {
	return func(m *Module) { m.Libraries = libraries }
}

// WithExternalConversion marks the module as externally converted.
func WithExternalConversion() ModuleOption {
	return func(m *Module) { m.ExternalConversion = true }
}

// NewModule builds an empty code model for the given subject. The
// subject reference is fixed here and immutable afterwards; subjects of
// unknown kind are rejected.
func NewModule(subject Subject, opts ...ModuleOption) (*Module, error) {
	if subject == nil {
		return nil, errors.Wrap(errors.ErrTypeMismatch, "subject must be a NoC module object, not nil")
	}
	switch subject.ModuleKind() {
	case KindRouter, KindIPCore, KindChannel, KindNoC:
	default:
		return nil, errors.Wrapf(errors.ErrTypeMismatch, "subject has unknown module kind %q", subject.ModuleKind())
	}

	m := &Module{
		subject:         subject,
		Generics:        make([]*Generic, 0),
		Ports:           make([]*Port, 0),
		ExternalSignals: make([]*Signal, 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Subject returns the hardware-model object this model describes.
func (m *Module) Subject() Subject {
	return m.subject
}

// GenericByName looks up a generic in the model.
func (m *Module) GenericByName(name string) (*Generic, bool) {
	for _, g := range m.Generics {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// PortByName looks up a port in the model.
func (m *Module) PortByName(name string) (*Port, bool) {
	for _, p := range m.Ports {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// ExternalSignalByName looks up an external signal in the model.
func (m *Module) ExternalSignalByName(name string) (*Signal, bool) {
	for _, s := range m.ExternalSignals {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// AddGeneric adds a generic to the model, or updates the one already
// registered under name. The default value and description are always
// overwritten; options apply caller overrides on top.
//
// value must be a boolean, integer, bit-vector or string.
//
// The returned reference points into the model, so a backend that can
// infer better type information may refine the record further.
func (m *Module) AddGeneric(name string, value any, description string, opts ...GenericOption) (*Generic, error) {
	if name == "" {
		return nil, errors.Wrap(errors.ErrArgument, "generic name must be a non-empty string")
	}
	if !validGenericValue(value) {
		return nil, errors.Wrapf(errors.ErrUnsupportedType, "unsupported generic value type %T", value)
	}

	g, ok := m.GenericByName(name)
	if !ok {
		g = NewGeneric(name)
		m.Generics = append(m.Generics, g)
	}
	g.DefaultValue = value
	g.Description = description
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// AddPort adds a port to the model, or updates the one already
// registered under name. A non-nil sig is merged into the port's signal
// list: an existing signal of the same name takes sig's non-zero fields,
// otherwise sig is appended as a new signal.
//
// An empty description leaves a previously set description unchanged;
// a non-empty one always overwrites.
func (m *Module) AddPort(name string, sig *Signal, description string, opts ...PortOption) (*Port, error) {
	if name == "" {
		return nil, errors.Wrap(errors.ErrArgument, "port name must be a non-empty string")
	}
	if sig != nil {
		if sig.Class != ClassSignal || sig.Name == "" {
			return nil, errors.Wrapf(errors.ErrShape, "signal description must be a named signal record, got class %q name %q", sig.Class, sig.Name)
		}
	}

	p, ok := m.PortByName(name)
	if !ok {
		p = NewPort(name)
		m.Ports = append(m.Ports, p)
	}

	if description != "" {
		p.Description = description
	}

	if sig != nil {
		if existing, ok := p.SignalByName(sig.Name); ok {
			existing.merge(sig)
		} else {
			p.SignalList = append(p.SignalList, sig)
		}
	}

	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// AddExternalSignal adds a signal outside any port, or updates the one
// already registered under name. Direction, default value and
// description are always overwritten.
//
// value may be a stateful signal collaborator (Initializer), in which
// case its initial scalar value is used. After coercion it must be a
// boolean, integer or bit-vector; unlike generics, external signals do
// not accept plain strings.
func (m *Module) AddExternalSignal(name, direction string, value any, description string, opts ...SignalOption) (*Signal, error) {
	if name == "" {
		return nil, errors.Wrap(errors.ErrArgument, "signal name must be a non-empty string")
	}
	if init, ok := value.(Initializer); ok {
		value = init.InitialValue()
	}
	if !validSignalValue(value) {
		return nil, errors.Wrapf(errors.ErrUnsupportedType, "unsupported signal value type %T", value)
	}
	if direction != DirectionIn && direction != DirectionOut {
		return nil, errors.Wrapf(errors.ErrValue, "direction must be %q or %q, got %q", DirectionIn, DirectionOut, direction)
	}

	s, ok := m.ExternalSignalByName(name)
	if !ok {
		s = NewSignal(name)
		m.ExternalSignals = append(m.ExternalSignals, s)
	}
	s.Direction = direction
	s.DefaultValue = value
	s.Description = description
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
