package nocgen

// Record class discriminants. Every record carries one; they are part of
// the boundary contract read and written by other toolchain stages.
const (
	ClassGeneric = "generic"
	ClassPort    = "port"
	ClassSignal  = "signal"
)

// Signal directions.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// TypeArray declares array boundaries as a two-element bound pair. Each
// bound is either a numeric literal or the name of a generic, so array
// sizes can be parameterized. The zero value means a simple data type.
type TypeArray [2]string

// IsZero reports whether no bounds are set.
func (ta TypeArray) IsZero() bool {
	return ta[0] == "" && ta[1] == ""
}

// Lo returns the lower bound.
func (ta TypeArray) Lo() string { return ta[0] }

// Hi returns the upper bound.
func (ta TypeArray) Hi() string { return ta[1] }

// Generic is a compile-time parameter of a hardware module: a VHDL
// generic or a Verilog parameter.
type Generic struct {
	Class        string
	Name         string
	Type         string
	TypeArray    TypeArray
	DefaultValue any
	CurrentValue any
	Description  string
}

// Port is a named group of signals forming one logical interface point
// of a module. NocPort is a non-owning index into the subject object's
// own port collection; -1 when the port is not linked to one.
type Port struct {
	Class       string
	Name        string
	Type        string
	NocPort     int
	SignalList  []*Signal
	Description string
}

// Signal is a directional wire, either grouped under a Port or kept in
// the module's external signal collection. RelatedGenerics holds
// non-owning references to the generics that size an array type.
type Signal struct {
	Class           string
	Name            string
	Type            string
	TypeArray       TypeArray
	Direction       string
	DefaultValue    any
	RelatedGenerics []*Generic
	Description     string
}

// NewGeneric returns a generic record with schema defaults.
func NewGeneric(name string) *Generic {
	return &Generic{Class: ClassGeneric, Name: name}
}

// NewPort returns a port record with schema defaults and an empty
// signal list.
func NewPort(name string) *Port {
	return &Port{
		Class:      ClassPort,
		Name:       name,
		NocPort:    -1,
		SignalList: make([]*Signal, 0),
	}
}

// NewSignal returns a signal record with schema defaults.
func NewSignal(name string) *Signal {
	return &Signal{
		Class:           ClassSignal,
		Name:            name,
		RelatedGenerics: make([]*Generic, 0),
	}
}

// SignalByName looks up a signal in the port's signal list.
func (p *Port) SignalByName(name string) (*Signal, bool) {
	for _, s := range p.SignalList {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// merge copies the fields present in from onto s. Zero-valued fields of
// from leave s untouched, so a partial signal description updates only
// what it names.
func (s *Signal) merge(from *Signal) {
	if from.Type != "" {
		s.Type = from.Type
	}
	if !from.TypeArray.IsZero() {
		s.TypeArray = from.TypeArray
	}
	if from.Direction != "" {
		s.Direction = from.Direction
	}
	if from.DefaultValue != nil {
		s.DefaultValue = from.DefaultValue
	}
	if len(from.RelatedGenerics) > 0 {
		s.RelatedGenerics = from.RelatedGenerics
	}
	if from.Description != "" {
		s.Description = from.Description
	}
}
