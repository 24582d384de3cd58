package nocgen

// Record field overrides. The add operations accept these instead of
// open-ended keyword arguments, so every supported override is named
// here and unknown fields cannot be injected.

// GenericOption overrides a field of a generic record.
type GenericOption func(*Generic)

// GenericType sets the declared data type.
func GenericType(t string) GenericOption {
	return func(g *Generic) { g.Type = t }
}

// GenericTypeArray sets the array bound pair.
func GenericTypeArray(lo, hi string) GenericOption {
	return func(g *Generic) { g.TypeArray = TypeArray{lo, hi} }
}

// GenericCurrentValue sets the instantiation value.
func GenericCurrentValue(v any) GenericOption {
	return func(g *Generic) { g.CurrentValue = v }
}

// PortOption overrides a field of a port record.
type PortOption func(*Port)

// PortType sets the port type.
func PortType(t string) PortOption {
	return func(p *Port) { p.Type = t }
}

// PortNocPort links the port to an index in the subject's own port
// collection.
func PortNocPort(index int) PortOption {
	return func(p *Port) { p.NocPort = index }
}

// SignalOption overrides a field of a signal record.
type SignalOption func(*Signal)

// SignalType sets the declared data type.
func SignalType(t string) SignalOption {
	return func(s *Signal) { s.Type = t }
}

// SignalTypeArray sets the array bound pair.
func SignalTypeArray(lo, hi string) SignalOption {
	return func(s *Signal) { s.TypeArray = TypeArray{lo, hi} }
}

// SignalDirection sets the direction. Intended for signal descriptions
// passed to AddPort; AddExternalSignal takes the direction directly.
func SignalDirection(d string) SignalOption {
	return func(s *Signal) { s.Direction = d }
}

// SignalDefaultValue sets the default value.
func SignalDefaultValue(v any) SignalOption {
	return func(s *Signal) { s.DefaultValue = v }
}

// SignalRelatedGenerics records the generics that size an array type.
func SignalRelatedGenerics(generics ...*Generic) SignalOption {
	return func(s *Signal) { s.RelatedGenerics = generics }
}

// SignalDescription sets the description text.
func SignalDescription(d string) SignalOption {
	return func(s *Signal) { s.Description = d }
}
