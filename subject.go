package nocgen

// Kind classifies the hardware-model object an interface model
// describes. The code model only accepts subjects of a known kind.
type Kind int

const (
	KindInvalid Kind = iota
	KindRouter
	KindIPCore
	KindChannel
	KindNoC
)

func (k Kind) String() string {
	switch k {
	case KindRouter:
		return "router"
	case KindIPCore:
		return "ipcore"
	case KindChannel:
		return "channel"
	case KindNoC:
		return "noc"
	default:
		return "invalid"
	}
}

// KindFromString maps the textual kind names used in module description
// files back to a Kind. Unknown names map to KindInvalid.
func KindFromString(s string) Kind {
	switch s {
	case "router":
		return KindRouter
	case "ipcore":
		return KindIPCore
	case "channel":
		return KindChannel
	case "noc":
		return KindNoC
	default:
		return KindInvalid
	}
}

// Subject is the hardware-model object this IR describes: a router, an
// IP core, a channel or a whole NoC. It is owned and lifecycle-managed
// by the toolchain; the model only keeps a reference.
type Subject interface {
	ModuleKind() Kind
}

// CodeModelProvider is the optional subject capability exposing the
// code model object that can produce an implementation body.
type CodeModelProvider interface {
	CodeModel() any
}

// ImplementationGenerator is the capability of a code model that can
// generate the implementation section of its module.
type ImplementationGenerator interface {
	GenerateImplementation() (string, error)
}
