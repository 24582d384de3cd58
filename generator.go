package nocgen

import (
	"github.com/nocforge/nocgen/errors"
)

// Generator is the contract every language backend implements over a
// Module: VHDL, Verilog and so on. The model is backend-agnostic and
// supplies only data; backends render it as source text. Several
// backends may coexist over the same Module instances.
//
// Generation methods return strings; writing them to files is the
// caller's responsibility.
//
// Operations selecting a single record take its name; the companion
// plural operations cover the whole collection. An empty port selector
// on the signal operations addresses the external signal collection.
type Generator interface {
	// GenerateFile renders the entire source file implementing the module.
	GenerateFile() (string, error)

	// GenerateComponent renders the component or module declaration used
	// to instantiate the module elsewhere.
	GenerateComponent() (string, error)

	// GenerateGenericDeclaration renders the declaration of one generic.
	// withDefault adds the default value.
	GenerateGenericDeclaration(name string, withDefault bool) (string, error)

	// GenerateGenericDeclarations renders declarations for all generics.
	GenerateGenericDeclarations(withDefault bool) ([]string, error)

	// GeneratePortDeclaration renders one declaration per signal in the
	// named port.
	GeneratePortDeclaration(port string, withDefault bool) ([]string, error)

	// GeneratePortDeclarations renders declarations for all signals in
	// all ports.
	GeneratePortDeclarations(withDefault bool) ([]string, error)

	// GenerateSignalDeclaration renders the declaration of one signal
	// from the named port, or from the external signals when port is
	// empty.
	GenerateSignalDeclaration(port, signal string, withDefault bool) (string, error)

	// GenerateSignalDeclarations renders declarations for all signals of
	// the named port, or all external signals when port is empty.
	GenerateSignalDeclarations(port string, withDefault bool) ([]string, error)

	// MakeComment wraps text as a language comment.
	MakeComment(s string) string

	// MakeCommentLines wraps each line as a language comment.
	MakeCommentLines(lines []string) []string

	// AddTab applies level indentation levels to every line of s.
	AddTab(s string, level int) string

	// AddTabLines applies level indentation levels to each line.
	AddTabLines(lines []string, level int) []string

	// ToValidStr sanitizes a name into a valid identifier for the
	// target syntax.
	ToValidStr(s string) string
}

// UnimplementedGenerator is the refuse-by-default backend base. Every
// generation operation fails with ErrNotImplemented until a concrete
// backend overrides it; the pure text helpers pass input through
// unchanged. Backends embed it so partial implementations stay valid
// Generators.
type UnimplementedGenerator struct{}

var _ Generator = UnimplementedGenerator{}

func (UnimplementedGenerator) GenerateFile() (string, error) {
	return "", errors.Wrap(errors.ErrNotImplemented, "generate file: what language for code generation?")
}

func (UnimplementedGenerator) GenerateComponent() (string, error) {
	return "", errors.Wrap(errors.ErrNotImplemented, "generate component: what language for code generation?")
}

func (UnimplementedGenerator) GenerateGenericDeclaration(string, bool) (string, error) {
	return "", errors.Wrap(errors.ErrNotImplemented, "generate generic declaration: what language for code generation?")
}

func (UnimplementedGenerator) GenerateGenericDeclarations(bool) ([]string, error) {
	return nil, errors.Wrap(errors.ErrNotImplemented, "generate generic declarations: what language for code generation?")
}

func (UnimplementedGenerator) GeneratePortDeclaration(string, bool) ([]string, error) {
	return nil, errors.Wrap(errors.ErrNotImplemented, "generate port declaration: what language for code generation?")
}

func (UnimplementedGenerator) GeneratePortDeclarations(bool) ([]string, error) {
	return nil, errors.Wrap(errors.ErrNotImplemented, "generate port declarations: what language for code generation?")
}

func (UnimplementedGenerator) GenerateSignalDeclaration(string, string, bool) (string, error) {
	return "", errors.Wrap(errors.ErrNotImplemented, "generate signal declaration: what language for code generation?")
}

func (UnimplementedGenerator) GenerateSignalDeclarations(string, bool) ([]string, error) {
	return nil, errors.Wrap(errors.ErrNotImplemented, "generate signal declarations: what language for code generation?")
}

func (UnimplementedGenerator) MakeComment(s string) string { return s }

func (UnimplementedGenerator) MakeCommentLines(lines []string) []string { return lines }

func (UnimplementedGenerator) AddTab(s string, _ int) string { return s }

func (UnimplementedGenerator) AddTabLines(lines []string, _ int) []string { return lines }

func (UnimplementedGenerator) ToValidStr(s string) string { return s }
