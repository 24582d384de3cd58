// Package vhdl renders nocgen code models as VHDL source text.
package vhdl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nocforge/nocgen"
	"github.com/nocforge/nocgen/errors"
	"github.com/nocforge/nocgen/hdlutil"
)

// DefaultLibraries is emitted when a model declares no library clause
// of its own.
const DefaultLibraries = "library ieee;\nuse ieee.std_logic_1164.all;\nuse ieee.numeric_std.all;"

// Tab is one indentation level.
const Tab = "    "

// reservedWords are VHDL reserved words that cannot be used as
// identifiers. Sanitization appends a suffix when a name collides.
var reservedWords = map[string]bool{
	"abs": true, "access": true, "after": true, "alias": true, "all": true,
	"and": true, "architecture": true, "array": true, "assert": true,
	"attribute": true, "begin": true, "block": true, "body": true,
	"buffer": true, "bus": true, "case": true, "component": true,
	"configuration": true, "constant": true, "disconnect": true,
	"downto": true, "else": true, "elsif": true, "end": true,
	"entity": true, "exit": true, "file": true, "for": true,
	"function": true, "generate": true, "generic": true, "group": true,
	"guarded": true, "if": true, "impure": true, "in": true,
	"inertial": true, "inout": true, "is": true, "label": true,
	"library": true, "linkage": true, "literal": true, "loop": true,
	"map": true, "mod": true, "nand": true, "new": true, "next": true,
	"nor": true, "not": true, "null": true, "of": true, "on": true,
	"open": true, "or": true, "others": true, "out": true,
	"package": true, "port": true, "postponed": true, "procedure": true,
	"process": true, "pure": true, "range": true, "record": true,
	"register": true, "reject": true, "rem": true, "report": true,
	"return": true, "rol": true, "ror": true, "select": true,
	"severity": true, "signal": true, "shared": true, "sla": true,
	"sll": true, "sra": true, "srl": true, "subtype": true, "then": true,
	"to": true, "transport": true, "type": true, "unaffected": true,
	"units": true, "until": true, "use": true, "variable": true,
	"wait": true, "when": true, "while": true, "with": true,
	"xnor": true, "xor": true,
}

// Generator renders one code model as VHDL.
type Generator struct {
	Model *nocgen.Module
}

var _ nocgen.Generator = (*Generator)(nil)

// NewGenerator builds a VHDL backend over the given model.
func NewGenerator(m *nocgen.Module) *Generator {
	return &Generator{Model: m}
}

// GenerateFile renders the complete VHDL source file: documentation
// header, library clauses, entity declaration and an architecture
// wrapping the implementation body.
func (g *Generator) GenerateFile() (string, error) {
	name := g.ToValidStr(g.Model.ModuleName)

	var sb strings.Builder
	if g.Model.DocHeader != "" {
		sb.WriteString(g.MakeComment(g.Model.DocHeader))
		sb.WriteString("\n\n")
	}

	libraries := g.Model.Libraries
	if libraries == "" {
		libraries = DefaultLibraries
	}
	sb.WriteString(libraries)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("entity %s is\n", name))
	if err := g.writeInterfaceClauses(&sb); err != nil {
		return "", err
	}
	sb.WriteString(fmt.Sprintf("end entity %s;\n\n", name))

	sb.WriteString(fmt.Sprintf("architecture noc_rtl of %s is\nbegin\n", name))
	if g.Model.Implementation != "" {
		sb.WriteString(g.AddTab(g.Model.Implementation, 1))
		sb.WriteString("\n")
	}
	sb.WriteString("end architecture noc_rtl;\n")

	return sb.String(), nil
}

// GenerateComponent renders the component declaration used to
// instantiate the module from another architecture.
func (g *Generator) GenerateComponent() (string, error) {
	name := g.ToValidStr(g.Model.ModuleName)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("component %s is\n", name))
	if err := g.writeInterfaceClauses(&sb); err != nil {
		return "", err
	}
	sb.WriteString(fmt.Sprintf("end component %s;", name))
	return sb.String(), nil
}

// writeInterfaceClauses emits the generic and port clauses shared by
// entity and component declarations.
func (g *Generator) writeInterfaceClauses(sb *strings.Builder) error {
	if len(g.Model.Generics) > 0 {
		decls, err := g.GenerateGenericDeclarations(true)
		if err != nil {
			return err
		}
		sb.WriteString(Tab + "generic (\n")
		sb.WriteString(joinClause(g.AddTabLines(decls, 2)))
		sb.WriteString(Tab + ");\n")
	}

	portDecls, err := g.GeneratePortDeclarations(false)
	if err != nil {
		return err
	}
	extDecls := g.externalPortDeclarations()
	portDecls = append(portDecls, extDecls...)

	if len(portDecls) > 0 {
		sb.WriteString(Tab + "port (\n")
		sb.WriteString(joinClause(g.AddTabLines(portDecls, 2)))
		sb.WriteString(Tab + ");\n")
	}
	return nil
}

// GenerateGenericDeclaration renders the declaration of one generic,
// e.g. "data_width : integer := 32".
func (g *Generator) GenerateGenericDeclaration(name string, withDefault bool) (string, error) {
	gen, ok := g.Model.GenericByName(name)
	if !ok {
		return "", errors.Wrapf(errors.ErrArgument, "no generic named %q", name)
	}
	return g.genericDecl(gen, withDefault), nil
}

// GenerateGenericDeclarations renders declarations for all generics.
func (g *Generator) GenerateGenericDeclarations(withDefault bool) ([]string, error) {
	decls := make([]string, 0, len(g.Model.Generics))
	for _, gen := range g.Model.Generics {
		decls = append(decls, g.genericDecl(gen, withDefault))
	}
	return decls, nil
}

// GeneratePortDeclaration renders one entity port declaration per
// signal in the named port.
func (g *Generator) GeneratePortDeclaration(port string, withDefault bool) ([]string, error) {
	p, ok := g.Model.PortByName(port)
	if !ok {
		return nil, errors.Wrapf(errors.ErrArgument, "no port named %q", port)
	}
	decls := make([]string, 0, len(p.SignalList))
	for _, s := range p.SignalList {
		decls = append(decls, g.portSignalDecl(s, withDefault))
	}
	return decls, nil
}

// GeneratePortDeclarations renders declarations for all signals in all
// ports.
func (g *Generator) GeneratePortDeclarations(withDefault bool) ([]string, error) {
	var decls []string
	for _, p := range g.Model.Ports {
		for _, s := range p.SignalList {
			decls = append(decls, g.portSignalDecl(s, withDefault))
		}
	}
	return decls, nil
}

// GenerateSignalDeclaration renders the architecture-level declaration
// of one signal from the named port, or from the external signals when
// port is empty.
func (g *Generator) GenerateSignalDeclaration(port, signal string, withDefault bool) (string, error) {
	s, err := g.lookupSignal(port, signal)
	if err != nil {
		return "", err
	}
	return g.signalDecl(s, withDefault), nil
}

// GenerateSignalDeclarations renders architecture-level declarations
// for all signals of the named port, or all external signals when port
// is empty.
func (g *Generator) GenerateSignalDeclarations(port string, withDefault bool) ([]string, error) {
	list := g.Model.ExternalSignals
	if port != "" {
		p, ok := g.Model.PortByName(port)
		if !ok {
			return nil, errors.Wrapf(errors.ErrArgument, "no port named %q", port)
		}
		list = p.SignalList
	}
	decls := make([]string, 0, len(list))
	for _, s := range list {
		decls = append(decls, g.signalDecl(s, withDefault))
	}
	return decls, nil
}

// MakeComment wraps text as VHDL comment lines.
func (g *Generator) MakeComment(s string) string {
	return hdlutil.Comment(s, "--")
}

// MakeCommentLines wraps each line as a VHDL comment.
func (g *Generator) MakeCommentLines(lines []string) []string {
	return hdlutil.CommentLines(lines, "--")
}

// AddTab applies indentation levels to every line of s.
func (g *Generator) AddTab(s string, level int) string {
	return hdlutil.Indent(s, level, Tab)
}

// AddTabLines applies indentation levels to each line.
func (g *Generator) AddTabLines(lines []string, level int) []string {
	return hdlutil.IndentLines(lines, level, Tab)
}

// ToValidStr sanitizes a name into a valid VHDL identifier.
func (g *Generator) ToValidStr(s string) string {
	return hdlutil.SanitizeIdent(s, reservedWords)
}

// externalPortDeclarations renders the external signal collection as
// entity ports.
func (g *Generator) externalPortDeclarations() []string {
	decls := make([]string, 0, len(g.Model.ExternalSignals))
	for _, s := range g.Model.ExternalSignals {
		decls = append(decls, g.portSignalDecl(s, false))
	}
	return decls
}

func (g *Generator) lookupSignal(port, signal string) (*nocgen.Signal, error) {
	if port == "" {
		s, ok := g.Model.ExternalSignalByName(signal)
		if !ok {
			return nil, errors.Wrapf(errors.ErrArgument, "no external signal named %q", signal)
		}
		return s, nil
	}
	p, ok := g.Model.PortByName(port)
	if !ok {
		return nil, errors.Wrapf(errors.ErrArgument, "no port named %q", port)
	}
	s, ok := p.SignalByName(signal)
	if !ok {
		return nil, errors.Wrapf(errors.ErrArgument, "no signal named %q in port %q", signal, port)
	}
	return s, nil
}

func (g *Generator) genericDecl(gen *nocgen.Generic, withDefault bool) string {
	decl := fmt.Sprintf("%s : %s", g.ToValidStr(gen.Name), g.typeDecl(gen.Type, gen.TypeArray))
	if withDefault && gen.DefaultValue != nil {
		decl += " := " + formatGenericValue(gen.DefaultValue)
	}
	return decl
}

func (g *Generator) portSignalDecl(s *nocgen.Signal, withDefault bool) string {
	decl := fmt.Sprintf("%s : %s %s", g.ToValidStr(s.Name), s.Direction, g.typeDecl(s.Type, s.TypeArray))
	if withDefault && s.DefaultValue != nil {
		decl += " := " + formatSignalValue(s.DefaultValue)
	}
	return decl
}

func (g *Generator) signalDecl(s *nocgen.Signal, withDefault bool) string {
	decl := fmt.Sprintf("signal %s : %s", g.ToValidStr(s.Name), g.typeDecl(s.Type, s.TypeArray))
	if withDefault && s.DefaultValue != nil {
		decl += " := " + formatSignalValue(s.DefaultValue)
	}
	return decl
}

// typeDecl renders a data type with its optional array bounds, bounds
// being numeric literals or generic names left verbatim.
func (g *Generator) typeDecl(typ string, ta nocgen.TypeArray) string {
	if ta.IsZero() {
		return typ
	}
	return fmt.Sprintf("%s(%s downto %s)", typ, ta.Hi(), ta.Lo())
}

// formatGenericValue renders a generic default as a VHDL literal.
func formatGenericValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case nocgen.BitVector:
		return "\"" + val.Bin() + "\""
	case string:
		return "\"" + val + "\""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatSignalValue renders a signal default as a VHDL literal.
// Booleans map to std_logic bit literals.
func formatSignalValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "'1'"
		}
		return "'0'"
	case int:
		return strconv.Itoa(val)
	case nocgen.BitVector:
		return "\"" + val.Bin() + "\""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// joinClause terminates every declaration but the last with a
// semicolon, as VHDL interface lists require.
func joinClause(decls []string) string {
	if len(decls) == 0 {
		return ""
	}
	return strings.Join(decls, ";\n") + "\n"
}
