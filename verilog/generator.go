// Package verilog renders nocgen code models as Verilog source text.
package verilog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nocforge/nocgen"
	"github.com/nocforge/nocgen/errors"
	"github.com/nocforge/nocgen/hdlutil"
)

// Tab is one indentation level.
const Tab = "    "

// reservedWords are Verilog reserved words that cannot be used as
// identifiers.
var reservedWords = map[string]bool{
	"always": true, "and": true, "assign": true, "automatic": true,
	"begin": true, "buf": true, "bufif0": true, "bufif1": true,
	"case": true, "casex": true, "casez": true, "cell": true,
	"cmos": true, "config": true, "deassign": true, "default": true,
	"defparam": true, "design": true, "disable": true, "edge": true,
	"else": true, "end": true, "endcase": true, "endconfig": true,
	"endfunction": true, "endgenerate": true, "endmodule": true,
	"endprimitive": true, "endspecify": true, "endtable": true,
	"endtask": true, "event": true, "for": true, "force": true,
	"forever": true, "fork": true, "function": true, "generate": true,
	"genvar": true, "highz0": true, "highz1": true, "if": true,
	"ifnone": true, "initial": true, "inout": true, "input": true,
	"integer": true, "join": true, "localparam": true, "module": true,
	"nand": true, "negedge": true, "nmos": true, "nor": true,
	"not": true, "notif0": true, "notif1": true, "or": true,
	"output": true, "parameter": true, "pmos": true, "posedge": true,
	"primitive": true, "pull0": true, "pull1": true, "pulldown": true,
	"pullup": true, "rcmos": true, "real": true, "realtime": true,
	"reg": true, "release": true, "repeat": true, "rnmos": true,
	"rpmos": true, "rtran": true, "rtranif0": true, "rtranif1": true,
	"scalared": true, "signed": true, "small": true, "specify": true,
	"specparam": true, "strong0": true, "strong1": true, "supply0": true,
	"supply1": true, "table": true, "task": true, "time": true,
	"tran": true, "tranif0": true, "tranif1": true, "tri": true,
	"tri0": true, "tri1": true, "triand": true, "trior": true,
	"trireg": true, "unsigned": true, "vectored": true, "wait": true,
	"wand": true, "weak0": true, "weak1": true, "while": true,
	"wire": true, "wor": true, "xnor": true, "xor": true,
}

// Generator renders one code model as Verilog.
type Generator struct {
	Model *nocgen.Module
}

var _ nocgen.Generator = (*Generator)(nil)

// NewGenerator builds a Verilog backend over the given model.
func NewGenerator(m *nocgen.Module) *Generator {
	return &Generator{Model: m}
}

// GenerateFile renders the complete Verilog source file: documentation
// header, library text, module declaration and the implementation body.
func (g *Generator) GenerateFile() (string, error) {
	name := g.ToValidStr(g.Model.ModuleName)

	var sb strings.Builder
	if g.Model.DocHeader != "" {
		sb.WriteString(g.MakeComment(g.Model.DocHeader))
		sb.WriteString("\n\n")
	}
	if g.Model.Libraries != "" {
		sb.WriteString(g.Model.Libraries)
		sb.WriteString("\n\n")
	}

	sb.WriteString("module " + name)

	if len(g.Model.Generics) > 0 {
		decls, err := g.GenerateGenericDeclarations(true)
		if err != nil {
			return "", err
		}
		sb.WriteString(" #(\n")
		sb.WriteString(joinClause(g.AddTabLines(decls, 1)))
		sb.WriteString(")")
	}

	portDecls, err := g.GeneratePortDeclarations(false)
	if err != nil {
		return "", err
	}
	portDecls = append(portDecls, g.externalPortDeclarations()...)
	if len(portDecls) > 0 {
		sb.WriteString(" (\n")
		sb.WriteString(joinClause(g.AddTabLines(portDecls, 1)))
		sb.WriteString(")")
	}
	sb.WriteString(";\n")

	if g.Model.Implementation != "" {
		sb.WriteString("\n")
		sb.WriteString(g.AddTab(g.Model.Implementation, 1))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\nendmodule // %s\n", name))
	return sb.String(), nil
}

// GenerateComponent renders an instantiation template: the Verilog
// counterpart of a component declaration.
func (g *Generator) GenerateComponent() (string, error) {
	name := g.ToValidStr(g.Model.ModuleName)

	var sb strings.Builder
	sb.WriteString(name)

	if len(g.Model.Generics) > 0 {
		params := make([]string, 0, len(g.Model.Generics))
		for _, gen := range g.Model.Generics {
			value := gen.CurrentValue
			if value == nil {
				value = gen.DefaultValue
			}
			params = append(params, fmt.Sprintf(".%s(%s)", g.ToValidStr(gen.Name), formatValue(value)))
		}
		sb.WriteString(" #(\n")
		sb.WriteString(joinClause(g.AddTabLines(params, 1)))
		sb.WriteString(")")
	}

	sb.WriteString(fmt.Sprintf(" u_%s (\n", name))
	conns := make([]string, 0)
	for _, p := range g.Model.Ports {
		for _, s := range p.SignalList {
			ident := g.ToValidStr(s.Name)
			conns = append(conns, fmt.Sprintf(".%s(%s)", ident, ident))
		}
	}
	for _, s := range g.Model.ExternalSignals {
		ident := g.ToValidStr(s.Name)
		conns = append(conns, fmt.Sprintf(".%s(%s)", ident, ident))
	}
	sb.WriteString(joinClause(g.AddTabLines(conns, 1)))
	sb.WriteString(");")
	return sb.String(), nil
}

// GenerateGenericDeclaration renders one parameter declaration,
// e.g. "parameter data_width = 32".
func (g *Generator) GenerateGenericDeclaration(name string, withDefault bool) (string, error) {
	gen, ok := g.Model.GenericByName(name)
	if !ok {
		return "", errors.Wrapf(errors.ErrArgument, "no generic named %q", name)
	}
	return g.parameterDecl(gen, withDefault), nil
}

// GenerateGenericDeclarations renders parameter declarations for all
// generics.
func (g *Generator) GenerateGenericDeclarations(withDefault bool) ([]string, error) {
	decls := make([]string, 0, len(g.Model.Generics))
	for _, gen := range g.Model.Generics {
		decls = append(decls, g.parameterDecl(gen, withDefault))
	}
	return decls, nil
}

// GeneratePortDeclaration renders one module port declaration per
// signal in the named port. Verilog ports take no default values, so
// withDefault is ignored here.
func (g *Generator) GeneratePortDeclaration(port string, withDefault bool) ([]string, error) {
	p, ok := g.Model.PortByName(port)
	if !ok {
		return nil, errors.Wrapf(errors.ErrArgument, "no port named %q", port)
	}
	decls := make([]string, 0, len(p.SignalList))
	for _, s := range p.SignalList {
		decls = append(decls, g.portSignalDecl(s))
	}
	return decls, nil
}

// GeneratePortDeclarations renders declarations for all signals in all
// ports.
func (g *Generator) GeneratePortDeclarations(withDefault bool) ([]string, error) {
	var decls []string
	for _, p := range g.Model.Ports {
		for _, s := range p.SignalList {
			decls = append(decls, g.portSignalDecl(s))
		}
	}
	return decls, nil
}

// GenerateSignalDeclaration renders the wire declaration of one signal
// from the named port, or from the external signals when port is empty.
func (g *Generator) GenerateSignalDeclaration(port, signal string, withDefault bool) (string, error) {
	s, err := g.lookupSignal(port, signal)
	if err != nil {
		return "", err
	}
	return g.wireDecl(s, withDefault), nil
}

// GenerateSignalDeclarations renders wire declarations for all signals
// of the named port, or all external signals when port is empty.
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
		decls = append(decls, g.wireDecl(s, withDefault))
	}
	return decls, nil
}

// MakeComment wraps text as Verilog comment lines.
func (g *Generator) MakeComment(s string) string {
	return hdlutil.Comment(s, "//")
}

// MakeCommentLines wraps each line as a Verilog comment.
func (g *Generator) MakeCommentLines(lines []string) []string {
	return hdlutil.CommentLines(lines, "//")
}

// AddTab applies indentation levels to every line of s.
func (g *Generator) AddTab(s string, level int) string {
	return hdlutil.Indent(s, level, Tab)
}

// AddTabLines applies indentation levels to each line.
func (g *Generator) AddTabLines(lines []string, level int) []string {
	return hdlutil.IndentLines(lines, level, Tab)
}

// ToValidStr sanitizes a name into a valid Verilog identifier.
func (g *Generator) ToValidStr(s string) string {
	return hdlutil.SanitizeIdent(s, reservedWords)
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

// externalPortDeclarations renders the external signal collection as
// module ports.
func (g *Generator) externalPortDeclarations() []string {
	decls := make([]string, 0, len(g.Model.ExternalSignals))
	for _, s := range g.Model.ExternalSignals {
		decls = append(decls, g.portSignalDecl(s))
	}
	return decls
}

func (g *Generator) parameterDecl(gen *nocgen.Generic, withDefault bool) string {
	decl := "parameter " + g.ToValidStr(gen.Name)
	if withDefault && gen.DefaultValue != nil {
		decl += " = " + formatValue(gen.DefaultValue)
	}
	return decl
}

func (g *Generator) portSignalDecl(s *nocgen.Signal) string {
	direction := "input"
	if s.Direction == nocgen.DirectionOut {
		direction = "output"
	}
	return fmt.Sprintf("%s%s %s", direction, rangeDecl(s.TypeArray), g.ToValidStr(s.Name))
}

func (g *Generator) wireDecl(s *nocgen.Signal, withDefault bool) string {
	decl := fmt.Sprintf("wire%s %s", rangeDecl(s.TypeArray), g.ToValidStr(s.Name))
	if withDefault && s.DefaultValue != nil {
		decl += " = " + formatValue(s.DefaultValue)
	}
	return decl
}

// rangeDecl renders array bounds as a Verilog range, bounds being
// numeric literals or parameter names left verbatim.
func rangeDecl(ta nocgen.TypeArray) string {
	if ta.IsZero() {
		return ""
	}
	return fmt.Sprintf(" [%s:%s]", ta.Hi(), ta.Lo())
}

// formatValue renders a value as a Verilog literal.
func formatValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "1'b1"
		}
		return "1'b0"
	case int:
		return strconv.Itoa(val)
	case nocgen.BitVector:
		return fmt.Sprintf("%d'b%s", val.Width, val.Bin())
	case string:
		return "\"" + val + "\""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// joinClause terminates every declaration but the last with a comma, as
// Verilog parameter and port lists require.
func joinClause(decls []string) string {
	if len(decls) == 0 {
		return ""
	}
	return strings.Join(decls, ",\n") + "\n"
}
