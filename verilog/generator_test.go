package verilog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocgen"
	"github.com/nocforge/nocgen/errors"
)

type routerSubject struct{}

func (routerSubject) ModuleKind() nocgen.Kind { return nocgen.KindRouter }

func newRouterModel(t *testing.T) *nocgen.Module {
	t.Helper()

	m, err := nocgen.NewModule(routerSubject{},
		nocgen.WithModuleName("router_4p"),
		nocgen.WithDocHeader("4-port mesh router"),
	)
	require.NoError(t, err)

	_, err = m.AddGeneric("DATA_WIDTH", 32, "flit width", nocgen.GenericType("integer"))
	require.NoError(t, err)

	data := nocgen.NewSignal("north_data_in")
	data.Type = "std_logic_vector"
	data.Direction = nocgen.DirectionIn
	data.TypeArray = nocgen.TypeArray{"0", "DATA_WIDTH-1"}
	_, err = m.AddPort("north", data, "north link", nocgen.PortType("noc_link"))
	require.NoError(t, err)

	out := nocgen.NewSignal("north_data_out")
	out.Direction = nocgen.DirectionOut
	out.TypeArray = nocgen.TypeArray{"0", "DATA_WIDTH-1"}
	_, err = m.AddPort("north", out, "")
	require.NoError(t, err)

	_, err = m.AddExternalSignal("clk", nocgen.DirectionIn, false, "clock")
	require.NoError(t, err)

	return m
}

func TestGenerateGenericDeclaration(t *testing.T) {
	g := NewGenerator(newRouterModel(t))

	decl, err := g.GenerateGenericDeclaration("DATA_WIDTH", true)
	require.NoError(t, err)
	assert.Equal(t, "parameter DATA_WIDTH = 32", decl)

	decl, err = g.GenerateGenericDeclaration("DATA_WIDTH", false)
	require.NoError(t, err)
	assert.Equal(t, "parameter DATA_WIDTH", decl)

	_, err = g.GenerateGenericDeclaration("MISSING", true)
	assert.True(t, errors.IsArgumentError(err))
}

func TestGeneratePortDeclaration(t *testing.T) {
	g := NewGenerator(newRouterModel(t))

	decls, err := g.GeneratePortDeclaration("north", false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"input [DATA_WIDTH-1:0] north_data_in",
		"output [DATA_WIDTH-1:0] north_data_out",
	}, decls)

	_, err = g.GeneratePortDeclaration("missing", false)
	assert.True(t, errors.IsArgumentError(err))
}

func TestGenerateSignalDeclaration(t *testing.T) {
	g := NewGenerator(newRouterModel(t))

	decl, err := g.GenerateSignalDeclaration("", "clk", false)
	require.NoError(t, err)
	assert.Equal(t, "wire clk", decl)

	decl, err = g.GenerateSignalDeclaration("", "clk", true)
	require.NoError(t, err)
	assert.Equal(t, "wire clk = 1'b0", decl)

	decl, err = g.GenerateSignalDeclaration("north", "north_data_in", false)
	require.NoError(t, err)
	assert.Equal(t, "wire [DATA_WIDTH-1:0] north_data_in", decl)
}

func TestGenerateFile(t *testing.T) {
	m := newRouterModel(t)
	m.Implementation = "// crossbar here"
	g := NewGenerator(m)

	file, err := g.GenerateFile()
	require.NoError(t, err)

	assert.Contains(t, file, "// 4-port mesh router")
	assert.Contains(t, file, "module router_4p #(")
	assert.Contains(t, file, "parameter DATA_WIDTH = 32")
	assert.Contains(t, file, "input [DATA_WIDTH-1:0] north_data_in,")
	assert.Contains(t, file, "input clk")
	assert.Contains(t, file, "// crossbar here")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(file), "endmodule // router_4p"))
}

func TestGenerateComponent(t *testing.T) {
	m := newRouterModel(t)
	g, _ := m.GenericByName("DATA_WIDTH")
	g.CurrentValue = 64

	component, err := NewGenerator(m).GenerateComponent()
	require.NoError(t, err)

	// Instantiation template with the current generic value and one
	// connection per signal.
	assert.True(t, strings.HasPrefix(component, "router_4p #("))
	assert.Contains(t, component, ".DATA_WIDTH(64)")
	assert.Contains(t, component, "u_router_4p (")
	assert.Contains(t, component, ".north_data_in(north_data_in),")
	assert.Contains(t, component, ".clk(clk)")
	assert.True(t, strings.HasSuffix(component, ");"))
}

func TestTextHelpers(t *testing.T) {
	g := NewGenerator(newRouterModel(t))

	assert.Equal(t, "// note", g.MakeComment("note"))
	assert.Equal(t, []string{"// a", "// b"}, g.MakeCommentLines([]string{"a", "b"}))
	assert.Equal(t, Tab+"x", g.AddTab("x", 1))
	assert.Equal(t, "module_n", g.ToValidStr("module"))
	assert.Equal(t, "north_data_0", g.ToValidStr("north.data[0]"))
}

func TestValueFormatting(t *testing.T) {
	assert.Equal(t, "1'b1", formatValue(true))
	assert.Equal(t, "1'b0", formatValue(false))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "4'b0101", formatValue(nocgen.NewBitVector(5, 4)))
	assert.Equal(t, `"xy"`, formatValue("xy"))
}
