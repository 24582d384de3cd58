package nocgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nocforge/nocgen/errors"
)

// testSubject is a minimal hardware-model object for tests.
type testSubject struct {
	kind Kind
}

func (s testSubject) ModuleKind() Kind { return s.kind }

func newTestModule(t *testing.T) *Module {
	t.Helper()
	m, err := NewModule(testSubject{kind: KindRouter}, WithModuleName("router_4p"))
	require.NoError(t, err)
	return m
}

func TestNewModule(t *testing.T) {
	m, err := NewModule(testSubject{kind: KindIPCore},
		WithModuleName("dma_core"),
		WithDocHeader("DMA engine"),
		WithLibraries("library ieee;"),
	)
	require.NoError(t, err)

	assert.Equal(t, "dma_core", m.ModuleName)
	assert.Equal(t, "DMA engine", m.DocHeader)
	assert.Equal(t, "library ieee;", m.Libraries)
	assert.Equal(t, KindIPCore, m.Subject().ModuleKind())
	assert.Empty(t, m.Generics)
	assert.Empty(t, m.Ports)
	assert.Empty(t, m.ExternalSignals)
	assert.False(t, m.ExternalConversion)
}

func TestNewModuleExternalConversion(t *testing.T) {
	m, err := NewModule(testSubject{kind: KindChannel}, WithExternalConversion())
	require.NoError(t, err)
	assert.True(t, m.ExternalConversion)
}

func TestNewModuleRejectsNilSubject(t *testing.T) {
	m, err := NewModule(nil)
	assert.Nil(t, m)
	assert.True(t, errors.IsTypeMismatchError(err))
}

func TestNewModuleRejectsUnknownKind(t *testing.T) {
	m, err := NewModule(testSubject{kind: KindInvalid})
	assert.Nil(t, m)
	assert.True(t, errors.IsTypeMismatchError(err))
}

func TestAddGeneric(t *testing.T) {
	m := newTestModule(t)

	g, err := m.AddGeneric("DATA_WIDTH", 32, "flit width", GenericType("integer"))
	require.NoError(t, err)

	assert.Equal(t, ClassGeneric, g.Class)
	assert.Equal(t, "DATA_WIDTH", g.Name)
	assert.Equal(t, "integer", g.Type)
	assert.Equal(t, 32, g.DefaultValue)
	assert.Equal(t, "flit width", g.Description)

	got, ok := m.GenericByName("DATA_WIDTH")
	require.True(t, ok)
	assert.Same(t, g, got)
}

func TestAddGenericAcceptedValueTypes(t *testing.T) {
	m := newTestModule(t)

	tests := []struct {
		name  string
		value any
	}{
		{"bool", true},
		{"int", 7},
		{"bitvector", NewBitVector(5, 4)},
		{"string", "round_robin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := m.AddGeneric("G_"+tt.name, tt.value, "")
			require.NoError(t, err)
			assert.Equal(t, tt.value, g.DefaultValue)
		})
	}
}

func TestAddGenericRejectsBadInput(t *testing.T) {
	m := newTestModule(t)

	_, err := m.AddGeneric("", 1, "")
	assert.True(t, errors.IsArgumentError(err))

	_, err = m.AddGeneric("G", 1.5, "")
	assert.True(t, errors.IsUnsupportedTypeError(err))

	_, err = m.AddGeneric("G", nil, "")
	assert.True(t, errors.IsUnsupportedTypeError(err))

	assert.Empty(t, m.Generics)
}

func TestAddGenericMergesInPlace(t *testing.T) {
	m := newTestModule(t)

	first, err := m.AddGeneric("ADDR_WIDTH", 8, "old", GenericType("integer"))
	require.NoError(t, err)

	second, err := m.AddGeneric("ADDR_WIDTH", 16, "new", GenericCurrentValue(12))
	require.NoError(t, err)

	// Updated in place, not duplicated.
	assert.Same(t, first, second)
	assert.Len(t, m.Generics, 1)
	assert.Equal(t, 16, second.DefaultValue)
	assert.Equal(t, "new", second.Description)
	assert.Equal(t, 12, second.CurrentValue)
	// Type set by the first call survives the merge.
	assert.Equal(t, "integer", second.Type)
}

func TestAddPort(t *testing.T) {
	m := newTestModule(t)

	sig := NewSignal("data_in")
	sig.Type = "std_logic_vector"
	sig.Direction = DirectionIn

	p, err := m.AddPort("north", sig, "north link", PortType("noc_link"), PortNocPort(0))
	require.NoError(t, err)

	assert.Equal(t, ClassPort, p.Class)
	assert.Equal(t, "north", p.Name)
	assert.Equal(t, "noc_link", p.Type)
	assert.Equal(t, 0, p.NocPort)
	assert.Equal(t, "north link", p.Description)
	require.Len(t, p.SignalList, 1)
	assert.Same(t, sig, p.SignalList[0])
}

func TestAddPortRejectsBadInput(t *testing.T) {
	m := newTestModule(t)

	_, err := m.AddPort("", nil, "")
	assert.True(t, errors.IsArgumentError(err))

	// A record without the signal class tag is not a signal description.
	notSignal := &Signal{Class: ClassPort, Name: "x"}
	_, err = m.AddPort("p", notSignal, "")
	assert.True(t, errors.IsShapeError(err))

	// A signal description without a name is rejected too.
	unnamed := &Signal{Class: ClassSignal}
	_, err = m.AddPort("p", unnamed, "")
	assert.True(t, errors.IsShapeError(err))

	assert.Empty(t, m.Ports)
}

func TestAddPortDescriptionSemantics(t *testing.T) {
	m := newTestModule(t)

	_, err := m.AddPort("south", nil, "south link")
	require.NoError(t, err)

	// Empty description leaves the previous one unchanged.
	p, err := m.AddPort("south", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "south link", p.Description)

	// Non-empty description always overwrites.
	p, err = m.AddPort("south", nil, "updated")
	require.NoError(t, err)
	assert.Equal(t, "updated", p.Description)
}

func TestAddPortMergesSignalByName(t *testing.T) {
	m := newTestModule(t)

	first := NewSignal("req")
	first.Type = "std_logic"
	first.Direction = DirectionIn
	_, err := m.AddPort("ctrl", first, "")
	require.NoError(t, err)

	second := NewSignal("req")
	second.Type = "std_ulogic"
	p, err := m.AddPort("ctrl", second, "")
	require.NoError(t, err)

	// Exactly one signal entry; the second call's type wins, fields the
	// second description left out survive.
	require.Len(t, p.SignalList, 1)
	assert.Same(t, first, p.SignalList[0])
	assert.Equal(t, "std_ulogic", first.Type)
	assert.Equal(t, DirectionIn, first.Direction)
}

func TestAddPortAppendsDistinctSignals(t *testing.T) {
	m := newTestModule(t)

	req := NewSignal("req")
	ack := NewSignal("ack")
	_, err := m.AddPort("ctrl", req, "")
	require.NoError(t, err)
	p, err := m.AddPort("ctrl", ack, "")
	require.NoError(t, err)

	assert.Len(t, m.Ports, 1)
	require.Len(t, p.SignalList, 2)
	assert.Equal(t, "req", p.SignalList[0].Name)
	assert.Equal(t, "ack", p.SignalList[1].Name)
}

func TestAddExternalSignal(t *testing.T) {
	m := newTestModule(t)

	s, err := m.AddExternalSignal("clk", DirectionIn, false, "clock", SignalType("std_logic"))
	require.NoError(t, err)

	assert.Equal(t, ClassSignal, s.Class)
	assert.Equal(t, "clk", s.Name)
	assert.Equal(t, "std_logic", s.Type)
	assert.Equal(t, DirectionIn, s.Direction)
	assert.Equal(t, false, s.DefaultValue)
	assert.Equal(t, "clock", s.Description)

	got, ok := m.ExternalSignalByName("clk")
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestAddExternalSignalRejectsBadDirections(t *testing.T) {
	m := newTestModule(t)

	for _, direction := range []string{"", "IN", "In", "OUT", "inout", "input", "sideways"} {
		_, err := m.AddExternalSignal("s", direction, false, "")
		assert.True(t, errors.IsValueError(err), "direction %q must be rejected", direction)
	}
	assert.Empty(t, m.ExternalSignals)
}

func TestAddExternalSignalRejectsStrings(t *testing.T) {
	m := newTestModule(t)

	// Generics accept strings, external signals do not.
	_, err := m.AddExternalSignal("mode", DirectionIn, "idle", "")
	assert.True(t, errors.IsUnsupportedTypeError(err))

	_, err = m.AddExternalSignal("", DirectionIn, false, "")
	assert.True(t, errors.IsArgumentError(err))
}

// statefulSignal mimics a simulation signal carrying its initial value.
type statefulSignal struct {
	init any
}

func (s statefulSignal) InitialValue() any { return s.init }

func TestAddExternalSignalCoercesInitializer(t *testing.T) {
	m := newTestModule(t)

	s, err := m.AddExternalSignal("rst", DirectionIn, statefulSignal{init: true}, "")
	require.NoError(t, err)
	assert.Equal(t, true, s.DefaultValue)

	// The coerced value is validated like any other.
	_, err = m.AddExternalSignal("bad", DirectionIn, statefulSignal{init: "high"}, "")
	assert.True(t, errors.IsUnsupportedTypeError(err))
}

func TestAddExternalSignalMergesInPlace(t *testing.T) {
	m := newTestModule(t)

	first, err := m.AddExternalSignal("irq", DirectionOut, false, "old")
	require.NoError(t, err)

	second, err := m.AddExternalSignal("irq", DirectionIn, true, "new")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, m.ExternalSignals, 1)
	assert.Equal(t, DirectionIn, second.Direction)
	assert.Equal(t, true, second.DefaultValue)
	assert.Equal(t, "new", second.Description)
}
