package nocgen

import (
	"sort"
	"strings"
)

// InterfaceHashString computes a fingerprint of the module's externally
// visible interface. Two modules with equal fingerprints can be realized
// by one shared generated definition and instantiated with different
// generic values.
//
// The fingerprint covers generic names and types, port names and types,
// and external signal names, types and directions, each list sorted by
// name so insertion order does not matter. It deliberately ignores
// default and current values, descriptions, array bounds and the number
// of signals inside a port: modules that differ only in those still
// share one definition.
//
// The result is stored in InterfaceHash and returned.
func (m *Module) InterfaceHashString() string {
	var sb strings.Builder

	generics := make([][2]string, 0, len(m.Generics))
	for _, g := range m.Generics {
		generics = append(generics, [2]string{g.Name, g.Type})
	}
	sort.Slice(generics, func(i, j int) bool { return generics[i][0] < generics[j][0] })
	for _, g := range generics {
		sb.WriteString(g[0])
		sb.WriteString(g[1])
	}

	ports := make([][2]string, 0, len(m.Ports))
	for _, p := range m.Ports {
		ports = append(ports, [2]string{p.Name, p.Type})
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i][0] < ports[j][0] })
	for _, p := range ports {
		sb.WriteString(p[0])
		sb.WriteString(p[1])
	}

	externals := make([][3]string, 0, len(m.ExternalSignals))
	for _, s := range m.ExternalSignals {
		externals = append(externals, [3]string{s.Name, s.Type, s.Direction})
	}
	sort.Slice(externals, func(i, j int) bool { return externals[i][0] < externals[j][0] })
	for _, s := range externals {
		sb.WriteString(s[0])
		sb.WriteString(s[1])
		sb.WriteString(s[2])
	}

	m.InterfaceHash = sb.String()
	return m.InterfaceHash
}
