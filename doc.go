// Package nocgen holds the code generation model for NoC hardware
// modules: an intermediate representation of a module's interface
// (generics, ports, signals) plus the contract language backends
// implement to render it as HDL source text.
//
// A toolchain builds one Module per hardware module instance, populates
// it through the add operations (possibly repeatedly, as different
// stages contribute generics, ports and signals), optionally pulls a
// generated implementation body from the subject's code model, and
// compares InterfaceHashString fingerprints to decide whether an
// equivalent module definition already exists. Rendering is delegated
// to a Generator backend; see the vhdl and verilog packages.
package nocgen
