package nocgen

import "fmt"

// BitVector is a fixed-width bit-vector value. It stands in for the
// bounded integers the simulation layer uses as signal and generic
// defaults: a plain value plus the number of bits it occupies.
type BitVector struct {
	Value uint64
	Width int
}

// NewBitVector builds a bit-vector value of the given width.
func NewBitVector(value uint64, width int) BitVector {
	return BitVector{Value: value, Width: width}
}

// Bin returns the binary digits of the value, zero-padded to the vector
// width. Backends wrap it in their own literal syntax.
func (b BitVector) Bin() string {
	return fmt.Sprintf("%0*b", b.Width, b.Value)
}

func (b BitVector) String() string {
	return b.Bin()
}

// Initializer is the optional capability of stateful signal
// collaborators (simulation signals) that can report the scalar value
// they start with. AddExternalSignal coerces such values to their
// initial scalar before validation.
type Initializer interface {
	InitialValue() any
}

// validGenericValue reports whether v is an accepted generic default:
// boolean, integer, bit-vector or string.
func validGenericValue(v any) bool {
	switch v.(type) {
	case bool, int, BitVector, string:
		return true
	}
	return false
}

// validSignalValue reports whether v is an accepted signal default.
// Unlike generics, signals do not accept plain strings.
func validSignalValue(v any) bool {
	switch v.(type) {
	case bool, int, BitVector:
		return true
	}
	return false
}
