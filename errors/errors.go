// Package errors provides error handling for nocgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Typed sentinel errors for the code model's validation taxonomy
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := m.PullImplementation(); err != nil {
//	    return errors.Wrap(err, "failed to pull implementation")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrValue) {
//	    // handle bad enum value
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the code model's validation taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrArgument indicates an argument of the wrong type or shape,
	// e.g. an empty name where a non-empty string is required
	ErrArgument = New("invalid argument")

	// ErrUnsupportedType indicates a default or current value whose type
	// is outside the accepted set for that field
	ErrUnsupportedType = New("unsupported value type")

	// ErrValue indicates a value outside an enumerated domain,
	// e.g. a signal direction other than "in" or "out"
	ErrValue = New("value out of domain")

	// ErrShape indicates a supplied record missing its required
	// discriminant or keys
	ErrShape = New("malformed record")

	// ErrTypeMismatch indicates the wrong collaborator type bound to a
	// model or extension
	ErrTypeMismatch = New("collaborator type mismatch")

	// ErrNotImplemented indicates an abstract code generation operation
	// invoked on a backend that does not provide it
	ErrNotImplemented = New("not implemented")
)

// IsArgumentError checks if an error is or wraps ErrArgument
func IsArgumentError(err error) bool {
	return err != nil && Is(err, ErrArgument)
}

// IsUnsupportedTypeError checks if an error is or wraps ErrUnsupportedType
func IsUnsupportedTypeError(err error) bool {
	return err != nil && Is(err, ErrUnsupportedType)
}

// IsValueError checks if an error is or wraps ErrValue
func IsValueError(err error) bool {
	return err != nil && Is(err, ErrValue)
}

// IsShapeError checks if an error is or wraps ErrShape
func IsShapeError(err error) bool {
	return err != nil && Is(err, ErrShape)
}

// IsTypeMismatchError checks if an error is or wraps ErrTypeMismatch
func IsTypeMismatchError(err error) bool {
	return err != nil && Is(err, ErrTypeMismatch)
}

// IsNotImplementedError checks if an error is or wraps ErrNotImplemented
func IsNotImplementedError(err error) bool {
	return err != nil && Is(err, ErrNotImplemented)
}
