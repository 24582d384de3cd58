package nocgen

import (
	"github.com/nocforge/nocgen/errors"
)

// Extension is the access point for transformations specific to one
// subject kind (router, IP core, channel). Kind-specific behavior lives
// in types embedding Extension, keeping the generic Module free of it.
//
// An extension never owns the model; it mutates it through the Module's
// public operations only.
type Extension struct {
	Model   *Module
	Subject Subject
}

// NewExtension binds an extension to exactly one code model.
func NewExtension(model *Module) (*Extension, error) {
	if model == nil {
		return nil, errors.Wrap(errors.ErrTypeMismatch, "extension must be bound to a code generation model")
	}
	return &Extension{
		Model:   model,
		Subject: model.Subject(),
	}, nil
}
