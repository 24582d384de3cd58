package nocgen

import (
	"github.com/nocforge/nocgen/logger"
)

// PullImplementation asks the subject's code model for a generated
// implementation body and stores it in Implementation.
//
// A subject without a code model, or a code model that cannot generate
// implementations, is a legitimate state: the module simply has no
// custom body yet. Both cases log a warning and leave Implementation
// unchanged. An error from the code model's own generation logic is
// never suppressed; it propagates to the caller.
func (m *Module) PullImplementation() error {
	provider, ok := m.subject.(CodeModelProvider)
	if !ok {
		logger.Logger.Warnw("subject has no code model, implementation left unchanged",
			"module", m.ModuleName,
			"kind", m.subject.ModuleKind().String())
		return nil
	}

	gen, ok := provider.CodeModel().(ImplementationGenerator)
	if !ok {
		logger.Logger.Warnw("code model cannot generate implementations",
			"module", m.ModuleName)
		return nil
	}

	implementation, err := gen.GenerateImplementation()
	if err != nil {
		return err
	}
	m.Implementation = implementation
	return nil
}
