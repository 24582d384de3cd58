package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nocforge/nocgen"
	"github.com/nocforge/nocgen/errors"
	"github.com/nocforge/nocgen/logger"
	"github.com/nocforge/nocgen/modfile"
	"github.com/nocforge/nocgen/verilog"
	"github.com/nocforge/nocgen/vhdl"
)

var (
	generateInput     string
	generateLanguage  string
	generateOutput    string
	generateComponent bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a module description as HDL source",
	Long: `Render a TOML module description as HDL source text.

The description is loaded into an interface model and handed to the
selected language backend. By default the full source file is emitted;
--component emits only the declaration used to instantiate the module
elsewhere.

Examples:
  nocgen generate -f router.toml -l vhdl
  nocgen generate -f router.toml -l verilog -o router.v
  nocgen generate -f router.toml -l vhdl --component`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "file", "f", "", "Module description file (required)")
	generateCmd.Flags().StringVarP(&generateLanguage, "language", "l", "vhdl", "Target language: vhdl or verilog")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().BoolVar(&generateComponent, "component", false, "Emit the component declaration only")
	_ = generateCmd.MarkFlagRequired("file")
}

// backendFor picks the language backend for a model.
func backendFor(language string, m *nocgen.Module) (nocgen.Generator, error) {
	switch language {
	case "vhdl":
		return vhdl.NewGenerator(m), nil
	case "verilog":
		return verilog.NewGenerator(m), nil
	default:
		return nil, errors.Wrapf(errors.ErrValue, "unknown target language %q", language)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	m, err := modfile.Load(generateInput)
	if err != nil {
		return fmt.Errorf("failed to load module description: %w", err)
	}

	backend, err := backendFor(generateLanguage, m)
	if err != nil {
		return err
	}

	var text string
	if generateComponent {
		text, err = backend.GenerateComponent()
	} else {
		text, err = backend.GenerateFile()
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", generateLanguage, err)
	}

	if generateOutput == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(generateOutput, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", generateOutput, err)
	}
	logger.Logger.Infow("generated HDL source",
		"module", m.ModuleName,
		"language", generateLanguage,
		"output", generateOutput)
	return nil
}
