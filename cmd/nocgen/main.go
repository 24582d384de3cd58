package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nocforge/nocgen/logger"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "nocgen",
	Short: "nocgen - HDL code generation for NoC module models",
	Long: `nocgen - HDL code generation for NoC module models.

nocgen builds an interface model (generics, ports, external signals)
from a TOML module description and renders it as VHDL or Verilog.

Available commands:
  generate - Render a module description as HDL source
  hash     - Print the structural interface hash of a module

Examples:
  nocgen generate -f router.toml -l vhdl          # VHDL to stdout
  nocgen generate -f router.toml -l verilog -o router.v
  nocgen generate -f router.toml -l vhdl --component
  nocgen hash -f router.toml                      # shareability fingerprint`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "JSON log output")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(hashCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
