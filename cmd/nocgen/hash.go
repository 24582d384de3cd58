package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nocforge/nocgen/modfile"
)

var hashInput string

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Print the structural interface hash of a module",
	Long: `Print the structural interface hash of a module description.

Two modules with the same hash expose the same interface shape and can
be realized by one shared generated definition, differing only in the
values supplied for their generics.`,
	RunE: runHash,
}

func init() {
	hashCmd.Flags().StringVarP(&hashInput, "file", "f", "", "Module description file (required)")
	_ = hashCmd.MarkFlagRequired("file")
}

func runHash(cmd *cobra.Command, args []string) error {
	m, err := modfile.Load(hashInput)
	if err != nil {
		return fmt.Errorf("failed to load module description: %w", err)
	}
	fmt.Println(m.InterfaceHashString())
	return nil
}
