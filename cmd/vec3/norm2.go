package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/vec3/pkg/vec3"
)

var normX, normY, normZ float64

var norm2Cmd = &cobra.Command{
	Use:   "norm2",
	Short: "Compute the squared magnitude of a vector",
	Args:  cobra.NoArgs,
	Run:   runNorm2,
}

func init() {
	rootCmd.AddCommand(norm2Cmd)

	norm2Cmd.Flags().Float64Var(&normX, "x", 0.0, "X coordinate")
	norm2Cmd.Flags().Float64Var(&normY, "y", 0.0, "Y coordinate")
	norm2Cmd.Flags().Float64Var(&normZ, "z", 0.0, "Z coordinate")

	norm2Cmd.MarkFlagsRequiredTogether("x", "y", "z")
}

func runNorm2(cmd *cobra.Command, args []string) {
	v := vec3.New(normX, normY, normZ)

	printScalar(v.Norm2())
}
