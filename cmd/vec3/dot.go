package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/vec3/pkg/vec3"
)

var (
	dotX1, dotY1, dotZ1 float64
	dotX2, dotY2, dotZ2 float64
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Compute the dot product of two vectors",
	Long:  "Compute the dot product of two 3D vectors given as per-axis flags.",
	Args:  cobra.NoArgs,
	Run:   runDot,
}

func init() {
	rootCmd.AddCommand(dotCmd)

	dotCmd.Flags().Float64Var(&dotX1, "x1", 0.0, "X coordinate of first vector")
	dotCmd.Flags().Float64Var(&dotY1, "y1", 0.0, "Y coordinate of first vector")
	dotCmd.Flags().Float64Var(&dotZ1, "z1", 0.0, "Z coordinate of first vector")
	dotCmd.Flags().Float64Var(&dotX2, "x2", 0.0, "X coordinate of second vector")
	dotCmd.Flags().Float64Var(&dotY2, "y2", 0.0, "Y coordinate of second vector")
	dotCmd.Flags().Float64Var(&dotZ2, "z2", 0.0, "Z coordinate of second vector")

	dotCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runDot(cmd *cobra.Command, args []string) {
	a := vec3.New(dotX1, dotY1, dotZ1)
	b := vec3.New(dotX2, dotY2, dotZ2)

	printScalar(a.Dot(b))
}
