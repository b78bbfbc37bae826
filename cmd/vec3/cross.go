package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/vec3/pkg/vec3"
)

var (
	crossX1, crossY1, crossZ1 float64
	crossX2, crossY2, crossZ2 float64
)

var crossCmd = &cobra.Command{
	Use:   "cross",
	Short: "Compute the cross product of two vectors",
	Long:  "Compute the cross product of two 3D vectors given as per-axis flags.",
	Args:  cobra.NoArgs,
	Run:   runCross,
}

func init() {
	rootCmd.AddCommand(crossCmd)

	crossCmd.Flags().Float64Var(&crossX1, "x1", 0.0, "X coordinate of first vector")
	crossCmd.Flags().Float64Var(&crossY1, "y1", 0.0, "Y coordinate of first vector")
	crossCmd.Flags().Float64Var(&crossZ1, "z1", 0.0, "Z coordinate of first vector")
	crossCmd.Flags().Float64Var(&crossX2, "x2", 0.0, "X coordinate of second vector")
	crossCmd.Flags().Float64Var(&crossY2, "y2", 0.0, "Y coordinate of second vector")
	crossCmd.Flags().Float64Var(&crossZ2, "z2", 0.0, "Z coordinate of second vector")

	crossCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runCross(cmd *cobra.Command, args []string) {
	a := vec3.New(crossX1, crossY1, crossZ1)
	b := vec3.New(crossX2, crossY2, crossZ2)

	printVector(a.Cross(b))
}
