package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/vec3/pkg/vec3"
	"github.com/philipparndt/vec3/version"
)

var rootCmd = &cobra.Command{
	Use:   "vec3",
	Short: "A CLI tool for 3D vector arithmetic",
	Long: `vec3 computes dot products, cross products and sums of 3D vectors.
Vectors are given as per-axis flags or loaded from JSON/YAML files.`,
	Version: version.GetFullVersion(),
}

var (
	outPrecision int
	outWidth     int
	outAlign     string
)

func init() {
	rootCmd.PersistentFlags().IntVar(&outPrecision, "precision", -1, "Fraction digits for each component (-1 for default)")
	rootCmd.PersistentFlags().IntVar(&outWidth, "width", 0, "Minimum width of the output field")
	rootCmd.PersistentFlags().StringVar(&outAlign, "align", "left", "Output alignment: left, right or center")
}

func parseAlign(s string) (vec3.Align, error) {
	switch s {
	case "left":
		return vec3.AlignLeft, nil
	case "right":
		return vec3.AlignRight, nil
	case "center":
		return vec3.AlignCenter, nil
	}
	return 0, fmt.Errorf("invalid alignment %q (must be left, right or center)", s)
}

// printVector renders a result vector with the output flags applied
func printVector(v vec3.Vector3D[float64]) {
	align, err := parseAlign(outAlign)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(v.Text(outPrecision, outWidth, align))
}

// printScalar renders a scalar result honoring the precision flag
func printScalar(s float64) {
	if outPrecision >= 0 {
		fmt.Printf("%.*f\n", outPrecision, s)
		return
	}
	fmt.Printf("%v\n", s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
