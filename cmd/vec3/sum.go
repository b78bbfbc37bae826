package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/philipparndt/vec3/pkg/vec3"
	"github.com/philipparndt/vec3/pkg/vecfile"
)

var sumCmd = &cobra.Command{
	Use:   "sum [file]",
	Short: "Sum a list of vectors from a JSON or YAML file",
	Long: `Sum all vectors in the given file component-wise.
The file holds a list of {x, y, z} records; an empty list sums to the zero vector.`,
	Args: cobra.ExactArgs(1),
	Run:  runSum,
}

func init() {
	rootCmd.AddCommand(sumCmd)
}

func runSum(cmd *cobra.Command, args []string) {
	vectors, err := vecfile.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading vectors: %v\n", err)
		os.Exit(1)
	}

	printVector(vec3.Sum(slices.Values(vectors)))
}
