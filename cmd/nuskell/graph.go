package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jphuse/nuskell/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the compiled system as a Mermaid diagram",
	Long: `Compiles a CRN and outputs a Mermaid flowchart (graph TD) showing the
species, gate complexes and signal flow. Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sys := compileInput(cmd, args)
		fmt.Print(graph.GenerateMermaid(sys))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
