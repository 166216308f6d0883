package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nuskell",
	Short: "Nuskell compiles chemical reaction networks into DNA strand-displacement systems",
	Long: `Nuskell translates abstract chemical reaction networks (CRNs) into sets of
nucleic-acid gate complexes implementing the same dynamics via toehold-mediated
strand displacement.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity: debug, info, warn, error")
}
