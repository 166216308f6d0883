package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jphuse/nuskell"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nuskell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nuskell version %s\n", strings.TrimSpace(nuskell.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
