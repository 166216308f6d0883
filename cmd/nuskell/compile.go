package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jphuse/nuskell"
	"github.com/jphuse/nuskell/internal/logging"
	"github.com/jphuse/nuskell/internal/presentation/tui"
	"github.com/jphuse/nuskell/pkg/domain"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Translate a CRN file into a strand-displacement system",
	Long: `Reads a chemical reaction network (one reaction per line, '#' comments,
'->' irreversible, '<=>' reversible) and emits the compiled complex set.
Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sys := compileInput(cmd, args)
		format, _ := cmd.Flags().GetString("output")
		if err := writeSystem(os.Stdout, sys, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	},
}

// compileInput parses the CRN source named by args (or stdin) and compiles
// it, exiting on failure. Shared by compile and graph.
func compileInput(cmd *cobra.Command, args []string) *domain.System {
	level, _ := cmd.Flags().GetString("log-level")
	eng := nuskell.New(nuskell.WithLogger(logging.New(logging.ParseLevel(level))))

	var (
		sys *domain.System
		err error
	)
	if len(args) > 0 {
		sys, err = eng.CompileFile(args[0])
	} else {
		var src []byte
		src, err = io.ReadAll(os.Stdin)
		if err == nil {
			sys, err = eng.CompileString(string(src))
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compile error: %v\n", err)
		os.Exit(1)
	}
	return sys
}

func writeSystem(w io.Writer, sys *domain.System, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sys)
	case "yaml":
		return yaml.NewEncoder(w).Encode(sys)
	case "pretty":
		render := tui.NewRenderer()
		out, err := render(tui.SummaryMarkdown(sys))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml or pretty)", format)
	}
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("output", "o", "pretty", "Output format: json, yaml or pretty")
}
