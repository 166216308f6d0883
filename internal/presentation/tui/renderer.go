package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jphuse/nuskell/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects the terminal background for light/dark styling.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// SummaryMarkdown formats a compiled system as a markdown report: species
// with their domain triples, then complexes grouped in a table.
func SummaryMarkdown(sys *domain.System) string {
	var sb strings.Builder

	sb.WriteString("# Compiled system\n\n")
	sb.WriteString(fmt.Sprintf("**%d** species, **%d** complexes\n\n", len(sys.Species), len(sys.Complexes)))

	sb.WriteString("## Species\n\n")
	for _, sp := range sys.Species {
		sb.WriteString(fmt.Sprintf("- `%s` = %s %s %s\n", sp.Name, sp.F, sp.M, sp.S))
	}

	sb.WriteString("\n## Complexes\n\n")
	sb.WriteString("| Name | Kind | Strands | Pairs |\n")
	sb.WriteString("|------|------|---------|-------|\n")
	for _, c := range sys.Complexes {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %d |\n",
			c.Name, c.Kind, len(c.Strands), len(c.Structure.Pairs)))
	}

	return sb.String()
}
