// Package graph renders compiled strand-displacement systems as Mermaid
// flowcharts for quick visual inspection.
package graph

import (
	"fmt"
	"strings"

	"github.com/jphuse/nuskell/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from a compiled system.
// It applies semantic shapes per complex kind:
// - Species signal: ((Circle))
// - Fuel: [[Subroutine]]
// - Flux: [/Parallelogram/]
// - Gates and helpers: [Rectangle]
// Edges follow the signal flow: a species points at every complex that
// sequesters its branch-migration domain, and a complex points at every
// species whose full signal triple it holds ready for release.
func GenerateMermaid(sys *domain.System) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, sp := range sys.Species {
		safeID := sanitizeMermaidID(sp.Name)
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", safeID, sp.Name))
	}

	// Group each reaction's complexes under one subgraph. Complex names are
	// prefixed with the reaction label up to the first underscore.
	byReaction := make(map[string][]*domain.Complex)
	var order []string
	for _, c := range sys.Complexes {
		label, _, _ := strings.Cut(c.Name, "_")
		if _, seen := byReaction[label]; !seen {
			order = append(order, label)
		}
		byReaction[label] = append(byReaction[label], c)
	}

	for _, label := range order {
		sb.WriteString(fmt.Sprintf("\n    subgraph %s\n", sanitizeMermaidID(label)))
		for _, c := range byReaction[label] {
			safeID := sanitizeMermaidID(c.Name)

			opener, closer := "[", "]"
			switch c.Kind {
			case domain.KindFuel:
				opener, closer = "[[", "]]"
			case domain.KindFlux:
				opener, closer = "[/", "/]"
			}
			sb.WriteString(fmt.Sprintf("        %s%s\"%s\"%s\n", safeID, opener, c.Name, closer))
		}
		sb.WriteString("    end\n")
	}

	sb.WriteString("\n")
	for _, c := range sys.Complexes {
		safeID := sanitizeMermaidID(c.Name)
		for _, sp := range sys.Species {
			safeSp := sanitizeMermaidID(sp.Name)
			if consumes(c, sp) {
				sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeSp, safeID))
			}
			if releases(c, sp) {
				sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", safeID, safeSp))
			}
		}
	}

	// Force black text (color:#000) for high-contrast regardless of theme.
	sb.WriteString("\n    classDef fuel fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef flux fill:#ffeb3b,stroke:#fbc02d,stroke-width:2px,color:#000;\n")
	for _, c := range sys.Complexes {
		switch c.Kind {
		case domain.KindFuel:
			sb.WriteString(fmt.Sprintf("    class %s fuel;\n", sanitizeMermaidID(c.Name)))
		case domain.KindFlux:
			sb.WriteString(fmt.Sprintf("    class %s flux;\n", sanitizeMermaidID(c.Name)))
		}
	}

	return sb.String()
}

// consumes reports whether the complex binds the species: some strand
// carries the complement of the species' branch-migration domain.
func consumes(c *domain.Complex, sp *domain.Species) bool {
	want := sp.M.Complement()
	for _, s := range c.Strands {
		for _, d := range s {
			if d == want {
				return true
			}
		}
	}
	return false
}

// releases reports whether the complex holds the species' full signal
// triple contiguously on one strand, ready to free on displacement.
func releases(c *domain.Complex, sp *domain.Species) bool {
	for _, s := range c.Strands {
		for i := 0; i+2 < len(s); i++ {
			if s[i] == sp.F && s[i+1] == sp.M && s[i+2] == sp.S {
				return true
			}
		}
	}
	return false
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
