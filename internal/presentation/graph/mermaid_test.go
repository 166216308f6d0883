package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jphuse/nuskell"
	"github.com/jphuse/nuskell/internal/presentation/graph"
	"github.com/jphuse/nuskell/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	sys, err := nuskell.New().CompileString("A + B -> C")
	require.NoError(t, err)

	out := graph.GenerateMermaid(sys)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	for _, name := range []string{"A", "B", "C"} {
		assert.Contains(t, out, name+"((")
	}
	assert.Contains(t, out, "subgraph r0")
	// A is the first reactant of the junction chain, so it feeds the gate.
	assert.Contains(t, out, "A --> r0_reactg0")
	// C sits gated behind the history domain, released by the product gate.
	assert.Contains(t, out, "-.-> C")
	assert.Contains(t, out, "classDef flux")
}

func TestGenerateMermaid_SanitizesIDs(t *testing.T) {
	sys := &domain.System{Species: []*domain.Species{
		{Name: "a.x"},
		{Name: "b-y"},
	}}

	out := graph.GenerateMermaid(sys)
	assert.Contains(t, out, `a_x(("a.x"))`)
	assert.Contains(t, out, `b_y(("b-y"))`)
	assert.NotContains(t, out, "a.x((")
}
