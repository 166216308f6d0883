package nuskell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jphuse/nuskell"
	"github.com/jphuse/nuskell/pkg/domain"
)

func TestEngine_CompileString(t *testing.T) {
	eng := nuskell.New()
	sys, err := eng.CompileString("A + B -> C\nC <=> A + B\n")
	require.NoError(t, err)
	require.NotEmpty(t, sys.Complexes)

	for _, c := range sys.Complexes {
		require.NoError(t, c.Validate(), "complex %s", c.Name)
		assert.True(t, c.Unbounded)
	}
	assert.Len(t, sys.Species, 3)
}

func TestEngine_CompileString_ParseError(t *testing.T) {
	_, err := nuskell.New().CompileString("A -> -> B")
	require.Error(t, err)
}

func TestEngine_IndependentRunsAreIsolated(t *testing.T) {
	eng := nuskell.New()
	first, err := eng.CompileString("A -> B")
	require.NoError(t, err)
	second, err := eng.CompileString("A -> B")
	require.NoError(t, err)

	// Fresh allocator per run: the same CRN maps to structurally identical
	// systems.
	require.Len(t, second.Complexes, len(first.Complexes))
	for i := range first.Complexes {
		assert.Equal(t, first.Complexes[i].Key(), second.Complexes[i].Key())
	}
}

func TestEngine_MalformedReactionIsFatal(t *testing.T) {
	_, err := nuskell.New().Compile(&domain.CRN{Reactions: []domain.Reaction{
		{Reactants: []string{"A"}, Products: []string{"B"}},
		{}, // no reactants, no products
	}})
	require.Error(t, err)

	var malformed *domain.MalformedReactionError
	assert.ErrorAs(t, err, &malformed)
}
