package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BasicReactions(t *testing.T) {
	crn, err := Parse(`
# <- this is a comment!
B + B -> C
C + A <=> D
`)
	require.NoError(t, err)
	require.Len(t, crn.Reactions, 2)

	assert.Equal(t, []string{"B", "B"}, crn.Reactions[0].Reactants)
	assert.Equal(t, []string{"C"}, crn.Reactions[0].Products)
	assert.False(t, crn.Reactions[0].Reversible)

	assert.Equal(t, []string{"C", "A"}, crn.Reactions[1].Reactants)
	assert.True(t, crn.Reactions[1].Reversible)

	assert.Equal(t, []string{"A", "B", "C", "D"}, crn.Formals)
	assert.Equal(t, crn.Formals, crn.Signals, "signals default to formals")
}

func TestParse_MultipliersAndRates(t *testing.T) {
	crn, err := Parse(`A + 2C -> E [k = 13.78]; E + F <=> 2A [kf = 13, kr = 14]`)
	require.NoError(t, err)
	require.Len(t, crn.Reactions, 2)

	assert.Equal(t, []string{"A", "C", "C"}, crn.Reactions[0].Reactants)
	require.NotNil(t, crn.Reactions[0].RateF)
	assert.InDelta(t, 13.78, *crn.Reactions[0].RateF, 1e-9)
	assert.Nil(t, crn.Reactions[0].RateR)

	assert.Equal(t, []string{"A", "A"}, crn.Reactions[1].Products)
	require.NotNil(t, crn.Reactions[1].RateF)
	require.NotNil(t, crn.Reactions[1].RateR)
	assert.InDelta(t, 13.0, *crn.Reactions[1].RateF, 1e-9)
	assert.InDelta(t, 14.0, *crn.Reactions[1].RateR, 1e-9)
}

func TestParse_ScientificRate(t *testing.T) {
	crn, err := Parse(`A -> B [k = 1e-5]`)
	require.NoError(t, err)
	require.NotNil(t, crn.Reactions[0].RateF)
	assert.InDelta(t, 1e-5, *crn.Reactions[0].RateF, 1e-12)
}

func TestParse_EmptySides(t *testing.T) {
	crn, err := Parse(`
<=> A [kf = 15, kr = 6]
B ->
`)
	require.NoError(t, err)
	require.Len(t, crn.Reactions, 2)
	assert.Empty(t, crn.Reactions[0].Reactants)
	assert.Equal(t, []string{"A"}, crn.Reactions[0].Products)
	assert.Empty(t, crn.Reactions[1].Products)
}

func TestParse_Declarations(t *testing.T) {
	crn, err := Parse(`
A -> B
signals = {A}
fuels = {B}
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, crn.Formals)
	assert.Equal(t, []string{"A"}, crn.Signals)
	assert.Equal(t, []string{"B"}, crn.Fuels)
}

func TestParse_SignalFuelOverlap(t *testing.T) {
	_, err := Parse(`
A -> B
signals = {A, B}
fuels = {B}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signal and fuel")
}

func TestParse_FuelWithDefaultedSignals(t *testing.T) {
	// Without an explicit signal set, signals default to all formals, so a
	// fuel referenced by a reaction conflicts.
	_, err := Parse(`
A -> B
fuels = {B}
`)
	require.Error(t, err)
}

func TestParse_RateMismatch(t *testing.T) {
	_, err := Parse(`A <=> B [k = 1]`)
	require.Error(t, err)

	_, err = Parse(`A -> B [kf = 1, kr = 2]`)
	require.Error(t, err)
}

func TestParse_SyntaxErrors(t *testing.T) {
	cases := []string{
		``,
		`A -> B -> C`,
		`A + -> B`,
		`2 -> B`,
		`A -> B [k = x]`,
		`A >< B`,
	}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q) should fail", src)
		}
	}
}

func TestParse_ErrorCarriesLine(t *testing.T) {
	_, err := Parse("A -> B\nC -> - D\n")
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}
