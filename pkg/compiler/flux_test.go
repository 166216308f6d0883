package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jphuse/nuskell/pkg/domain"
)

func TestComputeFlux_Empty(t *testing.T) {
	alloc := NewAllocator()
	hist := alloc.History()

	flux := ComputeFlux(alloc, nil, hist, "r0")
	assert.Equal(t, FluxEmpty, flux.Kind)
	assert.Nil(t, flux.Complex)
	assert.Equal(t, hist, flux.History)
}

func TestComputeFlux_SingleDomainPair(t *testing.T) {
	alloc := NewAllocator()
	reg := NewRegistry(alloc)
	hist := alloc.History()
	p := reg.Species("B")

	flux := ComputeFlux(alloc, []*domain.Species{p}, hist, "r0")
	require.Equal(t, FluxPair, flux.Kind)
	require.NotNil(t, flux.Complex)
	require.Len(t, flux.Complex.Strands, 1)
	require.Len(t, flux.Complex.Strands[0], 2)

	// The pair hands off exactly one signal: the fresh handle plus the sole
	// product's leading toehold.
	assert.Equal(t, flux.Handle, flux.Complex.Strands[0][0])
	assert.Equal(t, p.F, flux.Complex.Strands[0][1])
	assert.True(t, flux.Complex.Unbounded)
}

func TestComputeFlux_MarkerOnly(t *testing.T) {
	alloc := NewAllocator()
	reg := NewRegistry(alloc)
	hist := alloc.History()
	ps := []*domain.Species{reg.Species("X"), reg.Species("Y")}

	flux := ComputeFlux(alloc, ps, hist, "r0")
	require.Equal(t, FluxMarker, flux.Kind)
	require.NotNil(t, flux.Complex)
	require.Len(t, flux.Complex.Strands, 1)

	// Beyond the first product there is no direct flux domain, only the
	// bare release handle.
	assert.Equal(t, domain.Strand{flux.Handle}, flux.Complex.Strands[0])
}
