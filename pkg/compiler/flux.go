package compiler

import (
	"github.com/jphuse/nuskell/pkg/domain"
)

// FluxKind selects among the three flux shapes a reactant gate can emit.
type FluxKind int

const (
	// FluxEmpty: no products, no flux structure required.
	FluxEmpty FluxKind = iota
	// FluxPair: exactly one product; a fresh handle domain paired with the
	// sole product's leading toehold hands off exactly one signal.
	FluxPair
	// FluxMarker: several products; a bare handle domain acts only as a
	// release trigger, and sequencing of the downstream products is
	// delegated to the history domain inside the product gate.
	FluxMarker
)

// Flux is the signal value connecting a reactant-side gate to its downstream
// product-side gate. History is the per-reaction history domain threaded
// through the whole cascade.
type Flux struct {
	Kind    FluxKind
	Handle  domain.Domain
	History domain.Domain
	Complex *domain.Complex
}

// ComputeFlux derives the count-appropriate flux for a reaction's product
// list. One flux domain is enough to trigger exactly one downstream toehold
// exposure; triggering many products safely needs the history domain instead
// of multiplied flux domains.
func ComputeFlux(alloc *Allocator, products []*domain.Species, hist domain.Domain, label string) Flux {
	switch {
	case len(products) == 0:
		return Flux{Kind: FluxEmpty, History: hist}

	case len(products) == 1:
		handle := alloc.Flux()
		return Flux{
			Kind:    FluxPair,
			Handle:  handle,
			History: hist,
			Complex: &domain.Complex{
				Name:      label + "_flux",
				Kind:      domain.KindFlux,
				Strands:   []domain.Strand{{handle, products[0].F}},
				Unbounded: true,
			},
		}

	default:
		handle := alloc.Flux()
		return Flux{
			Kind:    FluxMarker,
			Handle:  handle,
			History: hist,
			Complex: &domain.Complex{
				Name:      label + "_flux",
				Kind:      domain.KindFlux,
				Strands:   []domain.Strand{{handle}},
				Unbounded: true,
			},
		}
	}
}
