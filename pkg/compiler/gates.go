package compiler

import (
	"fmt"

	"github.com/jphuse/nuskell/pkg/domain"
)

// buildReactantSide emits the reactant-side complexes for one irreversible
// reaction: the reactant-gate-r0 fuel when the reaction has no reactants, a
// "reactg" junction chain ending in an anchoring gate for the last reactant
// otherwise, plus the flux complex carrying the output signal forward.
//
// It returns the complexes, the flux value, the gate's sequestered terminal
// toehold (the last reactant's secondary toehold, or the synthesized fuel's
// when there are no reactants), and the synthesized fuel species itself in
// the r0 case, which the product side then chains off directly.
func buildReactantSide(alloc *Allocator, label string, reactants, products []*domain.Species, hist domain.Domain) ([]*domain.Complex, Flux, domain.Domain, *domain.Species, error) {
	for _, sp := range reactants {
		if sp == nil {
			return nil, Flux{}, domain.Domain{}, nil, &domain.ArityMismatchError{Side: "reactants", Count: len(reactants)}
		}
	}

	var (
		complexes  []*domain.Complex
		terminal   domain.Domain
		fuelAnchor *domain.Species
	)

	if len(reactants) == 0 {
		// reactant-gate-r0: synthesize a standalone fuel triple acting as an
		// implicit reactant for a pure-production reaction.
		fuel := &domain.Species{
			Name: label + "_fuel",
			F:    alloc.Toehold(label),
			M:    alloc.Branch(0),
			S:    alloc.Toehold(label),
		}
		complexes = append(complexes, &domain.Complex{
			Name:      label + "_fuel",
			Kind:      domain.KindFuel,
			Strands:   []domain.Strand{fuel.Signal()},
			Unbounded: true,
		})
		terminal = fuel.S
		fuelAnchor = fuel
	} else {
		// One 3-strand junction per adjacent reactant pair: reactant i's
		// branch-migration and secondary toehold hold the next reactant's
		// leading toehold, so release runs strictly in sequence.
		for i := 0; i < len(reactants)-1; i++ {
			cur, next := reactants[i], reactants[i+1]
			complexes = append(complexes, &domain.Complex{
				Name: fmt.Sprintf("%s_reactg%d", label, i),
				Kind: domain.KindReactantGate,
				Strands: []domain.Strand{
					{cur.M, cur.S},
					{next.F},
					{next.F.Complement(), cur.S.Complement(), cur.M.Complement()},
				},
				Structure: domain.Structure{Pairs: []domain.Pair{
					{A: domain.Position{Strand: 0, Index: 0}, B: domain.Position{Strand: 2, Index: 2}},
					{A: domain.Position{Strand: 0, Index: 1}, B: domain.Position{Strand: 2, Index: 1}},
					{A: domain.Position{Strand: 1, Index: 0}, B: domain.Position{Strand: 2, Index: 0}},
				}},
				Unbounded: true,
			})
		}

		// Anchoring gate for the last reactant: its branch-migration and
		// secondary toehold are sequestered here, so the reactant is consumed
		// even when the junction chain is empty (single reactant) or the
		// reaction has no products to drive a downstream gate.
		last := reactants[len(reactants)-1]
		complexes = append(complexes, &domain.Complex{
			Name: fmt.Sprintf("%s_reactg%d", label, len(reactants)-1),
			Kind: domain.KindReactantGate,
			Strands: []domain.Strand{
				{last.M, last.S},
				{last.S.Complement(), last.M.Complement()},
			},
			Structure: domain.Structure{Pairs: []domain.Pair{
				{A: domain.Position{Strand: 0, Index: 0}, B: domain.Position{Strand: 1, Index: 1}},
				{A: domain.Position{Strand: 0, Index: 1}, B: domain.Position{Strand: 1, Index: 0}},
			}},
			Unbounded: true,
		})
		terminal = last.S
	}

	flux := ComputeFlux(alloc, products, hist, label)
	if flux.Complex != nil {
		complexes = append(complexes, flux.Complex)
	}
	return complexes, flux, terminal, fuelAnchor, nil
}

// prodFragments is the fixed-width tuple the product-gate macro emits for
// each non-first product before the transpose step.
type prodFragments struct {
	signal     domain.Strand
	complement domain.Strand
	reporter   domain.Strand
}

// transposeFragments is the explicit zip-transpose over per-product tuples:
// it regroups them into the three parallel strand groups of the
// multi-product cascade.
func transposeFragments(frags []prodFragments) (signals, complements, reporters []domain.Strand) {
	signals = make([]domain.Strand, len(frags))
	complements = make([]domain.Strand, len(frags))
	reporters = make([]domain.Strand, len(frags))
	for i, f := range frags {
		signals[i] = f.signal
		complements[i] = f.complement
		reporters[i] = f.reporter
	}
	return signals, complements, reporters
}

// gatedRelease builds the 2-strand release complex holding one product
// signal behind the history domain. The bottom strand carries the open
// toeholds (flux handle and terminal) that admit the triggering strands.
func gatedRelease(name string, p *domain.Species, hist domain.Domain, open []domain.Domain) *domain.Complex {
	bottom := domain.Strand{p.F.Complement(), hist.Complement()}
	bottom = append(bottom, open...)
	return &domain.Complex{
		Name: name,
		Kind: domain.KindProductGate,
		Strands: []domain.Strand{
			{hist, p.F, p.M, p.S},
			bottom,
		},
		Structure: domain.Structure{Pairs: []domain.Pair{
			{A: domain.Position{Strand: 0, Index: 0}, B: domain.Position{Strand: 1, Index: 1}},
			{A: domain.Position{Strand: 0, Index: 1}, B: domain.Position{Strand: 1, Index: 0}},
		}},
		Unbounded: true,
	}
}

// buildProductSide emits the product-side complexes: nothing for zero
// products, the single product-gate-p1 complex for one, and the
// history-gated top complex plus a "prodg" sub-complex chain for two or
// more. With real reactants, the top complex releases the first product and
// the chain covers products[1:]; for a zero-reactant reaction the top slot
// is taken by the synthesized fuel (fuelAnchor), so every product gets its
// own chained sub-complex.
func buildProductSide(label string, products []*domain.Species, fuelAnchor *domain.Species, flux Flux, terminal domain.Domain) ([]*domain.Complex, error) {
	for _, sp := range products {
		if sp == nil {
			return nil, &domain.ArityMismatchError{Side: "products", Count: len(products)}
		}
	}

	if len(products) == 0 {
		return nil, nil
	}

	hist := flux.History
	open := []domain.Domain{flux.Handle.Complement(), terminal.Complement()}

	if len(products) == 1 {
		return []*domain.Complex{
			gatedRelease(label+"_prod_p1", products[0], hist, open),
		}, nil
	}

	// Top complex releases its anchor and, with it, the history domain that
	// frees every downstream product from its own complex.
	top, chained := products[0], products[1:]
	if fuelAnchor != nil {
		top, chained = fuelAnchor, products
	}
	complexes := []*domain.Complex{
		gatedRelease(label+"_prod", top, hist, open),
	}

	frags := make([]prodFragments, 0, len(chained))
	for _, p := range chained {
		frags = append(frags, prodFragments{
			signal:     domain.Strand{hist, p.F, p.M, p.S},
			complement: domain.Strand{p.F.Complement(), hist.Complement()},
			reporter:   domain.Strand{p.F},
		})
	}
	signals, complements, reporters := transposeFragments(frags)

	for j := range signals {
		complexes = append(complexes, &domain.Complex{
			Name:    fmt.Sprintf("%s_prodg%d", label, j+1),
			Kind:    domain.KindProductGate,
			Strands: []domain.Strand{signals[j], complements[j]},
			Structure: domain.Structure{Pairs: []domain.Pair{
				{A: domain.Position{Strand: 0, Index: 0}, B: domain.Position{Strand: 1, Index: 1}},
				{A: domain.Position{Strand: 0, Index: 1}, B: domain.Position{Strand: 1, Index: 0}},
			}},
			Unbounded: true,
		})
	}

	// The reporter group folds into a single helper strand that re-exposes
	// the leading toeholds of the released products.
	var helper domain.Strand
	for _, r := range reporters {
		helper = append(helper, r...)
	}
	complexes = append(complexes, &domain.Complex{
		Name:      label + "_helper",
		Kind:      domain.KindHelper,
		Strands:   []domain.Strand{helper},
		Unbounded: true,
	})

	return complexes, nil
}
