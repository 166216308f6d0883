package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jphuse/nuskell/pkg/domain"
)

// Compiler orchestrates the translation of a CRN into a DSD complex set.
// For a fixed CRN and a fresh allocator, compilation is fully deterministic:
// no randomness, no reordering.
type Compiler struct {
	alloc  *Allocator
	reg    *Registry
	logger *slog.Logger
}

// Option defines a functional option for configuring the Compiler.
type Option func(*Compiler)

// WithLogger sets a structured logger for compilation progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithAllocator injects a custom allocator, e.g. one shared with an
// embedding tool that pre-reserves domain names.
func WithAllocator(alloc *Allocator) Option {
	return func(c *Compiler) {
		c.alloc = alloc
	}
}

// New creates a Compiler with a fresh allocator and species registry.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	if c.alloc == nil {
		c.alloc = NewAllocator()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.reg = NewRegistry(c.alloc)
	return c
}

// Registry exposes the per-run species cache, mainly for introspection.
func (c *Compiler) Registry() *Registry {
	return c.reg
}

// CompileReaction compiles one irreversible reaction into its gate
// complexes. idx is the reaction's position in the expanded reaction list
// and seeds the complex names. Every emitted complex is an unbounded-supply
// fuel instance.
func (c *Compiler) CompileReaction(idx int, rxn domain.Reaction) ([]*domain.Complex, error) {
	if len(rxn.Reactants) == 0 && len(rxn.Products) == 0 {
		return nil, &domain.MalformedReactionError{Index: idx, Reason: "no reactants and no products"}
	}
	for _, side := range [][]string{rxn.Reactants, rxn.Products} {
		for _, name := range side {
			if name == "" {
				return nil, &domain.MalformedReactionError{Index: idx, Reason: "empty species reference"}
			}
		}
	}

	reactants := make([]*domain.Species, len(rxn.Reactants))
	for i, name := range rxn.Reactants {
		reactants[i] = c.reg.Species(name)
	}
	products := make([]*domain.Species, len(rxn.Products))
	for i, name := range rxn.Products {
		products[i] = c.reg.Species(name)
	}

	label := fmt.Sprintf("r%d", idx)

	// One history domain per compiled reaction, threaded through both
	// sides. Helper complexes may be shared across gates of the same
	// reaction only, never across unrelated reactions.
	hist := c.alloc.History()

	reactSide, flux, terminal, fuelAnchor, err := buildReactantSide(c.alloc, label, reactants, products, hist)
	if err != nil {
		return nil, err
	}
	prodSide, err := buildProductSide(label, products, fuelAnchor, flux, terminal)
	if err != nil {
		return nil, err
	}

	complexes := append(reactSide, prodSide...)
	for _, cx := range complexes {
		if err := cx.Validate(); err != nil {
			return nil, fmt.Errorf("reaction %d: %w", idx, err)
		}
	}

	c.logger.Debug("compiled reaction",
		"reaction", idx,
		"reactants", len(reactants),
		"products", len(products),
		"complexes", len(complexes))
	return complexes, nil
}

// expand rewrites the reaction list so every reversible reaction becomes its
// forward and backward irreversible instances (forward first). The rewrite
// is pure and happens once, before any gate compilation.
func expand(reactions []domain.Reaction) []domain.Reaction {
	out := make([]domain.Reaction, 0, len(reactions))
	for _, rxn := range reactions {
		if rxn.Reversible {
			out = append(out, rxn.Forward(), rxn.Backward())
		} else {
			out = append(out, rxn)
		}
	}
	return out
}

// Compile translates the whole CRN. The result unions all per-reaction
// complex sets, deduplicating only complexes that are structurally equal
// (same strands, same structure, same domain labels). A single malformed
// reaction aborts the whole compilation.
func (c *Compiler) Compile(crn *domain.CRN) (*domain.System, error) {
	if crn == nil {
		return nil, fmt.Errorf("nil CRN")
	}

	expanded := expand(crn.Reactions)
	c.logger.Info("compiling CRN",
		"reactions", len(crn.Reactions),
		"irreversible", len(expanded))

	sys := &domain.System{}
	seen := make(map[string]bool)

	for i, rxn := range expanded {
		complexes, err := c.CompileReaction(i, rxn)
		if err != nil {
			return nil, err
		}
		for _, cx := range complexes {
			key := cx.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			sys.Complexes = append(sys.Complexes, cx)
		}
	}

	sys.Species = c.reg.All()
	return sys, nil
}
