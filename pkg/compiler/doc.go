/*
Package compiler implements the CRN-to-DSD translation core.

It turns an abstract chemical reaction network into a set of DNA
strand-displacement complexes following a fixed three-domain architecture
(toehold / branch-migration / secondary-toehold) with explicit history
domains to suppress crosstalk between reaction instances.

The pipeline, leaves first:

  - Allocator issues fresh, uniquely named domains and their complements.
  - Registry caches one shared Species triple per CRN species name.
  - Gate builders map reactant/product lists to junction and release
    complexes, selected by arity (0, 1, or many on each side).
  - ComputeFlux derives the signal complex connecting a reactant-side gate
    to its downstream product-side gate.
  - Compiler orchestrates per-reaction gate selection, expands reversible
    reactions, and unions the complex sets under structural equality.

Compilation is a pure, deterministic, synchronous transformation. The only
shared mutable state is the Allocator counter and the Registry cache, both
mutex-guarded and local to one compilation run.
*/
package compiler
