/*
Package domain contains the core data model for the nuskell translation engine.

It defines the fundamental entities of a DNA strand-displacement (DSD) system
compiled from a chemical reaction network (CRN): Domains, Species, Strands,
Complexes with a typed pairing structure, and the Reaction/CRN input records.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Domain: an opaque, role-tagged sequence-constraint unit. Domains come in
    complementary pairs (d, d*); complementation is an involution.
  - Species: the signal encoding of one formal CRN species, an ordered
    (toehold, branch-migration, toehold) domain triple.
  - Complex: one or more strands plus a validated base-pairing Structure.
  - Reaction / CRN: the input boundary supplied by the parser.
  - System: the output boundary, a deduplicated set of Complexes.
*/
package domain
