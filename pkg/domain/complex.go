package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Strand is an ordered 5'->3' sequence of domains.
type Strand []Domain

// Kind tags the functional role of a complex within the compiled system.
type Kind string

const (
	// KindFuel is a synthesized fuel signal standing in for a missing reactant.
	KindFuel Kind = "fuel"
	// KindReactantGate is a junction complex of the reactant-side cascade.
	KindReactantGate Kind = "reactant-gate"
	// KindProductGate is a product-side release complex.
	KindProductGate Kind = "product-gate"
	// KindFlux is the signal complex carrying output from the reactant side
	// to the downstream product side.
	KindFlux Kind = "flux"
	// KindHelper is an auxiliary strand supporting a multi-product cascade.
	KindHelper Kind = "helper"
)

// Position addresses a single domain within a complex.
type Position struct {
	Strand int `json:"strand" yaml:"strand"`
	Index  int `json:"index" yaml:"index"`
}

// Pair records one base-paired duplex between two domain positions.
type Pair struct {
	A Position `json:"a" yaml:"a"`
	B Position `json:"b" yaml:"b"`
}

// Structure is the typed base-pairing of a complex, replacing the dot-bracket
// strings of the original scheme. It is valid only if every pair connects
// mutually complementary domains and the pairing is balanced (no pseudoknots
// across the linearized strand order).
type Structure struct {
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// Complex is a DNA structure: one or more strands plus a pairing Structure.
// Complexes are immutable once built by a gate builder.
type Complex struct {
	Name      string    `json:"name" yaml:"name"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	Strands   []Strand  `json:"strands" yaml:"strands"`
	Structure Structure `json:"structure" yaml:"structure"`

	// Unbounded marks infinite-supply (catalytic fuel) semantics: the complex
	// is present in unbounded copies, not consumed by a single reaction event.
	Unbounded bool `json:"unbounded" yaml:"unbounded"`
}

// domainAt resolves a position to its domain, or an error if out of range.
func (c *Complex) domainAt(p Position) (Domain, error) {
	if p.Strand < 0 || p.Strand >= len(c.Strands) {
		return Domain{}, fmt.Errorf("strand %d out of range (complex has %d strands)", p.Strand, len(c.Strands))
	}
	s := c.Strands[p.Strand]
	if p.Index < 0 || p.Index >= len(s) {
		return Domain{}, fmt.Errorf("index %d out of range on strand %d (len %d)", p.Index, p.Strand, len(s))
	}
	return s[p.Index], nil
}

// linear maps a position onto the concatenated strand order, used for the
// nesting check.
func (c *Complex) linear(p Position) int {
	n := 0
	for i := 0; i < p.Strand; i++ {
		n += len(c.Strands[i])
	}
	return n + p.Index
}

// Validate checks the structural invariants of the complex:
// every paired position is in range and paired exactly once, paired domains
// are mutual complements, and the pairing nests without crossings.
func (c *Complex) Validate() error {
	if len(c.Strands) == 0 {
		return fmt.Errorf("complex %q has no strands", c.Name)
	}
	for i, s := range c.Strands {
		if len(s) == 0 {
			return fmt.Errorf("complex %q: strand %d is empty", c.Name, i)
		}
	}

	type span struct{ lo, hi int }
	spans := make([]span, 0, len(c.Structure.Pairs))
	seen := make(map[int]bool)

	for _, pr := range c.Structure.Pairs {
		da, err := c.domainAt(pr.A)
		if err != nil {
			return fmt.Errorf("complex %q: %w", c.Name, err)
		}
		db, err := c.domainAt(pr.B)
		if err != nil {
			return fmt.Errorf("complex %q: %w", c.Name, err)
		}
		if !da.ComplementOf(db) {
			return fmt.Errorf("complex %q: pair %s/%s is not complementary", c.Name, da, db)
		}
		la, lb := c.linear(pr.A), c.linear(pr.B)
		if seen[la] || seen[lb] {
			return fmt.Errorf("complex %q: position paired twice", c.Name)
		}
		seen[la], seen[lb] = true, true
		if la > lb {
			la, lb = lb, la
		}
		spans = append(spans, span{la, lb})
	}

	// Balanced nesting: no two duplex spans may cross.
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[j].lo >= spans[i].hi {
				break
			}
			if spans[j].hi > spans[i].hi {
				return fmt.Errorf("complex %q: crossing pairs (pseudoknot)", c.Name)
			}
		}
	}
	return nil
}

// Key returns the canonical structural identity of the complex: same strands,
// same structure, same domain labels. Names and kind tags do not participate,
// so two builders emitting the same physical complex deduplicate.
func (c *Complex) Key() string {
	var sb strings.Builder
	for i, s := range c.Strands {
		if i > 0 {
			sb.WriteByte('+')
		}
		for j, d := range s {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(d.Role))
			sb.WriteByte(':')
			sb.WriteString(d.String())
		}
	}
	pairs := make([]string, 0, len(c.Structure.Pairs))
	for _, pr := range c.Structure.Pairs {
		la, lb := c.linear(pr.A), c.linear(pr.B)
		if la > lb {
			la, lb = lb, la
		}
		pairs = append(pairs, fmt.Sprintf("%d-%d", la, lb))
	}
	sort.Strings(pairs)
	sb.WriteByte('|')
	sb.WriteString(strings.Join(pairs, ","))
	return sb.String()
}

// Equal reports structural equality, the only identity the compiler uses
// when unioning complex sets.
func (c *Complex) Equal(o *Complex) bool {
	return c.Key() == o.Key()
}
