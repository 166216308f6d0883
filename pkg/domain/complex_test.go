package domain

import "testing"

func d(name string, role Role) Domain {
	return Domain{Name: name, Role: role, Length: 15}
}

func TestComplement_Involution(t *testing.T) {
	dom := d("m1", RoleBranch)
	if got := dom.Complement().Complement(); got != dom {
		t.Errorf("Complement().Complement() = %v, want %v", got, dom)
	}
	if !dom.ComplementOf(dom.Complement()) {
		t.Error("domain should be complement of its own complement pair")
	}
	if dom.ComplementOf(dom) {
		t.Error("domain must not be its own complement")
	}
}

func TestComplexValidate_Valid(t *testing.T) {
	m, s, f := d("m1", RoleBranch), d("s1", RoleToehold), d("f2", RoleToehold)
	c := &Complex{
		Name: "reactg",
		Kind: KindReactantGate,
		Strands: []Strand{
			{m, s},
			{f},
			{f.Complement(), s.Complement(), m.Complement()},
		},
		Structure: Structure{Pairs: []Pair{
			{A: Position{0, 0}, B: Position{2, 2}},
			{A: Position{0, 1}, B: Position{2, 1}},
			{A: Position{1, 0}, B: Position{2, 0}},
		}},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestComplexValidate_NotComplementary(t *testing.T) {
	a, b := d("x", RoleToehold), d("y", RoleToehold)
	c := &Complex{
		Name:    "bad",
		Strands: []Strand{{a}, {b}},
		Structure: Structure{Pairs: []Pair{
			{A: Position{0, 0}, B: Position{1, 0}},
		}},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("Validate() should reject non-complementary pairing")
	}
}

func TestComplexValidate_DoublePairing(t *testing.T) {
	a := d("x", RoleToehold)
	c := &Complex{
		Name:    "bad",
		Strands: []Strand{{a}, {a.Complement(), a.Complement()}},
		Structure: Structure{Pairs: []Pair{
			{A: Position{0, 0}, B: Position{1, 0}},
			{A: Position{0, 0}, B: Position{1, 1}},
		}},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("Validate() should reject a position paired twice")
	}
}

func TestComplexValidate_Pseudoknot(t *testing.T) {
	a, b := d("x", RoleToehold), d("y", RoleToehold)
	// Crossing spans: x .. y .. x* .. y*
	c := &Complex{
		Name:    "bad",
		Strands: []Strand{{a, b, a.Complement(), b.Complement()}},
		Structure: Structure{Pairs: []Pair{
			{A: Position{0, 0}, B: Position{0, 2}},
			{A: Position{0, 1}, B: Position{0, 3}},
		}},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("Validate() should reject crossing pairs")
	}
}

func TestComplexValidate_OutOfRange(t *testing.T) {
	a := d("x", RoleToehold)
	c := &Complex{
		Name:    "bad",
		Strands: []Strand{{a}},
		Structure: Structure{Pairs: []Pair{
			{A: Position{0, 0}, B: Position{1, 0}},
		}},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("Validate() should reject out-of-range positions")
	}
}

func TestComplexKey_StructuralIdentity(t *testing.T) {
	a := d("h1", RoleBranch)
	f := d("f1", RoleToehold)
	mk := func(name string) *Complex {
		return &Complex{
			Name:    name,
			Strands: []Strand{{a, f}},
		}
	}
	if !mk("one").Equal(mk("two")) {
		t.Error("complexes differing only in name should be structurally equal")
	}

	other := &Complex{Name: "one", Strands: []Strand{{a, f.Complement()}}}
	if mk("one").Equal(other) {
		t.Error("complexes with different domain labels must not be equal")
	}
}
