package compiler

import (
	"errors"
	"testing"

	"github.com/jphuse/nuskell/pkg/domain"
)

func TestAllocator_FreshDomainsAreUnique(t *testing.T) {
	alloc := NewAllocator()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		for _, d := range []domain.Domain{
			alloc.Toehold(""), alloc.Branch(0), alloc.History(), alloc.Flux(),
		} {
			if seen[d.Name] {
				t.Fatalf("duplicate domain name %q", d.Name)
			}
			seen[d.Name] = true
		}
	}
}

func TestAllocator_Roles(t *testing.T) {
	alloc := NewAllocator()
	if got := alloc.Toehold("A").Role; got != domain.RoleToehold {
		t.Errorf("Toehold role = %v", got)
	}
	if got := alloc.Branch(0).Role; got != domain.RoleBranch {
		t.Errorf("Branch role = %v", got)
	}
	if got := alloc.History().Role; got != domain.RoleHistory {
		t.Errorf("History role = %v", got)
	}
	if got := alloc.Flux().Role; got != domain.RoleFlux {
		t.Errorf("Flux role = %v", got)
	}
	if got := alloc.Branch(0).Length; got != BranchLength {
		t.Errorf("default branch length = %d, want %d", got, BranchLength)
	}
}

func TestAllocator_ReserveCollision(t *testing.T) {
	alloc := NewAllocator()
	if _, err := alloc.Reserve("probe", domain.RoleToehold, ToeholdLength); err != nil {
		t.Fatalf("first Reserve failed: %v", err)
	}

	_, err := alloc.Reserve("probe", domain.RoleToehold, ToeholdLength)
	var invalid *domain.InvalidDomainError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDomainError on collision, got %v", err)
	}
}

func TestAllocator_RejectsComplementNames(t *testing.T) {
	alloc := NewAllocator()
	_, err := alloc.Reserve("d*", domain.RoleBranch, BranchLength)
	var invalid *domain.InvalidDomainError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDomainError for complement name, got %v", err)
	}
}

func TestAllocator_Reset(t *testing.T) {
	alloc := NewAllocator()
	first := alloc.Toehold("")
	alloc.Reset()
	again := alloc.Toehold("")
	if first.Name != again.Name {
		t.Errorf("after Reset, naming should restart: got %q then %q", first.Name, again.Name)
	}
}
