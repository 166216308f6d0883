package compiler

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jphuse/nuskell/pkg/domain"
)

// Default sequence lengths, in nucleotides. Toeholds are short enough to
// bind reversibly; branch-migration domains are long enough to be committed.
const (
	ToeholdLength = 6
	BranchLength  = 15
)

// Allocator issues fresh, uniquely named domains on demand. Every issued
// domain is distinct from all previously issued domains and from its own
// complement (self-complementary domains are disallowed).
//
// The counter is monotone and local to the allocator, so distinct
// compilation runs must not share one allocator unless Reset is called
// in between. All methods are safe for concurrent use.
type Allocator struct {
	mu     sync.Mutex
	next   int
	issued map[string]domain.Role
}

// NewAllocator creates an allocator with a fresh namespace.
func NewAllocator() *Allocator {
	return &Allocator{issued: make(map[string]domain.Role)}
}

// Reset clears the namespace and restarts the counter. The whole domain set
// of a finished run remains valid; Reset only detaches the allocator from it.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next = 0
	a.issued = make(map[string]domain.Role)
}

// Toehold issues a fresh short toehold domain. The style hint, when given,
// becomes a readable name suffix and has no semantic weight.
func (a *Allocator) Toehold(hint string) domain.Domain {
	return a.fresh("t", hint, domain.RoleToehold, ToeholdLength)
}

// Branch issues a fresh branch-migration domain of the given length
// (BranchLength if zero or negative).
func (a *Allocator) Branch(length int) domain.Domain {
	if length <= 0 {
		length = BranchLength
	}
	return a.fresh("m", "", domain.RoleBranch, length)
}

// History issues a fresh history domain disambiguating one reaction instance.
func (a *Allocator) History() domain.Domain {
	return a.fresh("h", "", domain.RoleHistory, BranchLength)
}

// Flux issues a fresh release-handle domain at branch-migration length.
func (a *Allocator) Flux() domain.Domain {
	return a.fresh("l", "", domain.RoleFlux, BranchLength)
}

// Reserve registers an externally chosen domain name. It fails with
// *domain.InvalidDomainError if the name collides with an issued domain or
// denotes a complement (self-complementary names are disallowed).
func (a *Allocator) Reserve(name string, role domain.Role, length int) (domain.Domain, error) {
	if name == "" {
		return domain.Domain{}, &domain.InvalidDomainError{Name: name, Reason: "empty name"}
	}
	if strings.HasSuffix(name, "*") {
		return domain.Domain{}, &domain.InvalidDomainError{Name: name, Reason: "complement names are derived, not allocated"}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.issued[name]; ok {
		return domain.Domain{}, &domain.InvalidDomainError{Name: name, Reason: "name already issued"}
	}
	a.issued[name] = role
	return domain.Domain{Name: name, Role: role, Length: length}, nil
}

func (a *Allocator) fresh(prefix, hint string, role domain.Role, length int) domain.Domain {
	a.mu.Lock()
	defer a.mu.Unlock()
	for {
		a.next++
		name := fmt.Sprintf("%s%d", prefix, a.next)
		if hint != "" {
			name = fmt.Sprintf("%s%d_%s", prefix, a.next, hint)
		}
		if _, ok := a.issued[name]; ok {
			continue
		}
		a.issued[name] = role
		return domain.Domain{Name: name, Role: role, Length: length}
	}
}
