package compiler

import (
	"sync"

	"github.com/jphuse/nuskell/pkg/domain"
)

// Registry is the per-run species cache. It allocates the (f, m, s) domain
// triple for a CRN species name on first reference and returns the identical
// shared triple on every later reference. That sharing is what keeps the
// recognition domains of a species compatible across every gate that
// consumes or produces it.
type Registry struct {
	mu     sync.Mutex
	alloc  *Allocator
	byName map[string]*domain.Species
	order  []string
}

// NewRegistry creates an empty registry bound to an allocator.
func NewRegistry(alloc *Allocator) *Registry {
	return &Registry{
		alloc:  alloc,
		byName: make(map[string]*domain.Species),
	}
}

// Species returns the cached triple for name, allocating it on first call.
func (r *Registry) Species(name string) *domain.Species {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sp, ok := r.byName[name]; ok {
		return sp
	}
	sp := &domain.Species{
		Name: name,
		F:    r.alloc.Toehold(name),
		M:    r.alloc.Branch(0),
		S:    r.alloc.Toehold(name),
	}
	r.byName[name] = sp
	r.order = append(r.order, name)
	return sp
}

// All returns every registered species in first-reference order.
func (r *Registry) All() []*domain.Species {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Species, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}
