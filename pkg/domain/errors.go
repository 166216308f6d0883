package domain

import (
	"errors"
	"fmt"
)

// ErrSystemNotFound is returned when a system ID cannot be found in a store.
var ErrSystemNotFound = errors.New("system not found")

// InvalidDomainError reports a naming collision or a self-complement attempt
// against the domain allocator.
type InvalidDomainError struct {
	Name   string
	Reason string
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("invalid domain %q: %s", e.Name, e.Reason)
}

// ArityMismatchError reports a negative or otherwise malformed
// reactant/product count handed to a gate builder.
type ArityMismatchError struct {
	Side  string // "reactants" or "products"
	Count int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch: invalid %s list (count %d)", e.Side, e.Count)
}

// MalformedReactionError reports an internally inconsistent reaction. A single
// malformed reaction aborts the whole CRN compilation: a partially-correct
// DSD system is unsafe to emit.
type MalformedReactionError struct {
	Index  int // position in the expanded (irreversible) reaction list
	Reason string
}

func (e *MalformedReactionError) Error() string {
	return fmt.Sprintf("malformed reaction %d: %s", e.Index, e.Reason)
}
