package domain

// Role classifies the sequence-design constraint a domain carries.
type Role string

const (
	// RoleToehold marks a short domain that initiates strand displacement.
	RoleToehold Role = "toehold"
	// RoleBranch marks a long branch-migration domain.
	RoleBranch Role = "branch"
	// RoleHistory marks a per-reaction disambiguation domain.
	RoleHistory Role = "history"
	// RoleFlux marks a release-handle domain carrying signal between gates.
	RoleFlux Role = "flux"
)

// Domain is an opaque named sequence-constraint unit. Domains come in
// complementary pairs; Starred marks the complement side (d*). A Domain is
// immutable once allocated and globally unique per compilation run.
type Domain struct {
	Name    string `json:"name" yaml:"name"`
	Role    Role   `json:"role" yaml:"role"`
	Length  int    `json:"length,omitempty" yaml:"length,omitempty"`
	Starred bool   `json:"starred,omitempty" yaml:"starred,omitempty"`
}

// Complement returns the complementary domain. Complementation is an
// involution: d.Complement().Complement() == d.
func (d Domain) Complement() Domain {
	d.Starred = !d.Starred
	return d
}

// ComplementOf reports whether d and other form a complementary pair.
func (d Domain) ComplementOf(other Domain) bool {
	return d.Name == other.Name && d.Role == other.Role && d.Starred != other.Starred
}

// IsZero reports whether d is the zero Domain (no allocation behind it).
func (d Domain) IsZero() bool {
	return d.Name == ""
}

// String renders the domain label, with a trailing "*" on the complement.
func (d Domain) String() string {
	if d.Starred {
		return d.Name + "*"
	}
	return d.Name
}
