package domain

// Reaction is one CRN reaction over species names. Stoichiometric
// multipliers are already flattened into repeated occurrences by the parser.
type Reaction struct {
	Reactants []string `json:"reactants" yaml:"reactants"`
	Products  []string `json:"products" yaml:"products"`

	// Reversible reactions are split into two irreversible instances
	// (forward before backward) prior to gate compilation.
	Reversible bool `json:"reversible" yaml:"reversible"`

	// Optional rate annotations from the source text. The translation
	// ignores them (kinetics are out of scope) but keeps them for
	// downstream tooling. RateR is only set on reversible reactions.
	RateF *float64 `json:"rate_f,omitempty" yaml:"rate_f,omitempty"`
	RateR *float64 `json:"rate_r,omitempty" yaml:"rate_r,omitempty"`
}

// Forward returns the irreversible forward instance of the reaction.
func (r Reaction) Forward() Reaction {
	return Reaction{Reactants: r.Reactants, Products: r.Products, RateF: r.RateF}
}

// Backward returns the irreversible backward instance (products -> reactants).
// Only meaningful for reversible reactions.
func (r Reaction) Backward() Reaction {
	return Reaction{Reactants: r.Products, Products: r.Reactants, RateF: r.RateR}
}

// CRN is the input boundary: an ordered list of reactions plus the species
// classification sets recovered by the parser.
type CRN struct {
	Reactions []Reaction `json:"reactions" yaml:"reactions"`

	// Formals is the sorted set of all formal species (declared plus every
	// species referenced by a reaction).
	Formals []string `json:"formals,omitempty" yaml:"formals,omitempty"`
	// Signals defaults to Formals when not declared.
	Signals []string `json:"signals,omitempty" yaml:"signals,omitempty"`
	// Fuels are constant-concentration species. A species may not be both
	// signal and fuel.
	Fuels []string `json:"fuels,omitempty" yaml:"fuels,omitempty"`
}

// System is the output boundary: the deduplicated set of complexes
// implementing the CRN, plus the shared species table used to build them.
type System struct {
	Species   []*Species `json:"species" yaml:"species"`
	Complexes []*Complex `json:"complexes" yaml:"complexes"`
}

// ByKind returns the complexes carrying the given kind tag, in output order.
func (s *System) ByKind(k Kind) []*Complex {
	var out []*Complex
	for _, c := range s.Complexes {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}
