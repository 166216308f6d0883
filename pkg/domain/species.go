package domain

// Species is the signal encoding of one formal CRN species: an ordered
// (toehold F, branch-migration M, toehold S) domain triple.
//
// Species are shared, not copied. Every occurrence of the same species name,
// across all reactions of a CRN, must resolve to the identical triple so that
// recognition domains line up between the gates that consume and produce it.
type Species struct {
	Name string `json:"name" yaml:"name"`
	F    Domain `json:"f" yaml:"f"`
	M    Domain `json:"m" yaml:"m"`
	S    Domain `json:"s" yaml:"s"`
}

// Signal returns the free signal strand for the species: [F M S].
func (sp *Species) Signal() Strand {
	return Strand{sp.F, sp.M, sp.S}
}
