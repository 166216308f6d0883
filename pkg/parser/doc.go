/*
Package parser converts raw CRN text into domain.CRN values.

The input language is a list of reactions, optionally annotated with rates
and followed by species classification sets:

	# <- this is a comment!
	B + B -> C    # [k = 1]
	C + A <=> D   # [kf = 1, kr = 1]

	# Multiple reactions per line, stoichiometric multipliers:
	A + 2C -> E [k = 13.78]; E + F <=> 2A [kf = 13, kr = 14]

	formals = {A, B, C}
	fuels = {F}

Multipliers are flattened into repeated species occurrences. The formal set
defaults to every referenced species, the signal set defaults to the formal
set, and declaring a species as both signal and fuel is an error.
*/
package parser
