/*
Package nuskell compiles abstract chemical reaction networks (CRNs) into DNA
strand-displacement (DSD) systems.

Each reaction is implemented as a cascade of nucleic-acid gate complexes
following a fixed three-domain architecture (toehold / branch-migration /
secondary-toehold), with explicit history domains to suppress spurious
crosstalk between reaction instances. The output is a set of abstract
complexes (strands plus a typed pairing structure over named domains), ready
for an external sequence designer.

# Scope

The engine is a pure structural compiler. Sequence-level nucleotide design,
thermodynamics, kinetic rate prediction and simulation are external
collaborators, not part of this module.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/jphuse/nuskell"
	)

	func main() {
		eng := nuskell.New()
		sys, err := eng.CompileString("A + B -> C\nC <=> A")
		if err != nil {
			log.Fatal(err)
		}
		for _, c := range sys.Complexes {
			fmt.Println(c.Name, len(c.Strands), "strands")
		}
	}

The CLI (cmd/nuskell), HTTP and MCP adapters are thin surfaces over the same
Compile entry point.
*/
package nuskell
