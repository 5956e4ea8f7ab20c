/*
Package apply executes one GSUB or GPOS lookup against an Album at a
locator's current position: it dispatches on lookup type to the matching
ot subtable parser/Apply method, mutates the Album (substitution) or its
position/advance slots (positioning), and — for the context and
chaining-context lookup types — matches backtrack/input/lookahead
sequences and recurses into nested lookups.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package apply

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.apply")
}
