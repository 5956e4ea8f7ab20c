/*
Package album implements the mutable working buffer of a single shaping
run: the glyph sequence produced by substitution, the parallel detail/
position/advance sequences filled in during positioning, and the final
code-unit-to-glyph map a caller needs to relate shaped output back to its
source text.

An Album moves through a strict lifecycle (Empty -> Filling -> Filled ->
Arranging -> Arranged); each phase exposes only the operations meaningful
for it.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package album

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.album")
}
