/*
Package engine implements per-script shaping engines: a script-specific
pass over an album's glyph sequence that runs before GSUB/GPOS lookups
are applied, assigning feature-mask bits a compiled pattern.Pattern's
feature units then select on (e.g. an Arabic glyph's isolated/initial/
medial/final joining form).

Every engine implements the single Engine interface; the text processor
picks one through ForScript: Arabic for scripts whose shaping knowledge
resolves to the Arabic table, and Standard (a no-op pass) for every
other script.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package engine

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.engine")
}
