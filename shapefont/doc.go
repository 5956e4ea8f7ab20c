/*
Package shapefont defines the narrow protocol otshape needs from a host
font: load a table's raw bytes, map a code point to a glyph ID, and
report a glyph's advance. A host implements Font once over whatever font
representation it already has (an in-memory SFNT parser, a system font
API, a test double); shapefont.New eagerly loads GDEF/GSUB/GPOS through it
once, after which only cmap and advance queries go back to the host font.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package shapefont

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.shapefont")
}
