/*
Package ot provides low-level, bounds-checked access to the three OpenType
layout tables a complex-text shaper needs: GDEF, GSUB and GPOS.

It does not interpret any other table and does not build a pointer graph over
a font's binary data. Loading a font decodes the GDEF data and the
ScriptList/FeatureList/LookupList headers into small Go values once; each
lookup subtable stays a raw byte segment and is decoded from it, by offset,
when a lookup is applied. Callers
that need family names, metrics, or outlines should consult a companion
package (this module's sfntfont, or golang.org/x/image/font/sfnt directly) —
ot is deliberately narrow.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ot

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otshape.ot'
func tracer() tracing.Trace {
	return tracing.Select("otshape.ot")
}
