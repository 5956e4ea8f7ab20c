/*
Package sfntfont implements shapefont.Font over golang.org/x/image/font/
sfnt: cmap lookups and glyph advances come from the sfnt package's own
table parsing, while GDEF/GSUB/GPOS table bytes are extracted by scanning
the SFNT table directory directly (golang.org/x/image/font/sfnt does not
expose those tables; otshape's own ot package decodes them instead).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sfntfont

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.sfntfont")
}
