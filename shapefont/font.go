package shapefont

import "github.com/glyphforge/otshape/ot"

// Layout selects which of a font's two advance directions a glyph's
// advance is measured in.
type Layout int

const (
	LayoutHorizontal Layout = iota
	LayoutVertical
)

// Font is the protocol a host font implementation provides. It mirrors
// the three operations otshape genuinely needs and nothing else: hosts
// that already parse their own cmap/hmtx/glyf tables (sfntfont, or a
// custom font backend) implement this directly instead of handing
// otshape a full SFNT byte stream to re-parse.
type Font interface {
	// LoadTable returns the raw bytes of the table named by tag, and
	// false if the font carries no such table.
	LoadTable(tag ot.Tag) ([]byte, bool)
	// GlyphIDForCodepoint maps a Unicode code point to a glyph ID via the
	// font's cmap, returning 0 (.notdef) for unmapped code points.
	GlyphIDForCodepoint(codepoint rune) ot.GlyphIndex
	// AdvanceForGlyph returns a glyph's advance width (layout ==
	// LayoutHorizontal) or height (LayoutVertical), in font design units.
	AdvanceForGlyph(layout Layout, glyph ot.GlyphIndex) int32
}

// ShapingFont wraps a host Font, eagerly loading and structurally
// decoding its GDEF/GSUB/GPOS tables once at creation time; every
// subsequent lookup (Coverage/ClassDef walks, context matching, feature
// unit application) runs against the decoded *ot.Font instead of calling
// back into the host.
type ShapingFont struct {
	host Font
	ot   *ot.Font
}

// New loads and decodes protocol's GDEF/GSUB/GPOS tables, returning a
// ShapingFont ready for scheme.Scheme.SetFont / engine processing.
func New(protocol Font) *ShapingFont {
	gdef, _ := protocol.LoadTable(ot.T("GDEF"))
	gsub, _ := protocol.LoadTable(ot.T("GSUB"))
	gpos, _ := protocol.LoadTable(ot.T("GPOS"))
	return &ShapingFont{
		host: protocol,
		ot:   ot.ParseFontTables(gdef, gsub, gpos),
	}
}

// Layout returns the decoded GDEF/GSUB/GPOS view used by pattern/scheme/
// apply/attach.
func (f *ShapingFont) Layout() *ot.Font { return f.ot }

// GlyphIDForCodepoint delegates to the host font's cmap.
func (f *ShapingFont) GlyphIDForCodepoint(codepoint rune) ot.GlyphIndex {
	return f.host.GlyphIDForCodepoint(codepoint)
}

// AdvanceForGlyph delegates to the host font's metrics table.
func (f *ShapingFont) AdvanceForGlyph(layout Layout, glyph ot.GlyphIndex) int32 {
	return f.host.AdvanceForGlyph(layout, glyph)
}
