package sfntfont

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/glyphforge/otshape/ot"
	"github.com/glyphforge/otshape/shapefont"
)

// Font adapts an in-memory SFNT byte stream to shapefont.Font: cmap
// lookups and glyph advances are delegated to golang.org/x/image/font/
// sfnt, while LoadTable scans the SFNT table directory directly, since
// that library does not expose GDEF/GSUB/GPOS bytes.
type Font struct {
	raw []byte
	f   *sfnt.Font
	buf sfnt.Buffer
}

var _ shapefont.Font = (*Font)(nil)

// Parse decodes an SFNT byte stream (TrueType or CFF-flavored OpenType).
func Parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sfntfont: %w", err)
	}
	return &Font{raw: data, f: f}, nil
}

// LoadTable scans the SFNT table directory for tag, returning its raw
// bytes.
func (sf *Font) LoadTable(tag ot.Tag) ([]byte, bool) {
	b := sf.raw
	if len(b) < 12 {
		return nil, false
	}
	numTables := int(b[4])<<8 | int(b[5])
	const dirEntrySize = 16
	for i := 0; i < numTables; i++ {
		recStart := 12 + i*dirEntrySize
		if recStart+dirEntrySize > len(b) {
			break
		}
		rec := b[recStart : recStart+dirEntrySize]
		recTag := ot.MakeTag(rec[:4])
		if recTag != tag {
			continue
		}
		offset := uint32(rec[8])<<24 | uint32(rec[9])<<16 | uint32(rec[10])<<8 | uint32(rec[11])
		length := uint32(rec[12])<<24 | uint32(rec[13])<<16 | uint32(rec[14])<<8 | uint32(rec[15])
		end := int(offset) + int(length)
		if int(offset) < 0 || end > len(b) || end < int(offset) {
			return nil, false
		}
		return b[offset:end], true
	}
	return nil, false
}

// GlyphIDForCodepoint maps codepoint through the font's cmap.
func (sf *Font) GlyphIDForCodepoint(codepoint rune) ot.GlyphIndex {
	gid, err := sf.f.GlyphIndex(&sf.buf, codepoint)
	if err != nil {
		tracer().Debugf("sfntfont: cmap lookup for %q failed: %v", codepoint, err)
		return 0
	}
	return ot.GlyphIndex(gid)
}

// AdvanceForGlyph returns glyph's advance in font design units. Vertical
// advances fall back to the horizontal metric: golang.org/x/image/font/
// sfnt does not expose a vmtx reader.
func (sf *Font) AdvanceForGlyph(layout shapefont.Layout, glyph ot.GlyphIndex) int32 {
	unitsPerEm, err := sf.f.UnitsPerEm()
	if err != nil {
		return 0
	}
	adv, err := sf.f.GlyphAdvance(&sf.buf, sfnt.GlyphIndex(glyph), fixed.I(int(unitsPerEm)), 0)
	if err != nil {
		tracer().Debugf("sfntfont: advance lookup for glyph %d failed: %v", glyph, err)
		return 0
	}
	return int32(adv.Round())
}
