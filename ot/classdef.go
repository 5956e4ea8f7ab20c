package ot

// ClassDef is a parsed OpenType ClassDef table (formats 1 and 2). Class 0 is
// returned for glyphs outside any defined range5/§8.
type ClassDef struct {
	format     int
	data       binarySegm
	startGlyph GlyphIndex // format 1
	count      int
}

// ParseClassDef parses a ClassDef table rooted at b.
func ParseClassDef(b binarySegm) ClassDef {
	format, err := b.u16(0)
	if err != nil {
		return ClassDef{}
	}
	switch format {
	case 1:
		start, err1 := b.u16(2)
		n, err2 := b.u16(4)
		if err1 != nil || err2 != nil {
			return ClassDef{}
		}
		data := b.sub(6, int(n)*2)
		return ClassDef{format: 1, data: data, startGlyph: GlyphIndex(start), count: int(n)}
	case 2:
		n, err := b.u16(2)
		if err != nil {
			return ClassDef{}
		}
		data := b.sub(4, int(n)*6)
		return ClassDef{format: 2, data: data, count: int(n)}
	default:
		tracer().Errorf("classdef: unrecognized format %d", format)
		return ClassDef{}
	}
}

// Class returns the class of glyph g, defaulting to 0 when undefined.
func (c ClassDef) Class(g GlyphIndex) uint16 {
	switch c.format {
	case 1:
		if g < c.startGlyph {
			return 0
		}
		i := int(g - c.startGlyph)
		if i >= c.count {
			return 0
		}
		v, err := c.data.u16(i * 2)
		if err != nil {
			return 0
		}
		return v
	case 2:
		lo, hi := 0, c.count
		for lo < hi {
			mid := (lo + hi) / 2
			start, err1 := c.data.u16(mid * 6)
			end, err2 := c.data.u16(mid*6 + 2)
			class, err3 := c.data.u16(mid*6 + 4)
			if err1 != nil || err2 != nil || err3 != nil {
				return 0
			}
			switch {
			case g < GlyphIndex(start):
				hi = mid
			case g > GlyphIndex(end):
				lo = mid + 1
			default:
				return class
			}
		}
		return 0
	default:
		return 0
	}
}
