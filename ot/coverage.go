package ot

// InvalidCoverageIndex is returned by Coverage.Index when a glyph is not
// covered.
const InvalidCoverageIndex = -1

// Coverage is a parsed OpenType Coverage table (formats 1 and 2). It answers
// "is glyph g covered, and at which coverage index" via binary search, per
// the OpenType spec
type Coverage struct {
	format int
	data   binarySegm // glyph array (fmt 1) or range records (fmt 2)
	count  int
}

// ParseCoverage parses a Coverage table rooted at b (b[0] is the coverage
// format field).
func ParseCoverage(b binarySegm) Coverage {
	format, err := b.u16(0)
	if err != nil {
		return Coverage{}
	}
	switch format {
	case 1:
		n, err := b.u16(2)
		if err != nil {
			return Coverage{}
		}
		data := b.sub(4, int(n)*2)
		return Coverage{format: 1, data: data, count: int(n)}
	case 2:
		n, err := b.u16(2)
		if err != nil {
			return Coverage{}
		}
		data := b.sub(4, int(n)*6)
		return Coverage{format: 2, data: data, count: int(n)}
	default:
		tracer().Errorf("coverage: unrecognized format %d", format)
		return Coverage{}
	}
}

// Count returns the number of glyphs covered, or 0 for an unparsed table.
func (c Coverage) Count() int {
	return c.count
}

// Index returns the coverage index of glyph g, and true if g is covered.
func (c Coverage) Index(g GlyphIndex) (int, bool) {
	switch c.format {
	case 1:
		lo, hi := 0, c.count
		for lo < hi {
			mid := (lo + hi) / 2
			v, err := c.data.u16(mid * 2)
			if err != nil {
				return InvalidCoverageIndex, false
			}
			gv := GlyphIndex(v)
			switch {
			case gv == g:
				return mid, true
			case gv < g:
				lo = mid + 1
			default:
				hi = mid
			}
		}
		return InvalidCoverageIndex, false
	case 2:
		lo, hi := 0, c.count
		for lo < hi {
			mid := (lo + hi) / 2
			start, err1 := c.data.u16(mid * 6)
			end, err2 := c.data.u16(mid*6 + 2)
			startIdx, err3 := c.data.u16(mid*6 + 4)
			if err1 != nil || err2 != nil || err3 != nil {
				return InvalidCoverageIndex, false
			}
			switch {
			case g < GlyphIndex(start):
				hi = mid
			case g > GlyphIndex(end):
				lo = mid + 1
			default:
				return int(startIdx) + int(g-GlyphIndex(start)), true
			}
		}
		return InvalidCoverageIndex, false
	default:
		return InvalidCoverageIndex, false
	}
}

// Contains reports whether g is covered.
func (c Coverage) Contains(g GlyphIndex) bool {
	_, ok := c.Index(g)
	return ok
}
