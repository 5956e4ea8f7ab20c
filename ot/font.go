package ot

import "fmt"

// Font is a narrow, lazily-parsed view of an SFNT font's layout tables:
// GDEF, GSUB and GPOS. It does not know about glyph outlines, cmap, or
// metrics — those stay with the host font implementation (shapefont.Font),
// per its scope cut.
type Font struct {
	raw binarySegm

	hasGDEF bool
	gdef    GDef

	hasGSUB bool
	gsub    LayoutTable

	hasGPOS bool
	gpos    LayoutTable
}

// ParseFont scans an SFNT table directory in data and parses whichever of
// GDEF/GSUB/GPOS are present. Tables this package doesn't understand are
// left untouched in data and simply not indexed.
func ParseFont(data []byte) (*Font, error) {
	b := binarySegm(data)
	if len(b) < 12 {
		return nil, fmt.Errorf("ot: font data too short for an SFNT header (%d bytes)", len(b))
	}
	numTables, err := b.u16(4)
	if err != nil {
		return nil, fmt.Errorf("ot: cannot read SFNT table count: %w", err)
	}
	f := &Font{raw: b}
	const dirEntrySize = 16
	for i := 0; i < int(numTables); i++ {
		rec := b.sub(12+i*dirEntrySize, dirEntrySize)
		if len(rec) < dirEntrySize {
			break
		}
		tag := MakeTag(rec[:4])
		offset, e1 := rec.u32(8)
		length, e2 := rec.u32(12)
		if e1 != nil || e2 != nil {
			continue
		}
		seg, err := b.view(int(offset), int(length))
		if err != nil {
			tracer().Errorf("ot: table %s offset/length out of bounds, skipping", tag.String())
			continue
		}
		switch tag {
		case TagGDEF:
			f.gdef = ParseGDef(seg)
			f.hasGDEF = true
		case TagGSUB:
			if lt, ok := parseLayoutTable(seg); ok {
				f.gsub = lt
				f.hasGSUB = true
			}
		case TagGPOS:
			if lt, ok := parseLayoutTable(seg); ok {
				f.gpos = lt
				f.hasGPOS = true
			}
		}
	}
	return f, nil
}

// ParseLayoutTable structurally decodes a standalone GSUB or GPOS table's
// raw bytes (its ScriptList/FeatureList/LookupList), for hosts that hand
// otshape pre-extracted table blobs instead of a full SFNT stream.
func ParseLayoutTable(data []byte) (LayoutTable, bool) {
	return parseLayoutTable(binarySegm(data))
}

// ParseFontTables builds a Font directly from pre-extracted GDEF/GSUB/
// GPOS table bytes, any of which may be nil. This is the path a
// shapefont.Font protocol implementation uses: it loads each table tag
// itself (its own cmap/hmtx/glyf concerns stay with the host), and hands
// the three blobs here for structural decoding.
func ParseFontTables(gdef, gsub, gpos []byte) *Font {
	f := &Font{}
	if gdef != nil {
		f.gdef = ParseGDef(binarySegm(gdef))
		f.hasGDEF = true
	}
	if gsub != nil {
		if lt, ok := parseLayoutTable(binarySegm(gsub)); ok {
			f.gsub = lt
			f.hasGSUB = true
		}
	}
	if gpos != nil {
		if lt, ok := parseLayoutTable(binarySegm(gpos)); ok {
			f.gpos = lt
			f.hasGPOS = true
		}
	}
	return f
}

// GDef returns the font's GDEF table and whether it was present.
func (f *Font) GDef() (GDef, bool) { return f.gdef, f.hasGDEF }

// GSUB returns the font's GSUB layout table and whether it was present.
func (f *Font) GSUB() (LayoutTable, bool) { return f.gsub, f.hasGSUB }

// GPOS returns the font's GPOS layout table and whether it was present.
func (f *Font) GPOS() (LayoutTable, bool) { return f.gpos, f.hasGPOS }

// HasGSUB reports whether the font carries a GSUB table.
func (f *Font) HasGSUB() bool { return f.hasGSUB }

// HasGPOS reports whether the font carries a GPOS table.
func (f *Font) HasGPOS() bool { return f.hasGPOS }

// Lookup fetches lookup i from GSUB (gsub=true) or GPOS (gsub=false).
func (f *Font) Lookup(gsub bool, i int) (Lookup, bool) {
	if gsub {
		if !f.hasGSUB {
			return Lookup{}, false
		}
		return f.gsub.LookupList.At(i)
	}
	if !f.hasGPOS {
		return Lookup{}, false
	}
	return f.gpos.LookupList.At(i)
}
