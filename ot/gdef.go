package ot

// GDef glyph classes, per the OpenType GDEF GlyphClassDef table.
const (
	GlyphClassNone      = 0
	GlyphClassBase      = 1
	GlyphClassLigature  = 2
	GlyphClassMark      = 3
	GlyphClassComponent = 4
)

// GDef is a parsed GDEF table: glyph class definitions, mark-attachment
// class definitions, and mark glyph coverage sets. Only the parts the
// shaping pipeline consults are exposed (the OpenType spec: GDEF is otherwise out
// of scope).
type GDef struct {
	glyphClassDef     ClassDef
	hasGlyphClassDef  bool
	markAttachClassDf ClassDef
	hasMarkAttachDef  bool
	markGlyphSets     []Coverage
}

// ParseGDef parses a GDEF table rooted at b. A zero-value GDef (no class
// defs, no mark filtering sets) is returned for malformed input — GDEF
// absence or malformation never fails shaping, it just disables the
// features that consult it.
func ParseGDef(b binarySegm) GDef {
	var g GDef
	if len(b) < 12 {
		return g
	}
	minor, err := b.u16(2)
	if err != nil {
		return g
	}
	glyphClassOff, err := b.u16(4)
	if err == nil && glyphClassOff != 0 {
		if seg, err := b.view(int(glyphClassOff), len(b)-int(glyphClassOff)); err == nil {
			g.glyphClassDef = ParseClassDef(seg)
			g.hasGlyphClassDef = true
		}
	}
	markAttachOff, err := b.u16(10)
	if err == nil && markAttachOff != 0 {
		if seg, err := b.view(int(markAttachOff), len(b)-int(markAttachOff)); err == nil {
			g.markAttachClassDf = ParseClassDef(seg)
			g.hasMarkAttachDef = true
		}
	}
	// MarkGlyphSetsDef is present from GDEF table minor version 2 onward,
	// addressed at byte offset 12 (right after the four header offsets).
	if minor >= 2 && len(b) >= 14 {
		markGlyphSetsOff, err := b.u16(12)
		if err == nil && markGlyphSetsOff != 0 {
			if seg, err := b.view(int(markGlyphSetsOff), len(b)-int(markGlyphSetsOff)); err == nil {
				g.markGlyphSets = parseMarkGlyphSets(seg)
			}
		}
	}
	return g
}

func parseMarkGlyphSets(b binarySegm) []Coverage {
	n, err := b.u16(2)
	if err != nil {
		return nil
	}
	sets := make([]Coverage, 0, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u32(4 + i*4)
		if err != nil || off == 0 {
			sets = append(sets, Coverage{})
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			sets = append(sets, Coverage{})
			continue
		}
		sets = append(sets, ParseCoverage(seg))
	}
	return sets
}

// GlyphClass returns the GDEF glyph class for g (GlyphClassNone if GDEF is
// absent or g is unclassified).
func (g GDef) GlyphClass(glyph GlyphIndex) uint16 {
	if !g.hasGlyphClassDef {
		return GlyphClassNone
	}
	return g.glyphClassDef.Class(glyph)
}

// MarkAttachClass returns the mark-attachment class of glyph (0 if GDEF
// carries no MarkAttachClassDef).
func (g GDef) MarkAttachClass(glyph GlyphIndex) uint16 {
	if !g.hasMarkAttachDef {
		return 0
	}
	return g.markAttachClassDf.Class(glyph)
}

// InMarkFilteringSet reports whether glyph is covered by mark glyph set
// setIndex. An out-of-range setIndex, or the absence of mark glyph sets,
// reports false (the glyph is filtered out
func (g GDef) InMarkFilteringSet(setIndex uint16, glyph GlyphIndex) bool {
	if int(setIndex) >= len(g.markGlyphSets) {
		return false
	}
	return g.markGlyphSets[setIndex].Contains(glyph)
}
