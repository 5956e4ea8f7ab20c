package apply

import (
	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/locator"
	"github.com/glyphforge/otshape/ot"
)

// ApplyGPOSLookup tries lookup's subtables, in order, against the glyph(s)
// at loc's current position, applying (and stopping at) the first one that
// matches. It returns false if none did. The Album must already be in
// StateArranging, and the caller must already have called
// loc.SetLookupFlag/SetMarkFilteringSet for lookup before loc's driving
// MoveNext loop began.
func ApplyGPOSLookup(font *ot.Font, lookup ot.Lookup, alb *album.Album, loc *locator.Locator) bool {
	glyph := alb.Glyph(loc.Index())
	for i := 0; i < lookup.SubtableCount(); i++ {
		if applyGPOSSubtable(font, lookup.Type, lookup.Flag, lookup.RawSubtable(i), alb, loc, glyph) {
			return true
		}
	}
	return false
}

func applyGPOSSubtable(font *ot.Font, lookupType uint16, flag ot.LookupFlag, raw []byte, alb *album.Album, loc *locator.Locator, glyph ot.GlyphIndex) bool {
	idx := loc.Index()
	switch lookupType {
	case ot.GPOSSingle:
		s := ot.ParseSinglePos(raw)
		v, ok := s.Apply(glyph)
		if !ok {
			return false
		}
		applyValueRecord(alb, idx, v)
		return true
	case ot.GPOSPair:
		p := ot.ParsePairPos(raw)
		second, ok := loc.GetAfter(idx + 1)
		if !ok {
			return false
		}
		v1, v2, ok := p.Apply(glyph, alb.Glyph(second))
		if !ok {
			return false
		}
		applyValueRecord(alb, idx, v1)
		applyValueRecord(alb, second, v2)
		loc.JumpTo(second)
		return true
	case ot.GPOSCursive:
		return applyCursiveAttachment(font, flag, raw, alb, loc, glyph)
	case ot.GPOSMarkToBase:
		m := ot.ParseMarkToBasePos(raw)
		base, ok := loc.GetBefore(idx - 1)
		if !ok {
			return false
		}
		markAnchor, baseAnchor, ok := m.Anchors(glyph, alb.Glyph(base))
		if !ok {
			return false
		}
		return attachMark(alb, idx, base, markAnchor, baseAnchor)
	case ot.GPOSMarkToLigature:
		m := ot.ParseMarkToLigaturePos(raw)
		lig, ok := loc.GetBefore(idx - 1)
		if !ok {
			return false
		}
		markAnchor, ligAnchor, ok := m.Anchors(glyph, alb.Glyph(lig), ligatureComponent(alb, lig, idx))
		if !ok {
			return false
		}
		return attachMark(alb, idx, lig, markAnchor, ligAnchor)
	case ot.GPOSMarkToMark:
		m := ot.ParseMarkToMarkPos(raw)
		loc.SetRespectPlaceholder(true)
		base, ok := loc.GetBefore(idx - 1)
		loc.SetRespectPlaceholder(false)
		if !ok {
			return false
		}
		if alb.Traits(base).Has(album.TraitPlaceholder) {
			// A ligature component boundary blocks mark-to-mark attachment.
			return false
		}
		markAnchor, baseAnchor, ok := m.Anchors(glyph, alb.Glyph(base))
		if !ok {
			return false
		}
		return attachMark(alb, idx, base, markAnchor, baseAnchor)
	case ot.GPOSContext:
		sc := ot.ParseSequenceContext(raw)
		return applySequenceContext(font, false, sc, alb, loc)
	case ot.GPOSChainingContext:
		cc := ot.ParseChainedSequenceContext(raw)
		return applyChainedSequenceContext(font, false, cc, alb, loc)
	case ot.GPOSExtension:
		e := ot.ParseExtensionPos(raw)
		return applyGPOSSubtable(font, e.ExtensionLookupType, flag, e.Extension, alb, loc, glyph)
	default:
		tracer().Errorf("apply: unsupported GPOS lookup type %d", lookupType)
		return false
	}
}

// applyValueRecord writes a ValueRecord's placement/advance deltas onto
// glyph i. Placement and advance coordinates are additive adjustments on
// top of the font's default metrics, per the GPOS ValueRecord contract.
func applyValueRecord(alb *album.Album, i int, v ot.ValueRecord) {
	if v.XPlacement != 0 || v.YPlacement != 0 {
		alb.SetX(i, alb.Position(i).X+int32(v.XPlacement))
		alb.SetY(i, alb.Position(i).Y+int32(v.YPlacement))
	}
	if v.XAdvance != 0 {
		alb.SetAdvance(i, alb.Advance(i)+int32(v.XAdvance))
	}
}

// applyCursiveAttachment positions the glyph pair so the first glyph's
// exit point coincides with the second glyph's entry point. The first
// glyph's advance is rewritten to land exactly on its own exit x; the
// second glyph's x is set to -entry.x so that, once the pen has moved by
// that rewritten advance, the two anchors coincide. The y adjustment (and
// the cursive chain it belongs to) is only locally correct here; attach.
// ResolveAttachments accumulates it across a whole cursive run.
func applyCursiveAttachment(font *ot.Font, flag ot.LookupFlag, raw []byte, alb *album.Album, loc *locator.Locator, glyph ot.GlyphIndex) bool {
	idx := loc.Index()
	c := ot.ParseCursivePos(raw)
	entry, _, ok := c.EntryExit(glyph)
	if !ok || !entry.Valid() {
		return false
	}
	prev, ok := loc.GetBefore(idx - 1)
	if !ok {
		return false
	}
	_, prevExit, ok := c.EntryExit(alb.Glyph(prev))
	if !ok || !prevExit.Valid() {
		return false
	}
	alb.SetAdvance(prev, alb.Position(prev).X+int32(prevExit.X))
	alb.SetX(idx, -int32(entry.X))
	dy := int32(prevExit.Y) - int32(entry.Y)
	if flag&ot.LookupFlagRightToLeft != 0 {
		dy = -dy
	}
	alb.SetY(idx, dy)
	if !attachLink(alb, prev, idx, alb.SetCursiveOffset) {
		return false
	}
	alb.InsertHelperTraits(prev, album.TraitCursive)
	alb.InsertHelperTraits(idx, album.TraitCursive)
	if flag&ot.LookupFlagRightToLeft != 0 {
		alb.InsertHelperTraits(prev, album.TraitRightToLeft)
		alb.InsertHelperTraits(idx, album.TraitRightToLeft)
	}
	return true
}

// attachMark records the mark glyph's anchor-relative position against its
// base and the (mark - base) displacement, stored on the mark itself. The
// position set here is local to the pair (baseAnchor - markAnchor); it
// omits the base's own resolved position and the pen gap between the two,
// since a chain of marks-on-marks can still be pending when this runs.
// attach.ResolveAttachments closes both afterward.
func attachMark(alb *album.Album, mark, base int, markAnchor, baseAnchor ot.Anchor) bool {
	off := mark - base
	if off <= 0 || off > 32767 {
		return false
	}
	alb.SetAttachmentOffset(mark, int16(off))
	alb.SetX(mark, int32(baseAnchor.X)-int32(markAnchor.X))
	alb.SetY(mark, int32(baseAnchor.Y)-int32(markAnchor.Y))
	alb.InsertHelperTraits(mark, album.TraitAttached)
	return true
}

// attachLink records the signed glyph-index displacement from i to partner
// via setter (only used for SetCursiveOffset, which is stored on the
// earlier glyph of the pair), failing if the displacement doesn't fit an
// int16.
func attachLink(alb *album.Album, i, partner int, setter func(int, int16)) bool {
	off := partner - i
	if off < -32768 || off > 32767 {
		return false
	}
	setter(i, int16(off))
	return true
}

// ligatureComponent counts placeholder (consumed ligature component) glyphs
// strictly between lig and idx, giving the ligature component index the
// mark at idx attaches to: 0 for the ligature glyph itself, incrementing
// past each consumed component on the way to idx.
func ligatureComponent(alb *album.Album, lig, idx int) int {
	comp := 0
	for i := lig + 1; i < idx; i++ {
		if alb.Traits(i).Has(album.TraitPlaceholder) {
			comp++
		}
	}
	return comp
}
