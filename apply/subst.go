package apply

import (
	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/locator"
	"github.com/glyphforge/otshape/ot"
)

// ApplyGSUBLookup tries lookup's subtables, in order, against the glyph at
// loc's current position, applying (and stopping at) the first one that
// matches. It returns false if none did. The caller must already have
// called loc.SetLookupFlag/SetMarkFilteringSet for lookup before loc's
// driving MoveNext loop began.
func ApplyGSUBLookup(font *ot.Font, lookup ot.Lookup, alb *album.Album, loc *locator.Locator) bool {
	if lookup.Type == ot.GSUBReverseChaining {
		return applyReverseChainLookup(lookup, alb, loc)
	}
	glyph := alb.Glyph(loc.Index())
	for i := 0; i < lookup.SubtableCount(); i++ {
		if applyGSUBSubtable(font, lookup.Type, lookup.RawSubtable(i), alb, loc, glyph) {
			return true
		}
	}
	return false
}

func applyGSUBSubtable(font *ot.Font, lookupType uint16, raw []byte, alb *album.Album, loc *locator.Locator, glyph ot.GlyphIndex) bool {
	idx := loc.Index()
	switch lookupType {
	case ot.GSUBSingle:
		s := ot.ParseSingleSubst(raw)
		out, ok := s.Apply(glyph)
		if !ok {
			return false
		}
		alb.SetGlyph(idx, out)
		return true
	case ot.GSUBMultiple:
		m := ot.ParseMultipleSubst(raw)
		seq, ok := m.Apply(glyph)
		if !ok {
			return false
		}
		applyMultipleSubst(alb, loc, seq)
		return true
	case ot.GSUBAlternate:
		a := ot.ParseAlternateSubst(raw)
		// No external disambiguation signal (e.g. a variation selector)
		// reaches this layer, so the first alternate is always chosen.
		out, ok := a.Apply(glyph, 0)
		if !ok {
			return false
		}
		alb.SetGlyph(idx, out)
		return true
	case ot.GSUBLigature:
		l := ot.ParseLigatureSubst(raw)
		return applyLigatureSubst(alb, loc, l, glyph)
	case ot.GSUBContext:
		sc := ot.ParseSequenceContext(raw)
		return applySequenceContext(font, true, sc, alb, loc)
	case ot.GSUBChainingContext:
		cc := ot.ParseChainedSequenceContext(raw)
		return applyChainedSequenceContext(font, true, cc, alb, loc)
	case ot.GSUBExtension:
		e := ot.ParseExtensionSubst(raw)
		return applyGSUBSubtable(font, e.ExtensionLookupType, e.Extension, alb, loc, glyph)
	default:
		tracer().Errorf("apply: unsupported GSUB lookup type %d", lookupType)
		return false
	}
}

// applyMultipleSubst expands the glyph at loc's current position into seq,
// growing the Album in place via the locator's window-aware reservation.
func applyMultipleSubst(alb *album.Album, loc *locator.Locator, seq []ot.GlyphIndex) {
	idx := loc.Index()
	assoc := alb.Association(idx)
	if len(seq) == 0 {
		alb.SetGlyph(idx, 0)
		alb.InsertHelperTraits(idx, 0) // no-op placeholder for symmetry; traits set below
		alb.ReplaceBasicTraits(idx, album.TraitPlaceholder)
		return
	}
	if len(seq) > 1 {
		loc.ReserveGlyphs(len(seq) - 1)
	}
	for k, g := range seq {
		pos := idx + k
		alb.SetGlyph(pos, g)
		alb.SetAssociation(pos, assoc)
	}
}

// applyLigatureSubst tries each ligature candidate for glyph, longest
// first (per the subtable's own ordering), consuming its component glyphs
// into placeholders on a match.
func applyLigatureSubst(alb *album.Album, loc *locator.Locator, l ot.LigatureSubst, glyph ot.GlyphIndex) bool {
	set, ok := l.LigatureSetFor(glyph)
	if !ok {
		return false
	}
	idx := loc.Index()
	for _, lig := range set {
		positions, ok := matchForward(loc, idx+1, len(lig.Components), func(pos, i int) bool {
			return alb.Glyph(pos) == lig.Components[i]
		})
		if !ok {
			continue
		}
		assoc := alb.Association(idx)
		alb.SetGlyph(idx, lig.LigGlyph)
		alb.ReplaceBasicTraits(idx, album.TraitLigature)
		for _, p := range positions {
			alb.SetGlyph(p, 0)
			alb.ReplaceBasicTraits(p, album.TraitComponent|album.TraitPlaceholder)
			alb.SetAssociation(p, assoc)
		}
		return true
	}
	return false
}

// applyReverseChainLookup runs a GSUB LookupType 8 lookup: scanned right
// to left over the whole Album, backtrack/lookahead context consulted but
// never consumed.
func applyReverseChainLookup(lookup ot.Lookup, alb *album.Album, loc *locator.Locator) bool {
	loc.SetLookupFlag(lookup.Flag)
	loc.SetMarkFilteringSet(lookup.MarkFilterSet)
	applied := false
	for i := 0; i < lookup.SubtableCount(); i++ {
		r := ot.ParseReverseChainSingleSubst(lookup.RawSubtable(i))
		if applyReverseChainSubtable(alb, loc, r) {
			applied = true
		}
	}
	return applied
}

func applyReverseChainSubtable(alb *album.Album, loc *locator.Locator, r ot.ReverseChainSingleSubst) bool {
	applied := false
	for idx := alb.Len() - 1; idx >= 0; idx-- {
		if pos, ok := loc.GetBefore(idx); !ok || pos != idx {
			continue
		}
		out, ok := r.Apply(alb.Glyph(idx))
		if !ok {
			continue
		}
		if !matchBackward(loc, idx-1, len(r.BacktrackCoverages), func(pos, i int) bool {
			return r.BacktrackCoverages[i].Contains(alb.Glyph(pos))
		}) {
			continue
		}
		if _, ok := matchForward(loc, idx+1, len(r.LookaheadCoverages), func(pos, i int) bool {
			return r.LookaheadCoverages[i].Contains(alb.Glyph(pos))
		}); !ok {
			continue
		}
		alb.SetGlyph(idx, out)
		applied = true
	}
	return applied
}
