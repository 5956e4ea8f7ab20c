package process

import (
	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/apply"
	"github.com/glyphforge/otshape/attach"
	"github.com/glyphforge/otshape/codepoints"
	"github.com/glyphforge/otshape/engine"
	"github.com/glyphforge/otshape/knowledge"
	"github.com/glyphforge/otshape/locator"
	"github.com/glyphforge/otshape/ot"
	"github.com/glyphforge/otshape/pattern"
	"github.com/glyphforge/otshape/shapefont"
)

// Processor drives one shaping run's Album through discovery,
// substitution and positioning, against a pattern.Pattern already
// compiled for the font/script/language in play. A Processor is
// stack-local: create one per run.
type Processor struct {
	font     *shapefont.ShapingFont
	pat      pattern.Pattern
	alb      *album.Album
	gd       ot.GDef
	backward bool
	layout   shapefont.Layout

	runeAt []rune // glyph i's originating code point, valid until GSUB runs
}

// Initialize readies p to shape into alb using font and pat. backward
// selects both the code point iteration direction and, later, the run
// direction BeginArranging and attach.ResolveAttachments see.
func (p *Processor) Initialize(font *shapefont.ShapingFont, pat pattern.Pattern, alb *album.Album, backward bool) {
	p.font = font
	p.pat = pat
	p.alb = alb
	p.backward = backward
	p.layout = shapefont.LayoutHorizontal
	if gd, ok := font.Layout().GDef(); ok {
		p.gd = gd
	} else {
		p.gd = ot.GDef{}
	}
}

// SetLayout selects the metrics direction PositionGlyphs seeds advances
// from (horizontal by default).
func (p *Processor) SetLayout(layout shapefont.Layout) { p.layout = layout }

// DiscoverGlyphs walks seq, mapping each code point to a glyph via the
// font's cmap and tagging it with the GDEF-derived trait its glyph class
// implies, associating it back to the lowest code unit index its
// encoding spans. codeUnitCount sizes the Album's eventual
// codeUnitToGlyph table (see album.Album.WrapUp). iterateBackward
// selects the order code points are consumed in — independent of the
// run's shaping direction (p.backward, set at Initialize and used by
// PositionGlyphs/attach.ResolveAttachments): a caller walking a
// right-to-left run's logical text back to front sets both, but a
// caller hands the code points in logical order, forward, for either
// direction just as often.
func (p *Processor) DiscoverGlyphs(seq *codepoints.Sequence, codeUnitCount int, iterateBackward bool) {
	p.alb.BeginFilling(codeUnitCount)
	p.runeAt = p.runeAt[:0]
	seq.Reset(iterateBackward)
	for {
		before := seq.Index()
		r, ok := seq.Next()
		if !ok {
			break
		}
		after := seq.Index()
		assoc := before
		if after < assoc {
			assoc = after
		}
		glyph := p.font.GlyphIDForCodepoint(r)
		traits := traitsForClass(p.gd.GlyphClass(glyph))
		p.alb.AddGlyph(glyph, traits, assoc)
		p.runeAt = append(p.runeAt, r)
	}
}

// traitsForClass maps a GDEF glyph class onto the disjoint type trait
// AddGlyph tags a freshly discovered glyph with. Base and unclassified
// glyphs (GDEF absent, or the glyph simply isn't in its ClassDef) both
// fall back to Base: a plain, single-code-point glyph.
func traitsForClass(class uint16) album.GlyphTraits {
	switch class {
	case ot.GlyphClassLigature:
		return album.TraitLigature
	case ot.GlyphClassMark:
		return album.TraitMark
	case ot.GlyphClassComponent:
		return album.TraitComponent
	default:
		return album.TraitBase
	}
}

// SubstituteGlyphs runs the script's Engine once (before any GSUB lookup
// touches the Album), then every GSUB feature unit of p.pat in order,
// each against a locator reset to the Album's current length and
// filtered to the unit's feature mask. The Album stays in StateFilling
// throughout: GSUB's glyph-count-growing substitutions (ligature,
// multiple) need ReserveGlyphs, which only works in that state.
func (p *Processor) SubstituteGlyphs() {
	eng := engine.ForScript(p.backward, isArabicLike(p.pat.ScriptTag))
	eng.ProcessAlbum(p.alb, p.runeAt)

	loc := locator.New(p.alb, p.gd)
	otFont := p.font.Layout()
	for _, unit := range p.pat.FeatureUnits[:p.pat.GSUBUnitCount] {
		p.applyFeatureUnit(otFont, loc, unit, pattern.Gsub)
	}
	p.alb.EndFilling()
}

// PositionGlyphs transitions the Album into StateArranging, seeds every
// glyph's advance from the font's metrics, applies every GPOS feature
// unit, folds the resulting cursive/mark attachment links into final
// positions via attach.ResolveAttachments, and ends arranging.
func (p *Processor) PositionGlyphs() {
	p.alb.BeginArranging(p.backward)
	for i := 0; i < p.alb.Len(); i++ {
		p.alb.SetAdvance(i, p.font.AdvanceForGlyph(p.layout, p.alb.Glyph(i)))
	}

	loc := locator.New(p.alb, p.gd)
	otFont := p.font.Layout()
	for _, unit := range p.pat.FeatureUnits[p.pat.GSUBUnitCount : p.pat.GSUBUnitCount+p.pat.GPOSUnitCount] {
		p.applyFeatureUnit(otFont, loc, unit, pattern.Gpos)
	}

	attach.ResolveAttachments(p.alb)
	p.alb.EndArranging()
}

// applyFeatureUnit runs every lookup of unit, each over a freshly reset
// locator so a prior lookup's glyph-count change or position changes
// never bleed into the next lookup's starting window. A lookup's flag and
// mark-filtering set are resolved once and installed on loc before its
// MoveNext loop begins, so every glyph it visits is filtered consistently
// rather than by whatever flag a previous lookup left behind.
func (p *Processor) applyFeatureUnit(font *ot.Font, loc *locator.Locator, unit pattern.FeatureUnit, kind pattern.LookupKind) {
	for _, ref := range unit.Lookups {
		lookup, ok := font.Lookup(kind == pattern.Gsub, int(ref.LookupIndex))
		if !ok {
			continue
		}
		loc.Reset(0, p.alb.Len())
		loc.SetFeatureMask(unit.Mask)
		loc.SetLookupFlag(lookup.Flag)
		loc.SetMarkFilteringSet(lookup.MarkFilterSet)
		for loc.MoveNext() {
			var applied bool
			if kind == pattern.Gsub {
				applied = apply.ApplyGSUBLookup(font, lookup, p.alb, loc)
			} else {
				applied = apply.ApplyGPOSLookup(font, lookup, p.alb, loc)
			}
			if !applied {
				tracer().Debugf("process: lookup %d did not apply at glyph %d", ref.LookupIndex, loc.Index())
			}
		}
	}
}

// isArabicLike reports whether scriptTag's shaping knowledge resolves
// (directly or via knowledge.ScriptAliases) to the Arabic table, the
// signal process uses to pick engine.Arabic over the Standard no-op.
func isArabicLike(scriptTag ot.Tag) bool {
	return knowledge.Lookup(scriptTag).ScriptTag == ot.T("arab")
}

// Run drives DiscoverGlyphs, SubstituteGlyphs and PositionGlyphs in
// order, the whole of what a text processor owes a freshly filled
// Album. codeUnitCount sizes the eventual codeUnitToGlyph table; callers
// still own WrapUp themselves once they're done consuming positions.
func (p *Processor) Run(seq *codepoints.Sequence, codeUnitCount int, iterateBackward bool) {
	p.DiscoverGlyphs(seq, codeUnitCount, iterateBackward)
	p.SubstituteGlyphs()
	p.PositionGlyphs()
}
