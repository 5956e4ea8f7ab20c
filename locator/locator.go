package locator

import (
	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/ot"
)

// Locator is a stateful, filtering iterator over an Album's glyph
// sequence. It is stack-local: callers create one per outer lookup
// application and, for context matching, additional locators restricted
// to a matched glyph range.
type Locator struct {
	alb *album.Album
	gd  ot.GDef

	lookupFlag        ot.LookupFlag
	featureIgnoreMask uint16
	markFilterSet     uint16
	useMarkFilterSet  bool
	respectPlaceholder bool // when true, Placeholder glyphs are NOT skipped

	index int // current position, -1 before the first MoveNext
	start int
	limit int // exclusive upper bound of the active window

	version uint64
}

// New returns a Locator over alb. gd (which may be the zero value) supplies
// mark-filtering-set and mark-attachment-class data. A zero GDef has no
// mark glyph sets and no mark-attachment classes, so under a lookup flag
// that requests either filter every mark glyph is skipped.
func New(alb *album.Album, gd ot.GDef) *Locator {
	l := &Locator{alb: alb, gd: gd}
	l.Reset(0, alb.Len())
	return l
}

// Reset restarts the locator over [start, start+count), before the first
// glyph.
func (l *Locator) Reset(start, count int) {
	l.start = start
	l.limit = start + count
	l.index = start - 1
	l.version = l.alb.Version()
}

// SetFeatureMask configures the locator to only yield glyphs carrying
// feature bit(s) mask in their feature mask.
func (l *Locator) SetFeatureMask(mask uint16) {
	l.featureIgnoreMask = album.AntiFeatureMask(mask)
}

// SetLookupFlag configures base/ligature/mark, mark-filtering-set and
// mark-attachment-type filtering from an OpenType lookup flag. The
// right-to-left bit is stored but plays no part in filtering.
func (l *Locator) SetLookupFlag(flag ot.LookupFlag) {
	l.lookupFlag = flag
	l.useMarkFilterSet = flag&ot.LookupFlagUseMarkFilterSet != 0
}

// SetMarkFilteringSet selects the GDEF mark glyph set index a lookup
// restricts its marks to (meaningful only when the lookup flag requests
// UseMarkFilteringSet).
func (l *Locator) SetMarkFilteringSet(setIndex uint16) {
	l.markFilterSet = setIndex
}

// SetRespectPlaceholder toggles whether Placeholder-trait glyphs are
// skipped (the default) or yielded, as mark-to-mark lookups need in order
// to respect ligature component boundaries.
func (l *Locator) SetRespectPlaceholder(respect bool) {
	l.respectPlaceholder = respect
}

// refreshIfStale re-derives the limit index when the album was mutated
// since this locator's last Reset/JumpTo — the debug-assertion-worthy
// case spec'd as "mismatched versions" is treated here as a silent
// recovery in release builds.
func (l *Locator) refreshIfStale() {
	v := l.alb.Version()
	if v == l.version {
		return
	}
	ot.Assert(false, "locator: version mismatch (had %d, album is at %d)", l.version, v)
	if l.limit > l.alb.Len() {
		l.limit = l.alb.Len()
	}
	l.version = v
}

func (l *Locator) ignored(i int) bool {
	traits := l.alb.Traits(i)
	if traits.HasType(album.TraitBase) && l.lookupFlag&ot.LookupFlagIgnoreBaseGlyphs != 0 {
		return true
	}
	if traits.HasType(album.TraitLigature) && l.lookupFlag&ot.LookupFlagIgnoreLigatures != 0 {
		return true
	}
	isMark := traits.HasType(album.TraitMark)
	if isMark && l.lookupFlag&ot.LookupFlagIgnoreMarks != 0 {
		return true
	}
	if !l.respectPlaceholder && traits.HasType(album.TraitPlaceholder) {
		return true
	}
	if isMark && l.useMarkFilterSet {
		if !l.gd.InMarkFilteringSet(l.markFilterSet, l.alb.Glyph(i)) {
			return true
		}
	}
	if isMark {
		if top := l.lookupFlag.MarkAttachmentType(); top != 0 {
			if l.gd.MarkAttachClass(l.alb.Glyph(i)) != top {
				return true
			}
		}
	}
	mask := l.alb.FeatureMask(i)
	if mask&l.featureIgnoreMask != 0 {
		return true
	}
	return false
}

// MoveNext advances to the next non-ignored glyph and reports whether one
// was found before the window's limit.
func (l *Locator) MoveNext() bool {
	l.refreshIfStale()
	for i := l.index + 1; i < l.limit; i++ {
		if !l.ignored(i) {
			l.index = i
			return true
		}
	}
	l.index = l.limit
	return false
}

// Skip calls MoveNext n times, short-circuiting (and returning false) the
// first time MoveNext fails.
func (l *Locator) Skip(n int) bool {
	for k := 0; k < n; k++ {
		if !l.MoveNext() {
			return false
		}
	}
	return true
}

// JumpTo positions the cursor directly at index i (which must already be a
// non-ignored glyph, or index-1/limit as a before/after sentinel).
func (l *Locator) JumpTo(i int) {
	l.refreshIfStale()
	l.index = i
}

// Index returns the locator's current position.
func (l *Locator) Index() int { return l.index }

// Window reports the locator's active range [start, limit).
func (l *Locator) Window() (start, limit int) {
	return l.start, l.limit
}

// GetAfter returns the first non-ignored index at or after i, without
// moving the locator's own state.
func (l *Locator) GetAfter(i int) (int, bool) {
	l.refreshIfStale()
	for k := i; k < l.limit; k++ {
		if !l.ignored(k) {
			return k, true
		}
	}
	return 0, false
}

// GetBefore returns the first non-ignored index at or before i, without
// moving the locator's own state.
func (l *Locator) GetBefore(i int) (int, bool) {
	l.refreshIfStale()
	for k := i; k >= l.start; k-- {
		if !l.ignored(k) {
			return k, true
		}
	}
	return 0, false
}

// TakeState copies sibling's position and window back into l, used when a
// nested context locator finishes and control returns to its parent.
func (l *Locator) TakeState(sibling *Locator) {
	l.index = sibling.index
	l.start = sibling.start
	l.limit = sibling.limit
	l.version = l.alb.Version()
}

// ReserveGlyphs inserts n slots at the locator's current index and grows
// the active window's limit by n, keeping the locator's filters intact
// across a substitution that changed the album's length.
func (l *Locator) ReserveGlyphs(n int) {
	l.alb.ReserveGlyphs(l.index, n)
	l.limit += n
	l.version = l.alb.Version()
}

// Sub returns a fresh locator restricted to [start, end) — a "context
// locator" for nested lookup application during context/chaining-context
// matching. It inherits no filters; callers configure lookup flag/feature
// mask/mark filtering set as needed for the nested lookup.
func (l *Locator) Sub(start, end int) *Locator {
	c := &Locator{alb: l.alb, gd: l.gd}
	c.Reset(start, end-start)
	return c
}
