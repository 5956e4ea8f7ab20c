package apply

import (
	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/locator"
	"github.com/glyphforge/otshape/ot"
)

func newAlbumWithTraits(traits ...album.GlyphTraits) *album.Album {
	a := album.New()
	a.BeginFilling(len(traits))
	for i, t := range traits {
		a.AddGlyph(ot.GlyphIndex(i+1), t, i)
	}
	a.EndFilling()
	return a
}

func newLocatorIgnoringMarks(a *album.Album) *locator.Locator {
	loc := locator.New(a, ot.GDef{})
	loc.Reset(0, a.Len())
	loc.SetLookupFlag(ot.LookupFlagIgnoreMarks)
	loc.MoveNext()
	return loc
}

func (env *ApplySubstTestEnviron) TestMatchForwardCollectsPositions() {
	a, loc := filledAlbum(1, 2, 3, 4)
	loc.MoveNext()
	positions, ok := matchForward(loc, 1, 2, func(pos, i int) bool {
		want := []ot.GlyphIndex{2, 3}[i]
		return a.Glyph(pos) == want
	})
	env.True(ok)
	env.Equal([]int{1, 2}, positions)
}

func (env *ApplySubstTestEnviron) TestMatchForwardFailsWhenPredicateRejects() {
	a, loc := filledAlbum(1, 2, 3)
	loc.MoveNext()
	_, ok := matchForward(loc, 1, 2, func(pos, i int) bool {
		return a.Glyph(pos) == 99
	})
	env.False(ok)
}

func (env *ApplySubstTestEnviron) TestMatchForwardZeroCountAlwaysMatches() {
	_, loc := filledAlbum(1, 2)
	positions, ok := matchForward(loc, 0, 0, func(pos, i int) bool { return false })
	env.True(ok)
	env.Nil(positions)
}

func (env *ApplySubstTestEnviron) TestMatchForwardSkipsIgnoredPositions() {
	a := newAlbumWithTraits(album.TraitBase, album.TraitMark, album.TraitBase)
	loc := newLocatorIgnoringMarks(a)
	positions, ok := matchForward(loc, 1, 1, func(pos, i int) bool {
		return a.Glyph(pos) == a.Glyph(2)
	})
	env.True(ok)
	env.Equal([]int{2}, positions)
}

func (env *ApplySubstTestEnviron) TestMatchBackwardWalksNearestFirst() {
	a, loc := filledAlbum(1, 2, 3, 4)
	loc.MoveNext()
	var seen []int
	ok := matchBackward(loc, 2, 2, func(pos, i int) bool {
		seen = append(seen, pos)
		return true
	})
	_ = a
	env.True(ok)
	env.Equal([]int{2, 1}, seen)
}

func (env *ApplySubstTestEnviron) TestMatchBackwardZeroCountAlwaysMatches() {
	_, loc := filledAlbum(1, 2)
	ok := matchBackward(loc, 0, 0, func(pos, i int) bool { return false })
	env.True(ok)
}

func (env *ApplySubstTestEnviron) TestMatchBackwardFailsPastStart() {
	_, loc := filledAlbum(1, 2)
	ok := matchBackward(loc, 0, 2, func(pos, i int) bool { return true })
	env.False(ok)
}
