package artist

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/unicode/bidi"

	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/ot"
	"github.com/glyphforge/otshape/pattern"
	"github.com/glyphforge/otshape/shapefont"
)

type ArtistTestEnviron struct {
	suite.Suite
}

func TestArtistFunctions(t *testing.T) {
	suite.Run(t, new(ArtistTestEnviron))
}

type fakeFont struct {
	cmap     map[rune]ot.GlyphIndex
	advances map[ot.GlyphIndex]int32
}

func (f *fakeFont) LoadTable(tag ot.Tag) ([]byte, bool) { return nil, false }

func (f *fakeFont) GlyphIDForCodepoint(cp rune) ot.GlyphIndex { return f.cmap[cp] }

func (f *fakeFont) AdvanceForGlyph(layout shapefont.Layout, g ot.GlyphIndex) int32 {
	return f.advances[g]
}

func emptyPattern(backward bool) pattern.Pattern {
	return pattern.Pattern{
		Font:             ot.ParseFontTables(nil, nil, nil),
		DefaultDirection: backward,
	}
}

func (env *ArtistTestEnviron) TestFillAlbumShapesLatinTextWithNoLookups() {
	f := &fakeFont{
		cmap:     map[rune]ot.GlyphIndex{'A': 10, 'B': 11},
		advances: map[ot.GlyphIndex]int32{10: 500, 11: 600},
	}
	a := New()
	a.SetFont(shapefont.New(f))
	a.SetUTF8String("AB")
	a.SetPattern(emptyPattern(false))

	alb := album.New()
	err := a.FillAlbum(alb)
	env.NoError(err)

	env.Equal(2, alb.Len())
	env.Equal(ot.GlyphIndex(10), alb.Glyph(0))
	env.Equal(ot.GlyphIndex(11), alb.Glyph(1))
	env.Equal(int32(500), alb.Advance(0))
	env.Equal(int32(600), alb.Advance(1))
	env.Equal(album.StateArranged, alb.State())
	env.Equal(0, alb.GlyphForCodeUnit(0))
	env.Equal(1, alb.GlyphForCodeUnit(1))
}

func (env *ArtistTestEnviron) TestFillAlbumUsesPatternDefaultDirectionWhenUnset() {
	f := &fakeFont{cmap: map[rune]ot.GlyphIndex{'A': 10}, advances: map[ot.GlyphIndex]int32{10: 400}}
	a := New()
	a.SetFont(shapefont.New(f))
	a.SetUTF8String("A")
	a.SetPattern(emptyPattern(true))

	alb := album.New()
	env.NoError(a.FillAlbum(alb))
	env.True(alb.Backward())
}

func (env *ArtistTestEnviron) TestSetTextDirectionOverridesPatternDefault() {
	f := &fakeFont{cmap: map[rune]ot.GlyphIndex{'A': 10}, advances: map[ot.GlyphIndex]int32{10: 400}}
	a := New()
	a.SetFont(shapefont.New(f))
	a.SetUTF8String("A")
	a.SetPattern(emptyPattern(true))
	a.SetTextDirection(bidi.LeftToRight)

	alb := album.New()
	env.NoError(a.FillAlbum(alb))
	env.False(alb.Backward())
}

func (env *ArtistTestEnviron) TestFillAlbumReportsMissingInputs() {
	a := New()
	env.ErrorIs(a.FillAlbum(album.New()), ErrNoFont)

	a.SetFont(shapefont.New(&fakeFont{}))
	env.ErrorIs(a.FillAlbum(album.New()), ErrNoString)

	a.SetUTF8String("A")
	env.ErrorIs(a.FillAlbum(album.New()), ErrNoPattern)
}

func (env *ArtistTestEnviron) TestSetTextModeSelectsBackwardIteration() {
	f := &fakeFont{
		cmap:     map[rune]ot.GlyphIndex{'A': 10, 'B': 11},
		advances: map[ot.GlyphIndex]int32{10: 500, 11: 600},
	}
	a := New()
	a.SetFont(shapefont.New(f))
	a.SetRunes([]rune{'A', 'B'})
	a.SetPattern(emptyPattern(false))
	a.SetTextMode(Backward)

	alb := album.New()
	env.NoError(a.FillAlbum(alb))
	env.Equal(ot.GlyphIndex(11), alb.Glyph(0))
	env.Equal(ot.GlyphIndex(10), alb.Glyph(1))
}
