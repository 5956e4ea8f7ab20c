package locator

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/ot"
)

type LocatorTestEnviron struct {
	suite.Suite
}

func TestLocatorFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshape.locator")
	defer teardown()
	suite.Run(t, new(LocatorTestEnviron))
}

func (env *LocatorTestEnviron) SetupSuite() {
	tracing.Select("otshape.locator").SetTraceLevel(tracing.LevelError)
}

func filledAlbum(traits ...album.GlyphTraits) *album.Album {
	a := album.New()
	a.BeginFilling(len(traits))
	for i, t := range traits {
		a.AddGlyph(ot.GlyphIndex(i+1), t, i)
	}
	a.EndFilling()
	return a
}

func (env *LocatorTestEnviron) TestMoveNextVisitsEveryGlyphByDefault() {
	a := filledAlbum(album.TraitBase, album.TraitBase, album.TraitBase)
	loc := New(a, ot.GDef{})
	var seen []int
	for loc.MoveNext() {
		seen = append(seen, loc.Index())
	}
	env.Equal([]int{0, 1, 2}, seen)
}

func (env *LocatorTestEnviron) TestIgnoreMarksSkipsMarkTrait() {
	a := filledAlbum(album.TraitBase, album.TraitMark, album.TraitBase)
	loc := New(a, ot.GDef{})
	loc.SetLookupFlag(ot.LookupFlagIgnoreMarks)
	var seen []int
	for loc.MoveNext() {
		seen = append(seen, loc.Index())
	}
	env.Equal([]int{0, 2}, seen)
}

func (env *LocatorTestEnviron) TestPlaceholderSkippedByDefault() {
	a := filledAlbum(album.TraitBase, album.TraitPlaceholder, album.TraitBase)
	loc := New(a, ot.GDef{})
	var seen []int
	for loc.MoveNext() {
		seen = append(seen, loc.Index())
	}
	env.Equal([]int{0, 2}, seen)
}

func (env *LocatorTestEnviron) TestRespectPlaceholderYieldsIt() {
	a := filledAlbum(album.TraitBase, album.TraitPlaceholder, album.TraitBase)
	loc := New(a, ot.GDef{})
	loc.SetRespectPlaceholder(true)
	var seen []int
	for loc.MoveNext() {
		seen = append(seen, loc.Index())
	}
	env.Equal([]int{0, 1, 2}, seen)
}

func (env *LocatorTestEnviron) TestFeatureMaskFiltersGlyphsWithoutBit() {
	a := filledAlbum(album.TraitBase, album.TraitBase)
	a.SetFeatureMask(0, 0x0002)
	a.SetFeatureMask(1, 0x0001)
	loc := New(a, ot.GDef{})
	loc.SetFeatureMask(0x0002)
	env.True(loc.MoveNext())
	env.Equal(0, loc.Index())
	env.False(loc.MoveNext())
}

func (env *LocatorTestEnviron) TestGetAfterAndGetBeforeDoNotMoveState() {
	a := filledAlbum(album.TraitBase, album.TraitMark, album.TraitBase)
	loc := New(a, ot.GDef{})
	loc.SetLookupFlag(ot.LookupFlagIgnoreMarks)
	idx, ok := loc.GetAfter(1)
	env.True(ok)
	env.Equal(2, idx)
	idx, ok = loc.GetBefore(1)
	env.True(ok)
	env.Equal(0, idx)
	env.Equal(-1, loc.Index())
}

func (env *LocatorTestEnviron) TestReserveGlyphsGrowsWindow() {
	a := filledAlbum(album.TraitBase, album.TraitBase)
	loc := New(a, ot.GDef{})
	env.True(loc.MoveNext())
	loc.ReserveGlyphs(1)
	env.Equal(3, a.Len())
	loc.JumpTo(loc.Index() + 1)
	env.True(loc.MoveNext())
	env.Equal(2, loc.Index())
}
