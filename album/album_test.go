package album

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/glyphforge/otshape/ot"
)

type AlbumTestEnviron struct {
	suite.Suite
}

func TestAlbumFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshape.album")
	defer teardown()
	suite.Run(t, new(AlbumTestEnviron))
}

func (env *AlbumTestEnviron) SetupSuite() {
	tracing.Select("otshape.album").SetTraceLevel(tracing.LevelError)
}

func (env *AlbumTestEnviron) TestLifecycleOrder() {
	a := New()
	env.Equal(StateEmpty, a.State())
	a.BeginFilling(4)
	env.Equal(StateFilling, a.State())
	a.AddGlyph(ot.GlyphIndex(10), TraitBase, 0)
	a.AddGlyph(ot.GlyphIndex(11), TraitBase, 1)
	env.Equal(2, a.Len())
	a.EndFilling()
	env.Equal(StateFilled, a.State())
	a.BeginArranging(false)
	env.Equal(StateArranging, a.State())
	a.SetX(0, 5)
	a.SetAdvance(0, 600)
	env.EqualValues(5, a.Position(0).X)
	env.EqualValues(600, a.Advance(0))
	a.EndArranging()
	env.Equal(StateArranged, a.State())
}

func (env *AlbumTestEnviron) TestBeginFillingPanicsOutOfOrder() {
	a := New()
	a.BeginFilling(2)
	env.Panics(func() { a.BeginFilling(2) })
}

func (env *AlbumTestEnviron) TestAddGlyphUsesEmptySentinelMask() {
	a := New()
	a.BeginFilling(1)
	a.AddGlyph(ot.GlyphIndex(3), TraitBase, 0)
	env.EqualValues(emptyFeatureMask, a.FeatureMask(0))
	env.EqualValues(TraitBase, a.Traits(0))
}

func (env *AlbumTestEnviron) TestVersionIncrementsOnMutation() {
	a := New()
	a.BeginFilling(2)
	v0 := a.Version()
	a.AddGlyph(ot.GlyphIndex(1), TraitBase, 0)
	env.Greater(a.Version(), v0)
	v1 := a.Version()
	a.ReserveGlyphs(0, 1)
	env.Greater(a.Version(), v1)
}

func (env *AlbumTestEnviron) TestReserveGlyphsShiftsTail() {
	a := New()
	a.BeginFilling(3)
	a.AddGlyph(ot.GlyphIndex(1), TraitBase, 0)
	a.AddGlyph(ot.GlyphIndex(2), TraitBase, 1)
	a.ReserveGlyphs(1, 1)
	env.Equal(3, a.Len())
	env.Equal(ot.GlyphIndex(1), a.Glyph(0))
	env.Equal(ot.GlyphIndex(2), a.Glyph(2))
	a.SetGlyph(1, ot.GlyphIndex(99))
	env.Equal(ot.GlyphIndex(99), a.Glyph(1))
}

func (env *AlbumTestEnviron) TestReplaceBasicTraitsPreservesHelpers() {
	a := New()
	a.BeginFilling(1)
	a.AddGlyph(ot.GlyphIndex(1), TraitBase, 0)
	a.EndFilling()
	a.BeginArranging(false)
	a.InsertHelperTraits(0, TraitCursive)
	a.ReplaceBasicTraits(0, TraitLigature)
	t := a.Traits(0)
	env.True(t.HasType(TraitLigature))
	env.False(t.HasType(TraitBase))
	env.True(t.Has(TraitCursive))
}

func (env *AlbumTestEnviron) TestAntiFeatureMask() {
	env.EqualValues(^uint16(0x01), AntiFeatureMask(0x01))
	env.EqualValues(0, AntiFeatureMask(0))
}

func (env *AlbumTestEnviron) TestWrapUpForwardSimple() {
	a := New()
	a.BeginFilling(3)
	a.AddGlyph(ot.GlyphIndex(1), TraitBase, 0)
	a.AddGlyph(ot.GlyphIndex(2), TraitBase, 1)
	a.AddGlyph(ot.GlyphIndex(3), TraitBase, 2)
	a.EndFilling()
	a.BeginArranging(false)
	a.EndArranging()
	a.WrapUp(3)
	env.Equal(0, a.GlyphForCodeUnit(0))
	env.Equal(1, a.GlyphForCodeUnit(1))
	env.Equal(2, a.GlyphForCodeUnit(2))
}

func (env *AlbumTestEnviron) TestWrapUpLigatureCollapsesCodeUnits() {
	a := New()
	a.BeginFilling(2)
	// A two-code-unit ligature: one surviving glyph associated with code
	// unit 0, and a placeholder retaining the same association so both
	// code units collapse onto the ligature glyph.
	a.AddGlyph(ot.GlyphIndex(50), TraitLigature, 0)
	a.AddGlyph(ot.GlyphIndex(0), TraitPlaceholder, 0)
	a.EndFilling()
	a.BeginArranging(false)
	a.EndArranging()
	a.WrapUp(2)
	env.Equal(0, a.GlyphForCodeUnit(0))
	env.Equal(0, a.GlyphForCodeUnit(1))
}
