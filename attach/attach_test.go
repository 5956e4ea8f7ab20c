package attach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/ot"
)

type AttachTestEnviron struct {
	suite.Suite
}

func TestAttachFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshape.attach")
	defer teardown()
	suite.Run(t, new(AttachTestEnviron))
}

func (env *AttachTestEnviron) SetupSuite() {
	tracing.Select("otshape.attach").SetTraceLevel(tracing.LevelError)
}

func arrangingAlbum(glyphs ...ot.GlyphIndex) *album.Album {
	a := album.New()
	a.BeginFilling(len(glyphs))
	for i, g := range glyphs {
		a.AddGlyph(g, album.TraitBase, i)
	}
	a.EndFilling()
	a.BeginArranging(false)
	return a
}

func (env *AttachTestEnviron) TestResolveAttachmentsComposesMarkOntoBase() {
	a := arrangingAlbum(10, 11) // base, mark
	a.SetX(0, 100)
	a.SetY(0, 5)
	a.SetX(1, -20) // mark's anchor-relative local offset
	a.SetY(1, 30)
	a.SetAttachmentOffset(1, 1) // mark(1) - base(0)
	a.InsertHelperTraits(1, album.TraitAttached)

	ResolveAttachments(a)

	env.Equal(int32(80), a.Position(1).X) // 100 + (-20) - advance[0](0)
	env.Equal(int32(35), a.Position(1).Y) // 5 + 30
	env.Equal(int32(100), a.Position(0).X)
}

func (env *AttachTestEnviron) TestResolveAttachmentsComposesMarkToMarkChain() {
	a := arrangingAlbum(10, 11, 12) // base, mark1, mark2 (stacked diacritics)
	a.SetX(0, 100)
	a.SetAttachmentOffset(1, 1) // mark1(1) - base(0)
	a.InsertHelperTraits(1, album.TraitAttached)
	a.SetX(1, 5)
	a.SetAttachmentOffset(2, 1) // mark2(2) - mark1(1)
	a.InsertHelperTraits(2, album.TraitAttached)
	a.SetX(2, 3)

	ResolveAttachments(a)

	env.Equal(int32(105), a.Position(1).X) // 100 + 5
	env.Equal(int32(108), a.Position(2).X) // 105 + 3
}

func (env *AttachTestEnviron) TestResolveAttachmentsClosesAdvanceGapForLTR() {
	a := arrangingAlbum(10, 11) // base, mark
	a.SetAdvance(0, 600)
	a.SetX(0, 0)
	a.SetX(1, 450) // baseAnchor.X - markAnchor.X, stored by apply
	a.SetAttachmentOffset(1, 1)
	a.InsertHelperTraits(1, album.TraitAttached)

	ResolveAttachments(a)

	env.Equal(int32(-150), a.Position(1).X) // 0 + 450 - 600
}

func (env *AttachTestEnviron) TestResolveAttachmentsNoLinkLeavesPositionUntouched() {
	a := arrangingAlbum(10, 11)
	a.SetX(0, 40)
	a.SetX(1, 7)

	ResolveAttachments(a)

	env.Equal(int32(40), a.Position(0).X)
	env.Equal(int32(7), a.Position(1).X)
}

func (env *AttachTestEnviron) TestResolveAttachmentsBreaksCursiveCycleWithoutPanicking() {
	a := arrangingAlbum(10, 11)
	a.SetCursiveOffset(0, 1)  // 0 -> 1
	a.SetCursiveOffset(1, -1) // 1 -> 0
	a.InsertHelperTraits(0, album.TraitCursive)
	a.InsertHelperTraits(1, album.TraitCursive)
	env.NotPanics(func() { ResolveAttachments(a) })
}
