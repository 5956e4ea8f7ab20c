package engine

import (
	"testing"

	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/knowledge"
	"github.com/glyphforge/otshape/ot"
)

func filledAlbum(n int) *album.Album {
	a := album.New()
	a.BeginFilling(n)
	for i := 0; i < n; i++ {
		a.AddGlyph(ot.GlyphIndex(i+1), album.TraitBase, i)
	}
	a.EndFilling()
	return a
}

func TestArabicProcessAlbumBehBehBeh(t *testing.T) {
	cps := []rune{'ب', 'ب', 'ب'}
	a := filledAlbum(len(cps))
	(Arabic{}).ProcessAlbum(a, cps)

	if a.FeatureMask(0) != knowledge.MaskInit {
		t.Fatalf("first mask = %#x, want init(%#x)", a.FeatureMask(0), knowledge.MaskInit)
	}
	if a.FeatureMask(1) != knowledge.MaskMedi {
		t.Fatalf("middle mask = %#x, want medi(%#x)", a.FeatureMask(1), knowledge.MaskMedi)
	}
	if a.FeatureMask(2) != knowledge.MaskFina {
		t.Fatalf("last mask = %#x, want fina(%#x)", a.FeatureMask(2), knowledge.MaskFina)
	}
}

func TestArabicProcessAlbumBehAlef(t *testing.T) {
	cps := []rune{'ب', 'ا'} // beh + alef (right-joining)
	a := filledAlbum(len(cps))
	(Arabic{}).ProcessAlbum(a, cps)

	if a.FeatureMask(0) != knowledge.MaskInit {
		t.Fatalf("beh mask = %#x, want init(%#x)", a.FeatureMask(0), knowledge.MaskInit)
	}
	if a.FeatureMask(1) != knowledge.MaskFina {
		t.Fatalf("alef mask = %#x, want fina(%#x)", a.FeatureMask(1), knowledge.MaskFina)
	}
}

func TestArabicProcessAlbumSkipsTransparentMarks(t *testing.T) {
	cps := []rune{'ب', 'َ', 'ب'} // beh + fatha + beh
	a := filledAlbum(len(cps))
	(Arabic{}).ProcessAlbum(a, cps)

	if a.FeatureMask(0) != knowledge.MaskInit {
		t.Fatalf("first mask = %#x, want init(%#x)", a.FeatureMask(0), knowledge.MaskInit)
	}
	if a.FeatureMask(1) != 0 {
		t.Fatalf("mark mask = %#x, want 0 (not a joining letter)", a.FeatureMask(1))
	}
	if a.FeatureMask(2) != knowledge.MaskFina {
		t.Fatalf("last mask = %#x, want fina(%#x)", a.FeatureMask(2), knowledge.MaskFina)
	}
}

func TestArabicProcessAlbumNonArabicUnaffected(t *testing.T) {
	cps := []rune{'A', 'B'}
	a := filledAlbum(len(cps))
	(Arabic{}).ProcessAlbum(a, cps)

	if a.FeatureMask(0) != 0 || a.FeatureMask(1) != 0 {
		t.Fatalf("latin masks = [%#x %#x], want [0 0]", a.FeatureMask(0), a.FeatureMask(1))
	}
}

func TestStandardProcessAlbumIsNoOp(t *testing.T) {
	a := filledAlbum(2)
	a.SetFeatureMask(0, 0x1234)
	(Standard{}).ProcessAlbum(a, []rune{'A', 'B'})
	if a.FeatureMask(0) != 0x1234 {
		t.Fatalf("Standard engine mutated feature mask")
	}
}
