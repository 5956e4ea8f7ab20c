package attach

import "github.com/glyphforge/otshape/album"

// ResolveAttachments composes every glyph's cursive and mark attachment
// link into a final position. The Album must be in StateArranging (GPOS
// already run, EndArranging not yet called). Cursive chains are resolved
// first, since a mark can itself be attached to a cursively-connected
// base whose own y is still pending; the mark pass then runs against
// already-final base/ligature positions.
func ResolveAttachments(alb *album.Album) {
	for i := 0; i < alb.Len(); i++ {
		if alb.Traits(i).Has(album.TraitCursive) {
			resolveCursive(alb, i)
		}
	}
	for i := 0; i < alb.Len(); i++ {
		resolveMark(alb, i)
	}
}

// resolveCursive accumulates glyph i's y across its cursive chain.
// apply's GPOS executor records the (second - first) displacement on the
// earlier glyph of a cursively-attached pair, so the chain is walked
// forward from i. A left-to-right segment anchors its first glyph at
// baseline and lets later glyphs carry the accumulated y forward; a
// right-to-left segment anchors its last glyph instead, so the partner is
// resolved before folding its y back into i. Marking i Resolved before
// recursing breaks a malformed font's cyclic chain without looping
// forever.
func resolveCursive(alb *album.Album, i int) {
	if alb.Traits(i).Has(album.TraitResolved) {
		return
	}
	alb.InsertHelperTraits(i, album.TraitResolved)
	off := alb.CursiveOffset(i)
	if off == 0 {
		return
	}
	partner := i + int(off)
	if partner < 0 || partner >= alb.Len() {
		return
	}
	if alb.Traits(i).Has(album.TraitRightToLeft) {
		resolveCursive(alb, partner)
		alb.SetY(i, alb.Position(i).Y+alb.Position(partner).Y)
	} else {
		alb.SetY(partner, alb.Position(partner).Y+alb.Position(i).Y)
		resolveCursive(alb, partner)
	}
}

// resolveMark folds a mark's base-relative position into an absolute one.
// apply's GPOS executor stores (mark - base) on the mark itself and the
// anchor-relative (x, y) delta; resolveMark adds the base's now-final
// position and then closes the horizontal gap the pen travelled between
// the base and the mark (the sum of intervening advances), since the
// mark's own delta was computed as if mark and base shared one origin.
func resolveMark(alb *album.Album, i int) {
	if !alb.Traits(i).Has(album.TraitAttached) {
		return
	}
	off := alb.AttachmentOffset(i)
	if off == 0 {
		return
	}
	base := i - int(off)
	if base < 0 || base >= alb.Len() {
		return
	}
	basePos := alb.Position(base)
	x := alb.Position(i).X + basePos.X
	alb.SetY(i, alb.Position(i).Y+basePos.Y)
	gap := advanceGap(alb, base, i, alb.Backward())
	if alb.Backward() {
		x += gap
	} else {
		x -= gap
	}
	alb.SetX(i, x)
}

// advanceGap sums the advances the pen crosses between base and mark: for
// left-to-right text, base through the glyph just before mark; for
// right-to-left text, the glyph just after base through mark itself.
func advanceGap(alb *album.Album, base, mark int, backward bool) int32 {
	var sum int32
	if backward {
		for k := base + 1; k <= mark; k++ {
			sum += alb.Advance(k)
		}
	} else {
		for k := base; k < mark; k++ {
			sum += alb.Advance(k)
		}
	}
	return sum
}
