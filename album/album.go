package album

import (
	"fmt"

	"github.com/glyphforge/otshape/ot"
)

// State is one phase of an Album's lifecycle.
type State int

const (
	StateEmpty State = iota
	StateFilling
	StateFilled
	StateArranging
	StateArranged
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFilling:
		return "filling"
	case StateFilled:
		return "filled"
	case StateArranging:
		return "arranging"
	case StateArranged:
		return "arranged"
	default:
		return "unknown"
	}
}

// GlyphDetail accompanies every glyph in an Album: which source code unit
// it traces back to, its feature/trait mask, and its attachment offsets
// (signed displacements in glyph indices to a partner glyph; 0 = none).
type GlyphDetail struct {
	Association      int
	Mask             GlyphMask
	CursiveOffset     int16
	AttachmentOffset  int16
}

// Position is a glyph's (x, y) placement offset, set during arranging.
type Position struct {
	X, Y int32
}

// Album is the mutable working buffer of one shaping run.
type Album struct {
	glyphs    []ot.GlyphIndex
	detail    []GlyphDetail
	positions []Position
	advances  []int32

	codeUnitToGlyph []int

	state   State
	version uint64

	backward bool // run direction, used by WrapUp
}

// New returns an empty Album, ready for BeginFilling.
func New() *Album {
	return &Album{state: StateEmpty}
}

// State returns the Album's current lifecycle phase.
func (a *Album) State() State { return a.state }

// Version returns the Album's mutation counter; Locators compare against
// this to detect staleness.
func (a *Album) Version() uint64 { return a.version }

// Len returns the number of glyphs currently in the Album.
func (a *Album) Len() int { return len(a.glyphs) }

// Backward reports the run direction set by BeginArranging: true for a
// right-to-left shaping run.
func (a *Album) Backward() bool { return a.backward }

// BeginFilling transitions Empty -> Filling, reserving 2*codeUnitCount
// slots as a capacity hint: most shaping produces roughly one glyph per
// code unit, occasionally two.
func (a *Album) BeginFilling(codeUnitCount int) {
	if a.state != StateEmpty {
		panic(fmt.Sprintf("album: BeginFilling called in state %s", a.state))
	}
	a.glyphs = make([]ot.GlyphIndex, 0, 2*codeUnitCount)
	a.detail = make([]GlyphDetail, 0, 2*codeUnitCount)
	a.state = StateFilling
}

func (a *Album) assertFilling() {
	if a.state != StateFilling {
		panic(fmt.Sprintf("album: operation requires state filling, got %s", a.state))
	}
}

// AddGlyph appends one glyph with the empty-sentinel mask.
func (a *Album) AddGlyph(id ot.GlyphIndex, traits GlyphTraits, association int) {
	a.assertFilling()
	a.glyphs = append(a.glyphs, id)
	m := EmptyMask()
	m.Traits = traits
	a.detail = append(a.detail, GlyphDetail{Association: association, Mask: m})
	a.version++
}

// ReserveGlyphs inserts n uninitialized slots at index i.
func (a *Album) ReserveGlyphs(i, n int) {
	a.assertFilling()
	if i < 0 || i > len(a.glyphs) || n < 0 {
		panic("album: ReserveGlyphs index out of range")
	}
	a.glyphs = insertGlyphs(a.glyphs, i, n)
	a.detail = insertDetail(a.detail, i, n)
	a.version++
}

func insertGlyphs(s []ot.GlyphIndex, i, n int) []ot.GlyphIndex {
	out := make([]ot.GlyphIndex, len(s)+n)
	copy(out, s[:i])
	copy(out[i+n:], s[i:])
	return out
}

func insertDetail(s []GlyphDetail, i, n int) []GlyphDetail {
	out := make([]GlyphDetail, len(s)+n)
	copy(out, s[:i])
	for k := i; k < i+n; k++ {
		out[k].Mask = EmptyMask()
	}
	copy(out[i+n:], s[i:])
	return out
}

// SetGlyph overwrites the glyph id at index i.
func (a *Album) SetGlyph(i int, id ot.GlyphIndex) {
	a.glyphs[i] = id
}

// Glyph returns the glyph id at index i.
func (a *Album) Glyph(i int) ot.GlyphIndex { return a.glyphs[i] }

// SetFeatureMask sets the feature mask of the glyph at index i.
func (a *Album) SetFeatureMask(i int, mask uint16) {
	a.detail[i].Mask.FeatureMask = mask
}

// FeatureMask returns the feature mask of the glyph at index i.
func (a *Album) FeatureMask(i int) uint16 { return a.detail[i].Mask.FeatureMask }

// SetAllTraits overwrites the full traits field of the glyph at index i.
func (a *Album) SetAllTraits(i int, traits GlyphTraits) {
	a.detail[i].Mask.Traits = traits
}

// Traits returns the traits field of the glyph at index i.
func (a *Album) Traits(i int) GlyphTraits { return a.detail[i].Mask.Traits }

// ReplaceBasicTraits replaces only the disjoint type bits of the glyph at
// index i, leaving helper bits untouched.
func (a *Album) ReplaceBasicTraits(i int, typ GlyphTraits) {
	t := a.detail[i].Mask.Traits
	a.detail[i].Mask.Traits = (t &^ typeTraitsMask) | (typ & typeTraitsMask)
}

// SetAssociation sets the source code-unit association of the glyph at
// index i.
func (a *Album) SetAssociation(i, association int) {
	a.detail[i].Association = association
}

// Association returns the source code-unit association of the glyph at
// index i.
func (a *Album) Association(i int) int { return a.detail[i].Association }

// Detail returns a copy of the glyph detail at index i.
func (a *Album) Detail(i int) GlyphDetail { return a.detail[i] }

// EndFilling transitions Filling -> Filled.
func (a *Album) EndFilling() {
	a.assertFilling()
	a.state = StateFilled
}

// BeginArranging transitions Filled -> Arranging, sizing the positions and
// advances arrays to the final glyph count and sets the run direction used
// by WrapUp.
func (a *Album) BeginArranging(backward bool) {
	if a.state != StateFilled {
		panic(fmt.Sprintf("album: BeginArranging called in state %s", a.state))
	}
	a.positions = make([]Position, len(a.glyphs))
	a.advances = make([]int32, len(a.glyphs))
	a.backward = backward
	a.state = StateArranging
}

func (a *Album) assertArranging() {
	if a.state != StateArranging {
		panic(fmt.Sprintf("album: operation requires state arranging, got %s", a.state))
	}
}

// SetX sets the x offset of glyph i.
func (a *Album) SetX(i int, x int32) { a.assertArranging(); a.positions[i].X = x }

// SetY sets the y offset of glyph i.
func (a *Album) SetY(i int, y int32) { a.assertArranging(); a.positions[i].Y = y }

// Position returns the (x, y) offset of glyph i.
func (a *Album) Position(i int) Position { return a.positions[i] }

// SetAdvance sets the advance of glyph i.
func (a *Album) SetAdvance(i int, adv int32) { a.assertArranging(); a.advances[i] = adv }

// Advance returns the advance of glyph i.
func (a *Album) Advance(i int) int32 { return a.advances[i] }

// SetCursiveOffset sets the signed glyph-index displacement to glyph i's
// cursive attachment partner (0 = none).
func (a *Album) SetCursiveOffset(i int, off int16) {
	a.assertArranging()
	a.detail[i].CursiveOffset = off
}

// CursiveOffset returns the cursive-attachment displacement for glyph i.
func (a *Album) CursiveOffset(i int) int16 { return a.detail[i].CursiveOffset }

// SetAttachmentOffset sets the signed glyph-index displacement to glyph i's
// mark-attachment partner (0 = none).
func (a *Album) SetAttachmentOffset(i int, off int16) {
	a.assertArranging()
	a.detail[i].AttachmentOffset = off
}

// AttachmentOffset returns the mark-attachment displacement for glyph i.
func (a *Album) AttachmentOffset(i int) int16 { return a.detail[i].AttachmentOffset }

// InsertHelperTraits ORs helper bits into glyph i's traits without
// disturbing the disjoint type bits.
func (a *Album) InsertHelperTraits(i int, helper GlyphTraits) {
	a.detail[i].Mask.Traits |= helper &^ typeTraitsMask
}

// RemoveHelperTraits clears helper bits from glyph i's traits.
func (a *Album) RemoveHelperTraits(i int, helper GlyphTraits) {
	a.detail[i].Mask.Traits &^= helper &^ typeTraitsMask
}

// EndArranging transitions Arranging -> Arranged.
func (a *Album) EndArranging() {
	a.assertArranging()
	a.state = StateArranged
}

// WrapUp builds codeUnitToGlyph: for each glyph in order of growing
// code-unit association, it records the first glyph that covers a given
// code unit, with intermediate code units mapping to the most recently
// seen glyph. When the run was shaped backward, associations are walked in
// reverse so the same rule yields the correct mapping for right-to-left
// text. Placeholder glyphs (consumed ligature components) keep the
// association of the ligature's first component, so every code unit they
// cover collapses onto that one glyph.
func (a *Album) WrapUp(codeUnitCount int) {
	if a.state != StateArranged {
		panic(fmt.Sprintf("album: WrapUp called in state %s", a.state))
	}
	a.codeUnitToGlyph = make([]int, codeUnitCount)
	for i := range a.codeUnitToGlyph {
		a.codeUnitToGlyph[i] = -1
	}
	order := make([]int, len(a.glyphs))
	for i := range order {
		order[i] = i
	}
	if a.backward {
		for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
			order[l], order[r] = order[r], order[l]
		}
	}
	for _, gi := range order {
		assoc := a.detail[gi].Association
		if assoc < 0 || assoc >= codeUnitCount {
			continue
		}
		if a.codeUnitToGlyph[assoc] == -1 {
			a.codeUnitToGlyph[assoc] = gi
		}
	}
	// Fill gaps: code units between two associated glyphs map to the most
	// recently assigned glyph in scan order.
	prev := -1
	for _, cu := range scanOrder(codeUnitCount, a.backward) {
		if a.codeUnitToGlyph[cu] == -1 {
			a.codeUnitToGlyph[cu] = prev
		} else {
			prev = a.codeUnitToGlyph[cu]
		}
	}
}

func scanOrder(n int, backward bool) []int {
	order := make([]int, n)
	if backward {
		for i := 0; i < n; i++ {
			order[i] = n - 1 - i
		}
	} else {
		for i := 0; i < n; i++ {
			order[i] = i
		}
	}
	return order
}

// GlyphForCodeUnit returns the glyph index covering code unit cu, or -1 if
// WrapUp has not run or cu is out of range.
func (a *Album) GlyphForCodeUnit(cu int) int {
	if cu < 0 || cu >= len(a.codeUnitToGlyph) {
		return -1
	}
	return a.codeUnitToGlyph[cu]
}

// AllGlyphs returns the Album's glyph sequence. The returned slice aliases
// internal storage and must not be mutated by the caller.
func (a *Album) AllGlyphs() []ot.GlyphIndex { return a.glyphs }
