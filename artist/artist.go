package artist

import (
	"errors"

	"golang.org/x/text/unicode/bidi"

	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/codepoints"
	"github.com/glyphforge/otshape/pattern"
	"github.com/glyphforge/otshape/process"
	"github.com/glyphforge/otshape/shapefont"
)

// TextMode selects the order FillAlbum feeds code points to the shaper
// in, independent of the run's writing direction (see SetTextDirection):
// a right-to-left run's code points still usually arrive in logical
// (Forward) order, and Backward exists for callers that already walk
// their buffer from its tail.
type TextMode uint8

const (
	Forward TextMode = iota
	Backward
)

// ErrNoString is returned by FillAlbum when no text has been bound via
// SetUTF8String, SetUTF16String or SetRunes.
var ErrNoString = errors.New("artist: no string set")

// ErrNoPattern is returned by FillAlbum when no usable pattern has been
// bound via SetPattern.
var ErrNoPattern = errors.New("artist: no pattern set")

// ErrNoFont is returned by FillAlbum when no host font has been bound via
// SetFont.
var ErrNoFont = errors.New("artist: no font set")

// Artist binds a host font, a compiled pattern.Pattern and one input text
// run, then drives a single shaping pass into a caller-supplied
// album.Album. An Artist is reusable across runs: rebind whichever of
// font, text or pattern changed and call FillAlbum again.
type Artist struct {
	font          *shapefont.ShapingFont
	seq           *codepoints.Sequence
	codeUnitCount int
	pat           pattern.Pattern
	havePattern   bool
	direction     bidi.Direction
	haveDirection bool
	mode          TextMode
}

// New returns an empty Artist. Call SetFont, one of SetUTF8String /
// SetUTF16String / SetRunes, and SetPattern before FillAlbum.
func New() *Artist {
	return &Artist{}
}

// SetFont selects the host font FillAlbum maps code points and queries
// glyph metrics against.
func (a *Artist) SetFont(font *shapefont.ShapingFont) { a.font = font }

// SetUTF8String binds the run's text from UTF-8-encoded bytes.
func (a *Artist) SetUTF8String(s string) {
	a.seq = codepoints.NewUTF8(s)
	a.codeUnitCount = len(s)
}

// SetUTF16String binds the run's text from native-endian UTF-16 code
// units, decoding surrogate pairs during shaping.
func (a *Artist) SetUTF16String(u []uint16) {
	a.seq = codepoints.NewUTF16(u)
	a.codeUnitCount = len(u)
}

// SetRunes binds the run's text from already-decoded code points, the
// native rune-slice counterpart of a UTF-32 buffer.
func (a *Artist) SetRunes(r []rune) {
	a.seq = codepoints.NewRunes(r)
	a.codeUnitCount = len(r)
}

// SetPattern selects the compiled shaping plan FillAlbum applies.
func (a *Artist) SetPattern(pat pattern.Pattern) {
	a.pat = pat
	a.havePattern = true
}

// SetTextDirection overrides the run's writing direction. If never
// called, FillAlbum falls back to the bound pattern's DefaultDirection,
// the shaping direction its script's knowledge table prescribes.
func (a *Artist) SetTextDirection(dir bidi.Direction) {
	a.direction = dir
	a.haveDirection = true
}

// SetTextMode selects the order code points are consumed in during
// discovery; see TextMode.
func (a *Artist) SetTextMode(mode TextMode) { a.mode = mode }

// FillAlbum drives one shaping run — glyph discovery, substitution and
// positioning — into alb and finishes it with WrapUp, leaving alb ready
// for GlyphForCodeUnit/AllGlyphs and position/advance queries. alb must
// be fresh from album.New: filling starts only from the empty state, so an
// album that has already been through FillAlbum cannot be filled again.
func (a *Artist) FillAlbum(alb *album.Album) error {
	if a.font == nil {
		return ErrNoFont
	}
	if a.seq == nil {
		return ErrNoString
	}
	if !a.havePattern || !a.pat.Valid() {
		return ErrNoPattern
	}

	backward := a.pat.DefaultDirection
	if a.haveDirection {
		backward = a.direction == bidi.RightToLeft
	}

	var p process.Processor
	p.Initialize(a.font, a.pat, alb, backward)
	p.Run(a.seq, a.codeUnitCount, a.mode == Backward)
	alb.WrapUp(a.codeUnitCount)
	return nil
}
