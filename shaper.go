/*
Package otshape shapes OpenType text runs: mapping code points to glyphs,
substituting and repositioning them per a font's GSUB/GPOS tables and a
script's shaping knowledge.

This file is a convenience layer over the package's building blocks
(scheme.Scheme, artist.Artist, shapefont.ShapingFont) for the common case
of a single font, a single script, one short run of text. Clients who
need to reuse a compiled pattern.Pattern across many runs, shape several
scripts against one font, or control text direction/mode explicitly
should use scheme and artist directly instead — this file's streamlined
one-call API trades that control away for convenience.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package otshape

import (
	"errors"

	"golang.org/x/text/unicode/bidi"

	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/artist"
	"github.com/glyphforge/otshape/ot"
	"github.com/glyphforge/otshape/scheme"
	"github.com/glyphforge/otshape/sfntfont"
	"github.com/glyphforge/otshape/shapefont"
)

// FromSFNT decodes a raw SFNT byte stream (TrueType or CFF-flavored
// OpenType) and returns a ShapingFont ready for scheme.Scheme.SetFont /
// artist.Artist.SetFont.
//
// The input is expected to contain a complete single-font SFNT stream.
// It must not change after parsing for the font to remain usable.
func FromSFNT(data []byte) (*shapefont.ShapingFont, error) {
	raw, err := sfntfont.Parse(data)
	if err != nil {
		return nil, err
	}
	return shapefont.New(raw), nil
}

// errNoUsablePattern is returned by ShapeText/ShapeLatinText when font
// carries neither a usable GSUB nor GPOS LangSys for the requested
// script, the same sentinel scheme.Scheme.BuildPattern signals with its
// boolean return.
var errNoUsablePattern = errors.New("otshape: font has no usable GSUB/GPOS for the requested script")

// ShapeText shapes UTF-8 text as one run in scriptTag, in direction dir.
// It returns the fully arranged Album: glyph IDs, positions, advances
// and the code-unit-to-glyph map are all available from it once this
// returns without error. If font is nil or text is empty, it returns a
// nil Album and a nil error.
//
// This is a convenience API for a single-script, single-run shape. Do
// several runs of the same script against the same font need shaping,
// build the Pattern once with scheme.Scheme and reuse it across several
// artist.Artist calls instead.
func ShapeText(font *shapefont.ShapingFont, text string, scriptTag ot.Tag, dir bidi.Direction) (*album.Album, error) {
	if font == nil || text == "" {
		return nil, nil
	}
	sch := scheme.New()
	sch.SetFont(font.Layout())
	sch.SetScript(scriptTag)
	pat, ok := sch.BuildPattern()
	if !ok {
		return nil, errNoUsablePattern
	}

	art := artist.New()
	art.SetFont(font)
	art.SetUTF8String(text)
	art.SetPattern(pat)
	art.SetTextDirection(dir)

	alb := album.New()
	if err := art.FillAlbum(alb); err != nil {
		return nil, err
	}
	return alb, nil
}

// ShapeLatinText shapes UTF-8 text as one left-to-right run in Latin
// script. It uses script tag "latn" and returns the fully arranged
// Album. If font is nil or text is empty, it does nothing.
//
// This is a convenience API for a very common use-case of short pieces
// of Western text. Clients who need more control over shaping — other
// scripts, explicit language selection, right-to-left runs, reusing one
// compiled Pattern across many calls — should use scheme and artist
// directly.
func ShapeLatinText(font *shapefont.ShapingFont, text string) (*album.Album, error) {
	return ShapeText(font, text, ot.T("latn"), bidi.LeftToRight)
}
