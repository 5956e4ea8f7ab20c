/*
Package artist is the caller-facing entry point for a single shaping run:
bind a font, an input text run and a compiled pattern.Pattern, then drive
discovery, substitution and positioning into a caller-supplied
album.Album.

Grounded on the "Caller-facing operations" block (ArtistCreate, SetString,
SetPattern, SetTextDirection, SetTextMode, FillAlbum) and, for how a
font/params/text triple turns into shaped glyphs, on
opentype.ShapeLatinText and otshape.Params/NewShaper/Shaper.Shape
(opentype.go, otshape/shaper.go): the same "bind the inputs, then shape"
role, re-expressed as a single stateful type matching the caller-facing
operations' shape rather than that one-shot functional
Shape(params, src, sink) function. Writing direction reuses
golang.org/x/text/unicode/bidi.Direction directly, the same type
otshape.Params.Direction carries.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package artist
