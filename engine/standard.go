package engine

import "github.com/glyphforge/otshape/album"

// Standard is the default shaping engine used for scripts with no
// dedicated joining or reordering behavior: a conservative baseline that
// leaves feature masks untouched, relying entirely on the font's GSUB/
// GPOS lookups.
type Standard struct{}

func (Standard) Name() string { return "standard" }

func (Standard) ProcessAlbum(alb *album.Album, codepoints []rune) {
	_ = alb
	_ = codepoints
}
