package engine

import "github.com/glyphforge/otshape/album"

// Engine is a script-specific shaping pass run once over a newly filled
// album, before any GSUB lookup is applied. It inspects and may rewrite
// per-glyph feature masks (never the glyph sequence itself — glyph count
// changes are GSUB's job).
type Engine interface {
	// Name identifies the engine (e.g. "arabic", "standard").
	Name() string
	// ProcessAlbum inspects alb's glyph sequence (already filled, not yet
	// arranged) and the original Unicode code point backing each glyph,
	// setting feature-mask bits the pattern's feature units will select on.
	ProcessAlbum(alb *album.Album, codepoints []rune)
}

// ForScript picks the engine a script needs: Arabic (also used for every
// script knowledge.ScriptAliases folds onto Arabic) or Standard for
// everything else.
func ForScript(backward bool, isArabicLike bool) Engine {
	if isArabicLike {
		return &Arabic{}
	}
	return Standard{}
}
