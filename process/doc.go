/*
Package process orchestrates one shaping run's Album from raw code
points through to final glyph positions: discover glyphs from the input
sequence via the font's cmap and GDEF glyph classes, run the script's
Engine once, apply every GSUB feature unit (growing the Album in place
where a lookup needs to), transition to arranging, seed advances from
the font's metrics, apply every GPOS feature unit, and fold the
cursive/mark attachment links GPOS left behind into final positions.

Grounded on the "Text processor — the orchestrator" pseudocode and, for
the loop structure applying a feature unit's lookups against a reset,
feature-mask-filtered locator, on otshape/lookups.go's
planExecutor.applyLookups/applyLookupSpan/applyFeatureRangesToMasks: the
same mask-gated, locator-driven per-glyph lookup loop, re-expressed
against album.Album/locator.Locator/pattern.Pattern instead of its
runBuffer/otlayout.BufferState/plan types, and without its streaming/
buffer-realignment machinery (this package's Album already keeps its own
length in sync via locator.ReserveGlyphs).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package process

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.process")
}
