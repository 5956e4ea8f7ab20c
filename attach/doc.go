/*
Package attach composes the per-glyph cursive and mark-attachment links
GPOS positioning left behind on an Album into final, absolute position
offsets.

apply's GPOS executors resolve a cursive pair's x entirely locally (by
rewriting the first glyph's advance and setting the second glyph's x to
-entry.x), but leave the y accumulation and the mark-to-base/ligature/mark
horizontal pen gap for this package, since a chain of cursively- or
mark-connected glyphs may still have pending ancestors when a single GPOS
lookup runs. ResolveAttachments walks the cursive chain first (forward
from the earlier glyph of each pair, which carries the link) and then the
mark chain (backward from each attached mark to its base), closing the
horizontal gap the pen travelled in between.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package attach

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.attach")
}
