package knowledge

import "github.com/glyphforge/otshape/ot"

// FeatureSpec names one OpenType feature a script's shaping knowledge
// requires, together with the feature-mask bit the engine will later set
// on album glyphs to select it (0 means "no mask bit", i.e. the feature is
// always on for every glyph in its unit).
type FeatureSpec struct {
	Tag  ot.Tag
	Mask uint16
}

// FeatureUnitSpec is a batch of features that must land in the same
// pattern.FeatureUnit: the font's combined lookups for all of them run as
// one pipeline stage, once, in the glyph-sequence order the Locator walks.
type FeatureUnitSpec struct {
	Features []FeatureSpec
}

// ScriptKnowledge describes how one script wants its feature units built,
// ordered separately for the GSUB and GPOS pipeline halves.
type ScriptKnowledge struct {
	ScriptTag ot.Tag
	Backward  bool // default run direction is right-to-left
	GSUBUnits []FeatureUnitSpec
	GPOSUnits []FeatureUnitSpec
}

// FeatureMask returns the OR of every feature's mask bit in k, the value a
// text processor clears from an album glyph's feature mask before
// assigning it a fresh, script-specific one.
func (k ScriptKnowledge) FeatureMask() uint16 {
	var m uint16
	for _, units := range [][]FeatureUnitSpec{k.GSUBUnits, k.GPOSUnits} {
		for _, u := range units {
			for _, f := range u.Features {
				m |= f.Mask
			}
		}
	}
	return m
}

// knowledgeByScript indexes the built-in tables by their canonical script
// tag; registerScript populates it from each table's init function.
var knowledgeByScript = map[ot.Tag]ScriptKnowledge{}

func registerScript(k ScriptKnowledge) {
	knowledgeByScript[k.ScriptTag] = k
}

// Lookup returns the shaping knowledge for scriptTag, resolving aliases
// first (see aliases.go), falling back to the Standard table when the
// script has no dedicated entry.
func Lookup(scriptTag ot.Tag) ScriptKnowledge {
	if canon, ok := ScriptAliases[scriptTag]; ok {
		scriptTag = canon
	}
	if k, ok := knowledgeByScript[scriptTag]; ok {
		return k
	}
	return Standard
}
