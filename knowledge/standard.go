package knowledge

// Standard feature-mask bits for the default/Latin-style shaping table.
const (
	MaskStdCcmp uint16 = 1 << iota
	MaskStdLiga
	MaskStdClig
	MaskStdCalt
)

// Standard is the fallback shaping knowledge used for every script that
// has no dedicated table: character composition and standard/contextual
// ligatures in GSUB, kerning and mark attachment in GPOS. Left-to-right
// by default.
var Standard = ScriptKnowledge{
	ScriptTag: tag("DFLT"),
	Backward:  false,
	GSUBUnits: []FeatureUnitSpec{
		{Features: []FeatureSpec{{Tag: tag("ccmp"), Mask: MaskStdCcmp}}},
		{Features: []FeatureSpec{{Tag: tag("liga"), Mask: MaskStdLiga}, {Tag: tag("clig"), Mask: MaskStdClig}}},
		{Features: []FeatureSpec{{Tag: tag("calt"), Mask: MaskStdCalt}}},
	},
	GPOSUnits: []FeatureUnitSpec{
		{Features: []FeatureSpec{{Tag: tag("kern"), Mask: 0}}},
		{Features: []FeatureSpec{{Tag: tag("mark"), Mask: 0}}},
		{Features: []FeatureSpec{{Tag: tag("mkmk"), Mask: 0}}},
	},
}

func init() {
	registerScript(Standard)
}
