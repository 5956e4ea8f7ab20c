package knowledge

import "github.com/glyphforge/otshape/ot"

var tag = ot.T

// Arabic feature-mask bits. Each joining-form feature gets its own bit
// because the joining engine assigns exactly one form per glyph; the
// remaining features are plain on/off per glyph and never compete for a
// bit with a sibling.
const (
	MaskIsol uint16 = 1 << iota
	MaskFina
	MaskFin2
	MaskFin3
	MaskMedi
	MaskMed2
	MaskInit
	MaskRlig
	MaskCalt
	MaskRclt
	MaskLiga
	MaskClig
	MaskMset
	MaskCcmp
	MaskLocl
	MaskStch
)

// Arabic is the shaping knowledge for the Arabic script (and, by alias,
// Syriac): required contextual substitution and localized-form features
// first, then the joining-form selector features in the fixed isol/fina/
// fin2/fin3/medi/med2/init order a left-to-right joining scan produces,
// then the optional ligature/mark-positioning-prep features.
var Arabic = ScriptKnowledge{
	ScriptTag: tag("arab"),
	Backward:  true,
	GSUBUnits: []FeatureUnitSpec{
		{Features: []FeatureSpec{{Tag: tag("stch"), Mask: MaskStch}}},
		{Features: []FeatureSpec{{Tag: tag("ccmp"), Mask: MaskCcmp}, {Tag: tag("locl"), Mask: MaskLocl}}},
		{Features: []FeatureSpec{{Tag: tag("isol"), Mask: MaskIsol}}},
		{Features: []FeatureSpec{{Tag: tag("fina"), Mask: MaskFina}}},
		{Features: []FeatureSpec{{Tag: tag("fin2"), Mask: MaskFin2}}},
		{Features: []FeatureSpec{{Tag: tag("fin3"), Mask: MaskFin3}}},
		{Features: []FeatureSpec{{Tag: tag("medi"), Mask: MaskMedi}}},
		{Features: []FeatureSpec{{Tag: tag("med2"), Mask: MaskMed2}}},
		{Features: []FeatureSpec{{Tag: tag("init"), Mask: MaskInit}}},
		{Features: []FeatureSpec{{Tag: tag("rlig"), Mask: MaskRlig}}},
		{Features: []FeatureSpec{{Tag: tag("calt"), Mask: MaskCalt}, {Tag: tag("rclt"), Mask: MaskRclt}}},
		{Features: []FeatureSpec{
			{Tag: tag("liga"), Mask: MaskLiga},
			{Tag: tag("clig"), Mask: MaskClig},
			{Tag: tag("mset"), Mask: MaskMset},
		}},
	},
	GPOSUnits: []FeatureUnitSpec{
		{Features: []FeatureSpec{{Tag: tag("curs"), Mask: 0}}},
		{Features: []FeatureSpec{{Tag: tag("kern"), Mask: 0}}},
		{Features: []FeatureSpec{{Tag: tag("mark"), Mask: 0}}},
		{Features: []FeatureSpec{{Tag: tag("mkmk"), Mask: 0}}},
	},
}

func init() {
	registerScript(Arabic)
}
