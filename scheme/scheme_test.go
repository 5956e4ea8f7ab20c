package scheme

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/glyphforge/otshape/ot"
	"github.com/glyphforge/otshape/pattern"
)

type SchemeTestEnviron struct {
	suite.Suite
}

func TestSchemeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshape.scheme")
	defer teardown()
	suite.Run(t, new(SchemeTestEnviron))
}

func (env *SchemeTestEnviron) SetupSuite() {
	tracing.Select("otshape.scheme").SetTraceLevel(tracing.LevelError)
}

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func be32(v uint32) []byte { return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)} }
func tagBytes(s string) []byte {
	b := make([]byte, 4)
	copy(b, s)
	for i := len(s); i < 4; i++ {
		b[i] = ' '
	}
	return b
}

// buildGSUBFont returns a minimal, synthetic SFNT font containing only a
// GSUB table: script "arab" -> default LangSys -> feature "isol" -> a
// single GSUB-Single lookup (lookup index 0).
func buildGSUBFont() []byte {
	coverage := append(be16(1), append(be16(1), be16(5)...)...) // format1, glyphCount1, glyph=5

	subtable := append(be16(1), be16(6)...) // substFormat1, coverageOffset=6 (header len)
	subtable = append(subtable, be16(1)...) // deltaGlyphID=1
	subtable = append(subtable, coverage...)

	lookupTable := append(be16(1), be16(0)...) // lookupType=1 (Single), lookupFlag=0
	lookupTable = append(lookupTable, be16(1)...)
	lookupTable = append(lookupTable, be16(8)...) // subtableOffsets[0]=8 (header len)
	lookupTable = append(lookupTable, subtable...)

	lookupList := append(be16(1), be16(4)...) // lookupCount=1, offsets[0]=4 (header len)
	lookupList = append(lookupList, lookupTable...)

	featureTable := append(be16(0), be16(1)...) // featureParams=0, lookupIndexCount=1
	featureTable = append(featureTable, be16(0)...)

	featureList := append(be16(1), tagBytes("isol")...)
	featureList = append(featureList, be16(8)...) // featureOffset=8 (header len)
	featureList = append(featureList, featureTable...)

	defaultLangSys := append(be16(0), be16(0xFFFF)...) // lookupOrder=0, requiredFeatureIndex=none
	defaultLangSys = append(defaultLangSys, be16(1)...) // featureIndexCount=1
	defaultLangSys = append(defaultLangSys, be16(0)...) // featureIndices[0]=0

	scriptTable := append(be16(4), be16(0)...) // defaultLangSysOffset=4, langSysCount=0
	scriptTable = append(scriptTable, defaultLangSys...)

	scriptList := append(be16(1), tagBytes("arab")...)
	scriptList = append(scriptList, be16(8)...) // scriptOffset=8 (header len)
	scriptList = append(scriptList, scriptTable...)

	scriptListOffset := 10
	featureListOffset := scriptListOffset + len(scriptList)
	lookupListOffset := featureListOffset + len(featureList)

	gsub := append(be16(1), be16(0)...)
	gsub = append(gsub, be16(uint16(scriptListOffset))...)
	gsub = append(gsub, be16(uint16(featureListOffset))...)
	gsub = append(gsub, be16(uint16(lookupListOffset))...)
	gsub = append(gsub, scriptList...)
	gsub = append(gsub, featureList...)
	gsub = append(gsub, lookupList...)

	tableOffset := 28
	sfntHeader := append(be32(0x00010000), be16(1)...)
	sfntHeader = append(sfntHeader, be16(0)...)
	sfntHeader = append(sfntHeader, be16(0)...)
	sfntHeader = append(sfntHeader, be16(0)...)

	dirEntry := append(tagBytes("GSUB"), be32(0)...)
	dirEntry = append(dirEntry, be32(uint32(tableOffset))...)
	dirEntry = append(dirEntry, be32(uint32(len(gsub)))...)

	data := append(sfntHeader, dirEntry...)
	data = append(data, gsub...)
	return data
}

func (env *SchemeTestEnviron) TestBuildPatternMatchesArabicIsolFeature() {
	font, err := ot.ParseFont(buildGSUBFont())
	env.Require().NoError(err)

	s := New()
	s.SetFont(font)
	s.SetScript(ot.T("arab"))
	p, ok := s.BuildPattern()
	env.Require().True(ok)
	env.True(p.Valid())
	env.Equal(1, p.GSUBUnitCount)
	env.Equal(0, p.GPOSUnitCount)
	env.Contains(p.FeatureTags, ot.T("isol"))
	env.Require().NotEmpty(p.FeatureUnits)
	env.Equal([]pattern.LookupRef{{LookupIndex: 0, Kind: pattern.Gsub}}, p.FeatureUnits[0].Lookups)
}

func (env *SchemeTestEnviron) TestBuildPatternFailsWithoutFont() {
	s := New()
	_, ok := s.BuildPattern()
	env.False(ok)
}

func (env *SchemeTestEnviron) TestBuildPatternFailsForUnknownScriptWithNoDFLT() {
	font, err := ot.ParseFont(buildGSUBFont())
	env.Require().NoError(err)
	s := New()
	s.SetFont(font)
	s.SetScript(ot.T("thai"))
	_, ok := s.BuildPattern()
	env.False(ok)
}

// buildGSUBFontWithDFLTScript is buildGSUBFont's ScriptList with a second,
// identical script record added under the "DFLT" tag, so a test can tell
// apart "no usable script at all" from "script absent, DFLT present".
func buildGSUBFontWithDFLTScript() []byte {
	defaultLangSys := append(be16(0), be16(0xFFFF)...)
	defaultLangSys = append(defaultLangSys, be16(1)...)
	defaultLangSys = append(defaultLangSys, be16(0)...)

	scriptTable := append(be16(4), be16(0)...)
	scriptTable = append(scriptTable, defaultLangSys...)

	const scriptListHeaderLen = 2 + 2*6 // count + 2*(tag+offset)
	scriptList := append(be16(2), tagBytes("DFLT")...)
	scriptList = append(scriptList, be16(scriptListHeaderLen)...)
	scriptList = append(scriptList, tagBytes("arab")...)
	scriptList = append(scriptList, be16(uint16(scriptListHeaderLen+len(scriptTable)))...)
	scriptList = append(scriptList, scriptTable...)
	scriptList = append(scriptList, scriptTable...)

	featureTable := append(be16(0), be16(1)...)
	featureTable = append(featureTable, be16(0)...)

	featureList := append(be16(1), tagBytes("isol")...)
	featureList = append(featureList, be16(8)...)
	featureList = append(featureList, featureTable...)

	coverage := append(be16(1), append(be16(1), be16(5)...)...)
	subtable := append(be16(1), be16(6)...)
	subtable = append(subtable, be16(1)...)
	subtable = append(subtable, coverage...)

	lookupTable := append(be16(1), be16(0)...)
	lookupTable = append(lookupTable, be16(1)...)
	lookupTable = append(lookupTable, be16(8)...)
	lookupTable = append(lookupTable, subtable...)

	lookupList := append(be16(1), be16(4)...)
	lookupList = append(lookupList, lookupTable...)

	scriptListOffset := 10
	featureListOffset := scriptListOffset + len(scriptList)
	lookupListOffset := featureListOffset + len(featureList)

	gsub := append(be16(1), be16(0)...)
	gsub = append(gsub, be16(uint16(scriptListOffset))...)
	gsub = append(gsub, be16(uint16(featureListOffset))...)
	gsub = append(gsub, be16(uint16(lookupListOffset))...)
	gsub = append(gsub, scriptList...)
	gsub = append(gsub, featureList...)
	gsub = append(gsub, lookupList...)

	tableOffset := 28
	sfntHeader := append(be32(0x00010000), be16(1)...)
	sfntHeader = append(sfntHeader, be16(0)...)
	sfntHeader = append(sfntHeader, be16(0)...)
	sfntHeader = append(sfntHeader, be16(0)...)

	dirEntry := append(tagBytes("GSUB"), be32(0)...)
	dirEntry = append(dirEntry, be32(uint32(tableOffset))...)
	dirEntry = append(dirEntry, be32(uint32(len(gsub)))...)

	data := append(sfntHeader, dirEntry...)
	data = append(data, gsub...)
	return data
}

// TestBuildPatternFailsForUnknownScriptEvenWithDFLTPresent locks in that a
// script tag absent from the font's ScriptList fails outright: unlike a
// LangSys missing within an already-matched script, there is no DFLT
// script-level fallback.
func (env *SchemeTestEnviron) TestBuildPatternFailsForUnknownScriptEvenWithDFLTPresent() {
	font, err := ot.ParseFont(buildGSUBFontWithDFLTScript())
	env.Require().NoError(err)
	s := New()
	s.SetFont(font)
	s.SetScript(ot.T("thai"))
	_, ok := s.BuildPattern()
	env.False(ok)
}
