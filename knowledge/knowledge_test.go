package knowledge

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

type KnowledgeTestEnviron struct {
	suite.Suite
}

func TestKnowledgeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshape.knowledge")
	defer teardown()
	suite.Run(t, new(KnowledgeTestEnviron))
}

func (env *KnowledgeTestEnviron) SetupSuite() {
	tracing.Select("otshape.knowledge").SetTraceLevel(tracing.LevelError)
}

func (env *KnowledgeTestEnviron) TestLookupArabicByCanonicalTag() {
	k := Lookup(tag("arab"))
	env.Equal(tag("arab"), k.ScriptTag)
	env.True(k.Backward)
}

func (env *KnowledgeTestEnviron) TestLookupSyriacAliasesToArabic() {
	k := Lookup(tag("syrc"))
	env.Equal(tag("arab"), k.ScriptTag)
}

func (env *KnowledgeTestEnviron) TestLookupUnknownScriptFallsBackToStandard() {
	k := Lookup(tag("xxxx"))
	env.Equal(Standard.ScriptTag, k.ScriptTag)
	env.False(k.Backward)
}

func (env *KnowledgeTestEnviron) TestArabicFormMaskBitsAreDisjoint() {
	var seen uint16
	for _, m := range []uint16{MaskIsol, MaskFina, MaskFin2, MaskFin3, MaskMedi, MaskMed2, MaskInit} {
		env.Zero(seen & m)
		seen |= m
	}
}

func (env *KnowledgeTestEnviron) TestFeatureMaskCoversEveryGSUBBit() {
	mask := Arabic.FeatureMask()
	env.NotZero(mask & MaskIsol)
	env.NotZero(mask & MaskStch)
	for _, unit := range Arabic.GSUBUnits {
		for _, f := range unit.Features {
			env.NotZero(mask & f.Mask)
		}
	}
}
