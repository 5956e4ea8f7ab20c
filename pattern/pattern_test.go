package pattern

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"

	"github.com/glyphforge/otshape/ot"
)

type PatternTestEnviron struct {
	suite.Suite
}

func TestPatternFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otshape.pattern")
	defer teardown()
	suite.Run(t, new(PatternTestEnviron))
}

func (env *PatternTestEnviron) SetupSuite() {
	tracing.Select("otshape.pattern").SetTraceLevel(tracing.LevelError)
}

var tag = ot.T

func (env *PatternTestEnviron) TestEmptyBuilderProducesEmptyPattern() {
	b := NewBuilder(nil, tag("arab"), tag("dflt"), true)
	p := b.Build()
	env.False(p.Valid())
	env.Equal(0, p.GSUBUnitCount)
	env.Equal(0, p.GPOSUnitCount)
}

func (env *PatternTestEnviron) TestSingleFeatureUnitSortsAndDedupsLookups() {
	b := NewBuilder(&ot.Font{}, tag("arab"), tag("dflt"), true)
	b.BeginFeatures(Gsub)
	b.AddFeature(tag("init"), 0x0001)
	b.AddLookup(5)
	b.AddLookup(2)
	b.AddLookup(5)
	b.MakeFeatureUnit()
	b.EndFeatures()
	p := b.Build()

	env.True(p.Valid())
	env.Equal(1, p.GSUBUnitCount)
	env.Equal(0, p.GPOSUnitCount)
	env.Require().Len(p.FeatureUnits, 1)
	unit := p.FeatureUnits[0]
	env.Equal(uint16(0x0001), unit.Mask)
	env.Equal([]LookupRef{{LookupIndex: 2, Kind: Gsub}, {LookupIndex: 5, Kind: Gsub}}, unit.Lookups)
	env.Equal(0, unit.FeatureStart)
	env.Equal(1, unit.FeatureCount)
	env.Equal([]ot.Tag{tag("init")}, p.FeatureTags)
}

func (env *PatternTestEnviron) TestBatchedFeaturesShareOneUnit() {
	b := NewBuilder(&ot.Font{}, tag("arab"), tag("dflt"), true)
	b.BeginFeatures(Gsub)
	b.AddFeature(tag("init"), 0x0001)
	b.AddLookup(1)
	b.AddFeature(tag("medi"), 0x0002)
	b.AddLookup(2)
	b.MakeFeatureUnit()
	b.EndFeatures()
	p := b.Build()

	env.Require().Len(p.FeatureUnits, 1)
	unit := p.FeatureUnits[0]
	env.Equal(uint16(0x0003), unit.Mask)
	env.Equal(2, unit.FeatureCount)
	env.Equal([]ot.Tag{tag("init"), tag("medi")}, p.FeatureTags)
}

func (env *PatternTestEnviron) TestDuplicateFeatureTagNotReAdded() {
	b := NewBuilder(&ot.Font{}, tag("latn"), tag("dflt"), false)
	b.BeginFeatures(Gsub)
	b.AddFeature(tag("liga"), 0x0001)
	b.AddLookup(1)
	b.MakeFeatureUnit()
	b.AddFeature(tag("liga"), 0x0001)
	b.AddLookup(2)
	b.MakeFeatureUnit()
	b.EndFeatures()
	p := b.Build()

	env.Equal([]ot.Tag{tag("liga")}, p.FeatureTags)
	env.Require().Len(p.FeatureUnits, 2)
	env.Equal(0, p.FeatureUnits[0].FeatureStart)
	env.Equal(1, p.FeatureUnits[0].FeatureCount)
	env.Equal(1, p.FeatureUnits[1].FeatureStart)
	env.Equal(0, p.FeatureUnits[1].FeatureCount)
}

func (env *PatternTestEnviron) TestGsubUnitsPrecedeGposUnitsInSequentialPipeline() {
	b := NewBuilder(&ot.Font{}, tag("latn"), tag("dflt"), false)
	b.BeginFeatures(Gsub)
	b.AddFeature(tag("liga"), 0x0001)
	b.AddLookup(1)
	b.MakeFeatureUnit()
	b.EndFeatures()

	b.BeginFeatures(Gpos)
	b.AddFeature(tag("kern"), 0x0002)
	b.AddLookup(9)
	b.MakeFeatureUnit()
	b.EndFeatures()

	p := b.Build()
	env.Equal(1, p.GSUBUnitCount)
	env.Equal(1, p.GPOSUnitCount)
	env.Require().Len(p.FeatureUnits, 2)
	env.Equal(Gsub, p.FeatureUnits[0].Lookups[0].Kind)
	env.Equal(Gpos, p.FeatureUnits[1].Lookups[0].Kind)
}
