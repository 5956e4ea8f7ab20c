package pattern

import (
	"sort"

	"github.com/glyphforge/otshape/ot"
)

// LookupKind distinguishes a GSUB lookup from a GPOS lookup.
type LookupKind int

const (
	Gsub LookupKind = iota
	Gpos
)

// LookupRef names one lookup a feature unit applies.
type LookupRef struct {
	LookupIndex uint16
	Kind        LookupKind
}

// FeatureUnit groups the OpenType features that must be applied together
// as one pipeline stage: a range into the Pattern's FeatureTags slice, a
// shared feature mask, and the sorted, deduplicated lookups those features
// reference.
type FeatureUnit struct {
	FeatureStart int
	FeatureCount int
	Mask         uint16
	Lookups      []LookupRef
}

// Pattern is an immutable, compiled shaping plan for one (font, script,
// language) combination.
type Pattern struct {
	Font             *ot.Font
	ScriptTag        ot.Tag
	LanguageTag      ot.Tag
	DefaultDirection bool // true = right-to-left
	FeatureTags      []ot.Tag
	FeatureUnits     []FeatureUnit
	GSUBUnitCount    int
	GPOSUnitCount    int
}

// Valid reports whether Build produced a usable pattern (the sentinel
// "no pattern" case is the Pattern zero value).
func (p Pattern) Valid() bool {
	return p.Font != nil
}

// Builder accumulates feature tags and lookup indices into feature units,
// eventually producing an immutable Pattern.
type Builder struct {
	font        *ot.Font
	scriptTag   ot.Tag
	languageTag ot.Tag
	backward    bool

	featureTags  []ot.Tag
	units        []FeatureUnit
	gsubCount    int
	gposCount    int

	kind         LookupKind
	unitStart    int // index into featureTags where the in-progress unit began
	pendingMask  uint16
	pendingSet   map[uint16]bool
}

// NewBuilder starts a builder for font, targeting scriptTag/languageTag
// with the given default run direction (true = right-to-left).
func NewBuilder(font *ot.Font, scriptTag, languageTag ot.Tag, backward bool) *Builder {
	return &Builder{font: font, scriptTag: scriptTag, languageTag: languageTag, backward: backward}
}

// BeginFeatures opens a GSUB or GPOS section; all units added before the
// next EndFeatures (or before a further BeginFeatures call) share kind.
func (b *Builder) BeginFeatures(kind LookupKind) {
	b.kind = kind
	b.unitStart = len(b.featureTags)
	b.pendingMask = 0
	b.pendingSet = make(map[uint16]bool)
}

// AddFeature records tag (uniquely, in insertion order) as covered by the
// unit currently being accumulated, ORing mask into the unit's mask.
func (b *Builder) AddFeature(tag ot.Tag, mask uint16) {
	found := false
	for _, t := range b.featureTags {
		if t == tag {
			found = true
			break
		}
	}
	if !found {
		b.featureTags = append(b.featureTags, tag)
	}
	b.pendingMask |= mask
}

// AddLookup adds a lookup index to the unit currently being accumulated.
func (b *Builder) AddLookup(lookupIndex uint16) {
	if b.pendingSet == nil {
		b.pendingSet = make(map[uint16]bool)
	}
	b.pendingSet[lookupIndex] = true
}

// MakeFeatureUnit closes the in-progress unit, taking every feature tag
// added since the corresponding BeginFeatures/previous MakeFeatureUnit call
// and the so-far-added lookups (sorted ascending, deduplicated).
func (b *Builder) MakeFeatureUnit() {
	lookups := make([]uint16, 0, len(b.pendingSet))
	for idx := range b.pendingSet {
		lookups = append(lookups, idx)
	}
	sort.Slice(lookups, func(i, j int) bool { return lookups[i] < lookups[j] })
	refs := make([]LookupRef, len(lookups))
	for i, idx := range lookups {
		refs[i] = LookupRef{LookupIndex: idx, Kind: b.kind}
	}
	unit := FeatureUnit{
		FeatureStart: b.unitStart,
		FeatureCount: len(b.featureTags) - b.unitStart,
		Mask:         b.pendingMask,
		Lookups:      refs,
	}
	b.units = append(b.units, unit)
	if b.kind == Gsub {
		b.gsubCount++
	} else {
		b.gposCount++
	}
	b.unitStart = len(b.featureTags)
	b.pendingMask = 0
	b.pendingSet = make(map[uint16]bool)
}

// EndFeatures closes the currently open GSUB/GPOS section. Any
// not-yet-closed unit accumulated since the last MakeFeatureUnit is
// dropped — callers must call MakeFeatureUnit for every unit they intend
// to keep.
func (b *Builder) EndFeatures() {
	b.pendingMask = 0
	b.pendingSet = nil
}

// Build finalizes the Pattern. GSUB units must all have been added (via
// BeginFeatures(Gsub)/MakeFeatureUnit) before any GPOS unit, so that
// GSUBUnitCount/GPOSUnitCount correctly bound the two halves of
// Pattern.FeatureUnits for the text processor's sequential pipeline.
func (b *Builder) Build() Pattern {
	return Pattern{
		Font:             b.font,
		ScriptTag:        b.scriptTag,
		LanguageTag:      b.languageTag,
		DefaultDirection: b.backward,
		FeatureTags:      b.featureTags,
		FeatureUnits:     b.units,
		GSUBUnitCount:    b.gsubCount,
		GPOSUnitCount:    b.gposCount,
	}
}
