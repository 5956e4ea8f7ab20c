package scheme

import (
	"golang.org/x/text/language"

	"github.com/glyphforge/otshape/knowledge"
	"github.com/glyphforge/otshape/ot"
	"github.com/glyphforge/otshape/pattern"
)

// scriptTagByISO15924 maps the handful of ISO 15924 script codes this
// engine has dedicated shaping knowledge for onto their OpenType script
// tags; everything else falls back to ot.T("DFLT") in SetLocale.
var scriptTagByISO15924 = map[string]ot.Tag{
	"Arab": ot.T("arab"),
	"Syrc": ot.T("syrc"),
	"Mong": ot.T("mong"),
	"Latn": ot.T("latn"),
	"Cyrl": ot.T("cyrl"),
	"Grek": ot.T("grek"),
	"Hebr": ot.T("hebr"),
}

// Scheme consults a font's layout tables against a script's shaping
// knowledge to build a compiled pattern.Pattern.
type Scheme struct {
	font        *ot.Font
	scriptTag   ot.Tag
	languageTag ot.Tag
	haveLang    bool
}

// New returns an empty Scheme. Call SetFont and SetScript before
// BuildPattern.
func New() *Scheme {
	return &Scheme{}
}

// SetFont selects the font the pattern will be built against.
func (s *Scheme) SetFont(font *ot.Font) { s.font = font }

// SetScript selects the script tag to shape (e.g. ot.T("arab")).
func (s *Scheme) SetScript(scriptTag ot.Tag) { s.scriptTag = scriptTag }

// SetLanguage selects a specific language-system tag within the script.
// If never called, BuildPattern falls back to the script's default
// LangSys.
func (s *Scheme) SetLanguage(languageTag ot.Tag) {
	s.languageTag = languageTag
	s.haveLang = true
}

// SetLocale is a convenience over SetScript: it derives an OpenType
// script tag from a BCP 47 language tag's script subtag (inferring one
// via golang.org/x/text/language where the tag doesn't carry it
// explicitly), falling back to ot.T("DFLT") for scripts this engine has
// no dedicated knowledge table for.
func (s *Scheme) SetLocale(loc language.Tag) {
	scr, _ := loc.Script()
	if tag, ok := scriptTagByISO15924[scr.String()]; ok {
		s.scriptTag = tag
		return
	}
	s.scriptTag = ot.T("DFLT")
}

// BuildPattern walks the font's ScriptList/LangSys/FeatureList for
// s.scriptTag/s.languageTag, in the order s.scriptTag's shaping knowledge
// prescribes, and compiles the matched features and lookups into a
// Pattern. It returns false if the font carries neither a GSUB nor a GPOS
// table, or the script has no usable LangSys in either.
func (s *Scheme) BuildPattern() (pattern.Pattern, bool) {
	if s.font == nil {
		return pattern.Pattern{}, false
	}
	k := knowledge.Lookup(s.scriptTag)
	b := pattern.NewBuilder(s.font, s.scriptTag, s.languageTag, k.Backward)

	builtAny := false
	if gsub, ok := s.font.GSUB(); ok {
		if s.buildKind(b, pattern.Gsub, gsub, k.GSUBUnits) {
			builtAny = true
		}
	}
	if gpos, ok := s.font.GPOS(); ok {
		if s.buildKind(b, pattern.Gpos, gpos, k.GPOSUnits) {
			builtAny = true
		}
	}
	if !builtAny {
		return pattern.Pattern{}, false
	}
	return b.Build(), true
}

// buildKind walks one of GSUB/GPOS's layout table against unitSpecs,
// reporting whether at least one feature unit was produced.
func (s *Scheme) buildKind(b *pattern.Builder, kind pattern.LookupKind, lt ot.LayoutTable, unitSpecs []knowledge.FeatureUnitSpec) bool {
	ls, ok := s.resolveLangSys(lt.ScriptList)
	if !ok {
		return false
	}
	available := availableFeatureIndices(ls)

	b.BeginFeatures(kind)
	any := false
	for _, unit := range unitSpecs {
		found := false
		for _, spec := range unit.Features {
			idx, ok := findFeature(lt.FeatureList, available, spec.Tag)
			if !ok {
				continue
			}
			feature, _ := lt.FeatureList.At(idx)
			b.AddFeature(spec.Tag, spec.Mask)
			for _, lookupIdx := range feature.LookupIndices {
				b.AddLookup(lookupIdx)
			}
			found = true
		}
		if found {
			b.MakeFeatureUnit()
			any = true
		}
	}
	b.EndFeatures()
	return any
}

// resolveLangSys picks s.languageTag's LangSys if set and present,
// otherwise s.scriptTag's default LangSys. A script tag absent from sl
// entirely fails outright; only a LangSys within an already-matched script
// falls back to its DFLT entry.
func (s *Scheme) resolveLangSys(sl ot.ScriptList) (ot.LangSys, bool) {
	script, ok := sl.Script(s.scriptTag)
	if !ok {
		return ot.LangSys{}, false
	}
	if s.haveLang {
		if ls, ok := script.LangSyses[s.languageTag]; ok {
			return ls, true
		}
	}
	if script.HasDefault {
		return script.DefaultLangSys, true
	}
	return ot.LangSys{}, false
}

// availableFeatureIndices lists every feature index a LangSys activates,
// required feature first.
func availableFeatureIndices(ls ot.LangSys) []uint16 {
	out := make([]uint16, 0, len(ls.FeatureIndices)+1)
	if ls.RequiredFeatureIndex >= 0 {
		out = append(out, uint16(ls.RequiredFeatureIndex))
	}
	out = append(out, ls.FeatureIndices...)
	return out
}

// findFeature returns the first index among available whose tag is tag.
func findFeature(fl ot.FeatureList, available []uint16, tag ot.Tag) (int, bool) {
	for _, idx := range available {
		f, ok := fl.At(int(idx))
		if ok && f.Tag == tag {
			return int(idx), true
		}
	}
	return 0, false
}
