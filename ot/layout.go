package ot

// LookupFlag is the OpenType 16-bit lookup flag field
type LookupFlag uint16

const (
	LookupFlagRightToLeft        LookupFlag = 0x0001
	LookupFlagIgnoreBaseGlyphs   LookupFlag = 0x0002
	LookupFlagIgnoreLigatures    LookupFlag = 0x0004
	LookupFlagIgnoreMarks        LookupFlag = 0x0008
	LookupFlagUseMarkFilterSet   LookupFlag = 0x0010
	LookupFlagMarkAttachTypeMask LookupFlag = 0xFF00
)

// MarkAttachmentType returns the top byte of the lookup flag, the mark
// attachment class a lookup restricts itself to (0 meaning "no restriction").
func (f LookupFlag) MarkAttachmentType() uint16 {
	return uint16(f>>8) & 0xFF
}

// LayoutTable is the common GSUB/GPOS header: version, ScriptList,
// FeatureList, LookupList (FeatureVariations, present from 1.1 onward, is
// out of scope — variable-font axis selection is out of scope for this engine).
type LayoutTable struct {
	ScriptList  ScriptList
	FeatureList FeatureList
	LookupList  LookupList
}

func parseLayoutTable(b binarySegm) (LayoutTable, bool) {
	if len(b) < 10 {
		return LayoutTable{}, false
	}
	scriptOff, e1 := b.u16(4)
	featureOff, e2 := b.u16(6)
	lookupOff, e3 := b.u16(8)
	if e1 != nil || e2 != nil || e3 != nil {
		return LayoutTable{}, false
	}
	var lt LayoutTable
	if scriptOff != 0 {
		if seg, err := b.view(int(scriptOff), len(b)-int(scriptOff)); err == nil {
			lt.ScriptList = parseScriptList(seg)
		}
	}
	if featureOff != 0 {
		if seg, err := b.view(int(featureOff), len(b)-int(featureOff)); err == nil {
			lt.FeatureList = parseFeatureList(seg)
		}
	}
	if lookupOff != 0 {
		if seg, err := b.view(int(lookupOff), len(b)-int(lookupOff)); err == nil {
			lt.LookupList = parseLookupList(seg)
		}
	}
	return lt, true
}

// --- ScriptList / LangSys ---------------------------------------------------

// LangSys is a parsed LangSys record: required feature index (if any) and
// the feature indices this language activates.
type LangSys struct {
	RequiredFeatureIndex int // -1 if none
	FeatureIndices       []uint16
}

// Script is a parsed Script record: default LangSys plus any named ones.
type Script struct {
	DefaultLangSys LangSys
	HasDefault     bool
	LangSyses      map[Tag]LangSys
}

// ScriptList is the ScriptList table: scriptTag -> Script.
type ScriptList struct {
	scripts map[Tag]Script
}

func parseScriptList(b binarySegm) ScriptList {
	n, err := b.u16(0)
	if err != nil {
		return ScriptList{}
	}
	sl := ScriptList{scripts: make(map[Tag]Script, n)}
	for i := 0; i < int(n); i++ {
		rec := b.sub(2+i*6, 6)
		if len(rec) < 6 {
			continue
		}
		tag := MakeTag(rec[:4])
		off, err := rec.u16(4)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		sl.scripts[tag] = parseScript(seg)
	}
	return sl
}

func parseScript(b binarySegm) Script {
	var s Script
	s.LangSyses = make(map[Tag]LangSys)
	defOff, err := b.u16(0)
	if err == nil && defOff != 0 {
		if seg, err := b.view(int(defOff), len(b)-int(defOff)); err == nil {
			s.DefaultLangSys = parseLangSys(seg)
			s.HasDefault = true
		}
	}
	n, err := b.u16(2)
	if err != nil {
		return s
	}
	for i := 0; i < int(n); i++ {
		rec := b.sub(4+i*6, 6)
		if len(rec) < 6 {
			continue
		}
		tag := MakeTag(rec[:4])
		off, err := rec.u16(4)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		s.LangSyses[tag] = parseLangSys(seg)
	}
	return s
}

func parseLangSys(b binarySegm) LangSys {
	var ls LangSys
	ls.RequiredFeatureIndex = -1
	reqIdx, err := b.u16(2)
	if err == nil && reqIdx != 0xFFFF {
		ls.RequiredFeatureIndex = int(reqIdx)
	}
	n, err := b.u16(4)
	if err != nil {
		return ls
	}
	ls.FeatureIndices = make([]uint16, 0, n)
	for i := 0; i < int(n); i++ {
		idx, err := b.u16(6 + i*2)
		if err != nil {
			break
		}
		ls.FeatureIndices = append(ls.FeatureIndices, idx)
	}
	return ls
}

// Script looks up a script by tag.
func (sl ScriptList) Script(tag Tag) (Script, bool) {
	s, ok := sl.scripts[tag]
	return s, ok
}

// --- FeatureList -------------------------------------------------------------

// Feature is a parsed Feature record: the lookup indices it activates.
type Feature struct {
	Tag            Tag
	LookupIndices  []uint16
	FeatureParams  uint16 // offset, unparsed (format-specific, rarely needed by shaping)
}

// FeatureList is the FeatureList table, indexable by the feature index used
// by LangSys records.
type FeatureList struct {
	features []Feature
}

func parseFeatureList(b binarySegm) FeatureList {
	n, err := b.u16(0)
	if err != nil {
		return FeatureList{}
	}
	fl := FeatureList{features: make([]Feature, 0, n)}
	for i := 0; i < int(n); i++ {
		rec := b.sub(2+i*6, 6)
		if len(rec) < 6 {
			continue
		}
		tag := MakeTag(rec[:4])
		off, err := rec.u16(4)
		if err != nil || off == 0 {
			fl.features = append(fl.features, Feature{Tag: tag})
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			fl.features = append(fl.features, Feature{Tag: tag})
			continue
		}
		fl.features = append(fl.features, parseFeature(tag, seg))
	}
	return fl
}

func parseFeature(tag Tag, b binarySegm) Feature {
	f := Feature{Tag: tag}
	params, err := b.u16(0)
	if err == nil {
		f.FeatureParams = params
	}
	n, err := b.u16(2)
	if err != nil {
		return f
	}
	f.LookupIndices = make([]uint16, 0, n)
	for i := 0; i < int(n); i++ {
		idx, err := b.u16(4 + i*2)
		if err != nil {
			break
		}
		f.LookupIndices = append(f.LookupIndices, idx)
	}
	return f
}

// At returns the feature at index i, and false if out of range.
func (fl FeatureList) At(i int) (Feature, bool) {
	if i < 0 || i >= len(fl.features) {
		return Feature{}, false
	}
	return fl.features[i], true
}

// IndexOfTag returns the first feature index whose tag matches, searching
// in FeatureList order (so that repeated features of the same tag, which
// OpenType fonts do use, are found in a stable, deterministic order).
func (fl FeatureList) IndexOfTag(tag Tag, after int) (int, bool) {
	for i := after; i < len(fl.features); i++ {
		if fl.features[i].Tag == tag {
			return i, true
		}
	}
	return 0, false
}

// --- LookupList --------------------------------------------------------------

// Lookup is a parsed Lookup table header plus its raw subtable segments
// (structural decode of each subtable happens on demand via RawSubtable, per
// its owning GSUB/GPOS lookup-type dispatch).
type Lookup struct {
	Type            uint16
	Flag            LookupFlag
	MarkFilterSet   uint16
	subtables       []binarySegm
}

// SubtableCount returns the number of subtables in this lookup.
func (l Lookup) SubtableCount() int { return len(l.subtables) }

// RawSubtable returns the raw bytes of subtable i.
func (l Lookup) RawSubtable(i int) binarySegm {
	if i < 0 || i >= len(l.subtables) {
		return nil
	}
	return l.subtables[i]
}

// LookupList is the LookupList table.
type LookupList struct {
	lookups []Lookup
}

func parseLookupList(b binarySegm) LookupList {
	n, err := b.u16(0)
	if err != nil {
		return LookupList{}
	}
	ll := LookupList{lookups: make([]Lookup, 0, n)}
	for i := 0; i < int(n); i++ {
		off, err := b.u16(2 + i*2)
		if err != nil || off == 0 {
			ll.lookups = append(ll.lookups, Lookup{})
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			ll.lookups = append(ll.lookups, Lookup{})
			continue
		}
		ll.lookups = append(ll.lookups, parseLookup(seg))
	}
	return ll
}

func parseLookup(b binarySegm) Lookup {
	var l Lookup
	typ, e1 := b.u16(0)
	flag, e2 := b.u16(2)
	n, e3 := b.u16(4)
	if e1 != nil || e2 != nil || e3 != nil {
		return l
	}
	l.Type = typ
	l.Flag = LookupFlag(flag)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(6 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		l.subtables = append(l.subtables, seg)
	}
	if l.Flag&LookupFlagUseMarkFilterSet != 0 {
		if mfs, err := b.u16(6 + int(n)*2); err == nil {
			l.MarkFilterSet = mfs
		}
	}
	return l
}

// At returns lookup i, and false if out of range.
func (ll LookupList) At(i int) (Lookup, bool) {
	if i < 0 || i >= len(ll.lookups) {
		return Lookup{}, false
	}
	return ll.lookups[i], true
}

// Count returns the number of lookups.
func (ll LookupList) Count() int { return len(ll.lookups) }
