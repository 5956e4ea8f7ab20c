package ot

// GPOS lookup types, per the OpenType GPOS table.
const (
	GPOSSingle          = 1
	GPOSPair            = 2
	GPOSCursive         = 3
	GPOSMarkToBase      = 4
	GPOSMarkToLigature  = 5
	GPOSMarkToMark      = 6
	GPOSContext         = 7
	GPOSChainingContext = 8
	GPOSExtension       = 9
)

// SinglePos is a parsed GPOS LookupType 1 subtable.
type SinglePos struct {
	Format   uint16
	Coverage Coverage
	value    ValueRecord   // format 1: shared by every covered glyph
	values   []ValueRecord // format 2: one per coverage index
}

// ParseSinglePos parses a GPOS LookupType 1 subtable.
func ParseSinglePos(b binarySegm) SinglePos {
	format, err := b.u16(0)
	if err != nil {
		return SinglePos{}
	}
	covOff, err := b.u16(2)
	if err != nil {
		return SinglePos{}
	}
	valueFormat, err := b.u16(4)
	if err != nil {
		return SinglePos{}
	}
	s := SinglePos{Format: format}
	if covOff != 0 {
		if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
			s.Coverage = ParseCoverage(seg)
		}
	}
	switch format {
	case 1:
		v, _ := parseValueRecord(b, 6, ValueFormat(valueFormat))
		s.value = v
	case 2:
		n, err := b.u16(6)
		if err != nil {
			return SinglePos{}
		}
		size := valueRecordSize(ValueFormat(valueFormat))
		s.values = make([]ValueRecord, n)
		off := 8
		for i := 0; i < int(n); i++ {
			v, _ := parseValueRecord(b, off, ValueFormat(valueFormat))
			s.values[i] = v
			off += size
		}
	default:
		tracer().Errorf("single pos: unrecognized format %d", format)
	}
	return s
}

// Apply returns the adjustment for glyph, if covered.
func (s SinglePos) Apply(glyph GlyphIndex) (ValueRecord, bool) {
	idx, ok := s.Coverage.Index(glyph)
	if !ok {
		return ValueRecord{}, false
	}
	switch s.Format {
	case 1:
		return s.value, true
	case 2:
		if idx >= len(s.values) {
			return ValueRecord{}, false
		}
		return s.values[idx], true
	default:
		return ValueRecord{}, false
	}
}

// PairValue is one entry of a pair-positioning rule: the second glyph and
// the adjustments for both glyphs of the pair.
type PairValue struct {
	SecondGlyph GlyphIndex
	First       ValueRecord
	Second      ValueRecord
}

// PairPos is a parsed GPOS LookupType 2 subtable.
type PairPos struct {
	Format   uint16
	Coverage Coverage

	pairSets [][]PairValue // format 1

	classDef1, classDef2 ClassDef // format 2
	class1Count          int
	class2Count          int
	classValues          []classPairValue
}

type classPairValue struct {
	First, Second ValueRecord
}

// ParsePairPos parses a GPOS LookupType 2 subtable.
func ParsePairPos(b binarySegm) PairPos {
	format, err := b.u16(0)
	if err != nil {
		return PairPos{}
	}
	covOff, err := b.u16(2)
	if err != nil {
		return PairPos{}
	}
	vf1, e1 := b.u16(4)
	vf2, e2 := b.u16(6)
	if e1 != nil || e2 != nil {
		return PairPos{}
	}
	p := PairPos{Format: format}
	if covOff != 0 {
		if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
			p.Coverage = ParseCoverage(seg)
		}
	}
	switch format {
	case 1:
		n, err := b.u16(8)
		if err != nil {
			return PairPos{}
		}
		p.pairSets = make([][]PairValue, n)
		for i := 0; i < int(n); i++ {
			off, err := b.u16(10 + i*2)
			if err != nil || off == 0 {
				continue
			}
			seg, err := b.view(int(off), len(b)-int(off))
			if err != nil {
				continue
			}
			p.pairSets[i] = parsePairSet(seg, ValueFormat(vf1), ValueFormat(vf2))
		}
	case 2:
		cd1Off, e1 := b.u16(8)
		cd2Off, e2 := b.u16(10)
		c1Count, e3 := b.u16(12)
		c2Count, e4 := b.u16(14)
		if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
			return PairPos{}
		}
		if cd1Off != 0 {
			if seg, err := b.view(int(cd1Off), len(b)-int(cd1Off)); err == nil {
				p.classDef1 = ParseClassDef(seg)
			}
		}
		if cd2Off != 0 {
			if seg, err := b.view(int(cd2Off), len(b)-int(cd2Off)); err == nil {
				p.classDef2 = ParseClassDef(seg)
			}
		}
		p.class1Count = int(c1Count)
		p.class2Count = int(c2Count)
		size1 := valueRecordSize(ValueFormat(vf1))
		size2 := valueRecordSize(ValueFormat(vf2))
		pairSize := size1 + size2
		p.classValues = make([]classPairValue, int(c1Count)*int(c2Count))
		off := 16
		for i := 0; i < int(c1Count)*int(c2Count); i++ {
			v1, _ := parseValueRecord(b, off, ValueFormat(vf1))
			v2, _ := parseValueRecord(b, off+size1, ValueFormat(vf2))
			p.classValues[i] = classPairValue{First: v1, Second: v2}
			off += pairSize
		}
	default:
		tracer().Errorf("pair pos: unrecognized format %d", format)
	}
	return p
}

func parsePairSet(b binarySegm, vf1, vf2 ValueFormat) []PairValue {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	pairs := make([]PairValue, 0, n)
	off := 2
	size1 := valueRecordSize(vf1)
	size2 := valueRecordSize(vf2)
	for i := 0; i < int(n); i++ {
		second, err := b.u16(off)
		if err != nil {
			break
		}
		v1, _ := parseValueRecord(b, off+2, vf1)
		v2, _ := parseValueRecord(b, off+2+size1, vf2)
		pairs = append(pairs, PairValue{SecondGlyph: GlyphIndex(second), First: v1, Second: v2})
		off += 2 + size1 + size2
	}
	return pairs
}

// Apply returns the adjustments for a (first, second) glyph pair, if the
// pair is covered by a rule.
func (p PairPos) Apply(first, second GlyphIndex) (ValueRecord, ValueRecord, bool) {
	idx, ok := p.Coverage.Index(first)
	if !ok {
		return ValueRecord{}, ValueRecord{}, false
	}
	switch p.Format {
	case 1:
		if idx >= len(p.pairSets) {
			return ValueRecord{}, ValueRecord{}, false
		}
		for _, pv := range p.pairSets[idx] {
			if pv.SecondGlyph == second {
				return pv.First, pv.Second, true
			}
		}
		return ValueRecord{}, ValueRecord{}, false
	case 2:
		c1 := int(p.classDef1.Class(first))
		c2 := int(p.classDef2.Class(second))
		if c1 >= p.class1Count || c2 >= p.class2Count {
			return ValueRecord{}, ValueRecord{}, false
		}
		v := p.classValues[c1*p.class2Count+c2]
		return v.First, v.Second, true
	default:
		return ValueRecord{}, ValueRecord{}, false
	}
}

// CursivePos is a parsed GPOS LookupType 3 subtable: entry/exit anchors for
// cursive attachment chains.
type CursivePos struct {
	Coverage Coverage
	records  []cursiveRecord
}

type cursiveRecord struct {
	Entry, Exit Anchor
}

// ParseCursivePos parses a GPOS LookupType 3 subtable.
func ParseCursivePos(b binarySegm) CursivePos {
	covOff, e1 := b.u16(2)
	n, e2 := b.u16(4)
	if e1 != nil || e2 != nil {
		return CursivePos{}
	}
	var c CursivePos
	if covOff != 0 {
		if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
			c.Coverage = ParseCoverage(seg)
		}
	}
	c.records = make([]cursiveRecord, n)
	for i := 0; i < int(n); i++ {
		entryOff, e1 := b.u16(6 + i*4)
		exitOff, e2 := b.u16(6 + i*4 + 2)
		if e1 != nil || e2 != nil {
			continue
		}
		var rec cursiveRecord
		if entryOff != 0 {
			if seg, err := b.view(int(entryOff), len(b)-int(entryOff)); err == nil {
				rec.Entry = parseAnchor(seg)
			}
		}
		if exitOff != 0 {
			if seg, err := b.view(int(exitOff), len(b)-int(exitOff)); err == nil {
				rec.Exit = parseAnchor(seg)
			}
		}
		c.records[i] = rec
	}
	return c
}

// EntryExit returns the entry/exit anchors for glyph, if covered.
func (c CursivePos) EntryExit(glyph GlyphIndex) (Anchor, Anchor, bool) {
	idx, ok := c.Coverage.Index(glyph)
	if !ok || idx >= len(c.records) {
		return Anchor{}, Anchor{}, false
	}
	r := c.records[idx]
	return r.Entry, r.Exit, true
}

// MarkRecord is one mark's class and anchor, as used by MarkArray.
type MarkRecord struct {
	Class  uint16
	Anchor Anchor
}

func parseMarkArray(b binarySegm) []MarkRecord {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	recs := make([]MarkRecord, n)
	for i := 0; i < int(n); i++ {
		class, e1 := b.u16(2 + i*4)
		anchorOff, e2 := b.u16(2 + i*4 + 2)
		if e1 != nil || e2 != nil {
			continue
		}
		var a Anchor
		if anchorOff != 0 {
			if seg, err := b.view(int(anchorOff), len(b)-int(anchorOff)); err == nil {
				a = parseAnchor(seg)
			}
		}
		recs[i] = MarkRecord{Class: class, Anchor: a}
	}
	return recs
}

// MarkToBasePos is a parsed GPOS LookupType 4 subtable.
type MarkToBasePos struct {
	MarkCoverage Coverage
	BaseCoverage Coverage
	MarkArray    []MarkRecord
	BaseArray    [][]Anchor // [baseIndex][markClass]
	classCount   int
}

// ParseMarkToBasePos parses a GPOS LookupType 4 subtable.
func ParseMarkToBasePos(b binarySegm) MarkToBasePos {
	markCovOff, e1 := b.u16(2)
	baseCovOff, e2 := b.u16(4)
	classCount, e3 := b.u16(6)
	markArrayOff, e4 := b.u16(8)
	baseArrayOff, e5 := b.u16(10)
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return MarkToBasePos{}
	}
	var m MarkToBasePos
	m.classCount = int(classCount)
	if markCovOff != 0 {
		if seg, err := b.view(int(markCovOff), len(b)-int(markCovOff)); err == nil {
			m.MarkCoverage = ParseCoverage(seg)
		}
	}
	if baseCovOff != 0 {
		if seg, err := b.view(int(baseCovOff), len(b)-int(baseCovOff)); err == nil {
			m.BaseCoverage = ParseCoverage(seg)
		}
	}
	if markArrayOff != 0 {
		if seg, err := b.view(int(markArrayOff), len(b)-int(markArrayOff)); err == nil {
			m.MarkArray = parseMarkArray(seg)
		}
	}
	if baseArrayOff != 0 {
		if seg, err := b.view(int(baseArrayOff), len(b)-int(baseArrayOff)); err == nil {
			m.BaseArray = parseBaseArray(seg, int(classCount))
		}
	}
	return m
}

func parseBaseArray(b binarySegm, classCount int) [][]Anchor {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	bases := make([][]Anchor, n)
	for i := 0; i < int(n); i++ {
		anchors := make([]Anchor, classCount)
		for c := 0; c < classCount; c++ {
			off, err := b.u16(2 + (i*classCount+c)*2)
			if err != nil || off == 0 {
				continue
			}
			if seg, err := b.view(int(off), len(b)-int(off)); err == nil {
				anchors[c] = parseAnchor(seg)
			}
		}
		bases[i] = anchors
	}
	return bases
}

// Anchors returns the mark's anchor and the base's per-class anchor for
// markClass, given the mark and base glyphs (each looked up in its coverage).
func (m MarkToBasePos) Anchors(markGlyph, baseGlyph GlyphIndex) (markAnchor, baseAnchor Anchor, ok bool) {
	markIdx, ok1 := m.MarkCoverage.Index(markGlyph)
	baseIdx, ok2 := m.BaseCoverage.Index(baseGlyph)
	if !ok1 || !ok2 || markIdx >= len(m.MarkArray) || baseIdx >= len(m.BaseArray) {
		return Anchor{}, Anchor{}, false
	}
	rec := m.MarkArray[markIdx]
	if int(rec.Class) >= len(m.BaseArray[baseIdx]) {
		return Anchor{}, Anchor{}, false
	}
	return rec.Anchor, m.BaseArray[baseIdx][rec.Class], true
}

// MarkToLigaturePos is a parsed GPOS LookupType 5 subtable: like
// MarkToBasePos, but the attachment glyph is a ligature with one anchor set
// per component.
type MarkToLigaturePos struct {
	MarkCoverage Coverage
	LigCoverage  Coverage
	MarkArray    []MarkRecord
	LigArray     [][][]Anchor // [ligIndex][component][markClass]
	classCount   int
}

// ParseMarkToLigaturePos parses a GPOS LookupType 5 subtable.
func ParseMarkToLigaturePos(b binarySegm) MarkToLigaturePos {
	markCovOff, e1 := b.u16(2)
	ligCovOff, e2 := b.u16(4)
	classCount, e3 := b.u16(6)
	markArrayOff, e4 := b.u16(8)
	ligArrayOff, e5 := b.u16(10)
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return MarkToLigaturePos{}
	}
	var m MarkToLigaturePos
	m.classCount = int(classCount)
	if markCovOff != 0 {
		if seg, err := b.view(int(markCovOff), len(b)-int(markCovOff)); err == nil {
			m.MarkCoverage = ParseCoverage(seg)
		}
	}
	if ligCovOff != 0 {
		if seg, err := b.view(int(ligCovOff), len(b)-int(ligCovOff)); err == nil {
			m.LigCoverage = ParseCoverage(seg)
		}
	}
	if markArrayOff != 0 {
		if seg, err := b.view(int(markArrayOff), len(b)-int(markArrayOff)); err == nil {
			m.MarkArray = parseMarkArray(seg)
		}
	}
	if ligArrayOff != 0 {
		if seg, err := b.view(int(ligArrayOff), len(b)-int(ligArrayOff)); err == nil {
			m.LigArray = parseLigatureArray(seg, int(classCount))
		}
	}
	return m
}

func parseLigatureArray(b binarySegm, classCount int) [][][]Anchor {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	ligs := make([][][]Anchor, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(2 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		ligs[i] = parseLigatureAttach(seg, classCount)
	}
	return ligs
}

func parseLigatureAttach(b binarySegm, classCount int) [][]Anchor {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	components := make([][]Anchor, n)
	for i := 0; i < int(n); i++ {
		anchors := make([]Anchor, classCount)
		for c := 0; c < classCount; c++ {
			off, err := b.u16(2 + (i*classCount+c)*2)
			if err != nil || off == 0 {
				continue
			}
			if seg, err := b.view(int(off), len(b)-int(off)); err == nil {
				anchors[c] = parseAnchor(seg)
			}
		}
		components[i] = anchors
	}
	return components
}

// Anchors returns the mark's anchor and the ligature component's per-class
// anchor for markClass, given a ligature component index (the attachment
// resolver picks the component by glyph-sequence position).
func (m MarkToLigaturePos) Anchors(markGlyph, ligGlyph GlyphIndex, component int) (markAnchor, ligAnchor Anchor, ok bool) {
	markIdx, ok1 := m.MarkCoverage.Index(markGlyph)
	ligIdx, ok2 := m.LigCoverage.Index(ligGlyph)
	if !ok1 || !ok2 || markIdx >= len(m.MarkArray) || ligIdx >= len(m.LigArray) {
		return Anchor{}, Anchor{}, false
	}
	comps := m.LigArray[ligIdx]
	if component < 0 || component >= len(comps) {
		return Anchor{}, Anchor{}, false
	}
	rec := m.MarkArray[markIdx]
	if int(rec.Class) >= len(comps[component]) {
		return Anchor{}, Anchor{}, false
	}
	return rec.Anchor, comps[component][rec.Class], true
}

// MarkToMarkPos is a parsed GPOS LookupType 6 subtable: structurally
// identical to MarkToBasePos but both glyphs are marks.
type MarkToMarkPos struct {
	Mark1Coverage Coverage
	Mark2Coverage Coverage
	Mark1Array    []MarkRecord
	Mark2Array    [][]Anchor
	classCount    int
}

// ParseMarkToMarkPos parses a GPOS LookupType 6 subtable.
func ParseMarkToMarkPos(b binarySegm) MarkToMarkPos {
	mark1CovOff, e1 := b.u16(2)
	mark2CovOff, e2 := b.u16(4)
	classCount, e3 := b.u16(6)
	mark1ArrayOff, e4 := b.u16(8)
	mark2ArrayOff, e5 := b.u16(10)
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return MarkToMarkPos{}
	}
	var m MarkToMarkPos
	m.classCount = int(classCount)
	if mark1CovOff != 0 {
		if seg, err := b.view(int(mark1CovOff), len(b)-int(mark1CovOff)); err == nil {
			m.Mark1Coverage = ParseCoverage(seg)
		}
	}
	if mark2CovOff != 0 {
		if seg, err := b.view(int(mark2CovOff), len(b)-int(mark2CovOff)); err == nil {
			m.Mark2Coverage = ParseCoverage(seg)
		}
	}
	if mark1ArrayOff != 0 {
		if seg, err := b.view(int(mark1ArrayOff), len(b)-int(mark1ArrayOff)); err == nil {
			m.Mark1Array = parseMarkArray(seg)
		}
	}
	if mark2ArrayOff != 0 {
		if seg, err := b.view(int(mark2ArrayOff), len(b)-int(mark2ArrayOff)); err == nil {
			m.Mark2Array = parseBaseArray(seg, int(classCount))
		}
	}
	return m
}

// Anchors returns the attaching mark's anchor and the attached-to mark's
// per-class anchor.
func (m MarkToMarkPos) Anchors(mark1, mark2 GlyphIndex) (mark1Anchor, mark2Anchor Anchor, ok bool) {
	idx1, ok1 := m.Mark1Coverage.Index(mark1)
	idx2, ok2 := m.Mark2Coverage.Index(mark2)
	if !ok1 || !ok2 || idx1 >= len(m.Mark1Array) || idx2 >= len(m.Mark2Array) {
		return Anchor{}, Anchor{}, false
	}
	rec := m.Mark1Array[idx1]
	if int(rec.Class) >= len(m.Mark2Array[idx2]) {
		return Anchor{}, Anchor{}, false
	}
	return rec.Anchor, m.Mark2Array[idx2][rec.Class], true
}

// ExtensionPos is a parsed GPOS LookupType 9 subtable, mirroring
// ExtensionSubst for the positioning table.
type ExtensionPos struct {
	ExtensionLookupType uint16
	Extension           binarySegm
}

// ParseExtensionPos parses a GPOS LookupType 9 subtable.
func ParseExtensionPos(b binarySegm) ExtensionPos {
	lookupType, e1 := b.u16(2)
	off, e2 := b.u32(4)
	if e1 != nil || e2 != nil {
		return ExtensionPos{}
	}
	var e ExtensionPos
	e.ExtensionLookupType = lookupType
	if seg, err := b.view(int(off), len(b)-int(off)); err == nil {
		e.Extension = seg
	}
	return e
}
