package ot

// SequenceLookupRecord ties a position in a matched input sequence to a
// nested lookup to apply there (shared by GSUB context/chaining-context and
// GPOS context/chaining-context).
type SequenceLookupRecord struct {
	SequenceIndex uint16
	LookupIndex   uint16
}

func parseSequenceLookupRecords(b binarySegm, off int, n int) []SequenceLookupRecord {
	recs := make([]SequenceLookupRecord, 0, n)
	for i := 0; i < n; i++ {
		seqIdx, e1 := b.u16(off + i*4)
		lookupIdx, e2 := b.u16(off + i*4 + 2)
		if e1 != nil || e2 != nil {
			break
		}
		recs = append(recs, SequenceLookupRecord{SequenceIndex: seqIdx, LookupIndex: lookupIdx})
	}
	return recs
}

// SequenceRule (format 1, glyph-based) matches a literal glyph sequence.
type SequenceRule struct {
	Input        []GlyphIndex // input glyphs after the first (first comes from the Coverage)
	LookupRecord []SequenceLookupRecord
}

// ClassSequenceRule (format 2, class-based) matches a sequence of glyph
// classes.
type ClassSequenceRule struct {
	InputClasses []uint16
	LookupRecord []SequenceLookupRecord
}

// SequenceContext is a parsed GSUB LookupType 5 / GPOS LookupType 7 subtable
// (format discriminated by Format).
type SequenceContext struct {
	Format   uint16
	Coverage Coverage // format 1 & 3: coverage of the first input glyph
	RuleSets [][]SequenceRule

	ClassDef      ClassDef // format 2
	ClassRuleSets [][]ClassSequenceRule

	InputCoverages []Coverage            // format 3
	LookupRecord   []SequenceLookupRecord // format 3
}

// ParseSequenceContext parses a SequenceContext subtable rooted at b.
func ParseSequenceContext(b binarySegm) SequenceContext {
	format, err := b.u16(0)
	if err != nil {
		return SequenceContext{}
	}
	switch format {
	case 1:
		return parseSequenceContextFormat1(b)
	case 2:
		return parseSequenceContextFormat2(b)
	case 3:
		return parseSequenceContextFormat3(b)
	default:
		tracer().Errorf("sequence context: unrecognized format %d", format)
		return SequenceContext{}
	}
}

func parseSequenceContextFormat1(b binarySegm) SequenceContext {
	_, e1 := b.u16(2)
	n, e2 := b.u16(4)
	if e1 != nil || e2 != nil {
		return SequenceContext{}
	}
	sc := SequenceContext{Format: 1}
	if seg, ok := b.at16(2, b); ok {
		sc.Coverage = ParseCoverage(seg)
	}
	sc.RuleSets = make([][]SequenceRule, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(6 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		sc.RuleSets[i] = parseSequenceRuleSet(seg)
	}
	return sc
}

func parseSequenceRuleSet(b binarySegm) []SequenceRule {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	rules := make([]SequenceRule, 0, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(2 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		rules = append(rules, parseSequenceRule(seg))
	}
	return rules
}

func parseSequenceRule(b binarySegm) SequenceRule {
	glyphCount, e1 := b.u16(0)
	seqLookupCount, e2 := b.u16(2)
	if e1 != nil || e2 != nil || glyphCount == 0 {
		return SequenceRule{}
	}
	var r SequenceRule
	for i := 0; i < int(glyphCount)-1; i++ {
		g, err := b.u16(4 + i*2)
		if err != nil {
			break
		}
		r.Input = append(r.Input, GlyphIndex(g))
	}
	lookupOff := 4 + (int(glyphCount)-1)*2
	r.LookupRecord = parseSequenceLookupRecords(b, lookupOff, int(seqLookupCount))
	return r
}

func parseSequenceContextFormat2(b binarySegm) SequenceContext {
	// Layout: format(2) coverageOffset(2) classDefOffset(2) classSeqRuleSetCount(2) ...
	covOff, e1 := b.u16(2)
	cdOff, e2 := b.u16(4)
	count, e3 := b.u16(6)
	if e1 != nil || e2 != nil || e3 != nil {
		return SequenceContext{}
	}
	sc := SequenceContext{Format: 2}
	if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil && covOff != 0 {
		sc.Coverage = ParseCoverage(seg)
	}
	if seg, err := b.view(int(cdOff), len(b)-int(cdOff)); err == nil && cdOff != 0 {
		sc.ClassDef = ParseClassDef(seg)
	}
	sc.ClassRuleSets = make([][]ClassSequenceRule, count)
	for i := 0; i < int(count); i++ {
		off, err := b.u16(8 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		sc.ClassRuleSets[i] = parseClassSequenceRuleSet(seg)
	}
	return sc
}

func parseClassSequenceRuleSet(b binarySegm) []ClassSequenceRule {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	rules := make([]ClassSequenceRule, 0, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(2 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		rules = append(rules, parseClassSequenceRule(seg))
	}
	return rules
}

func parseClassSequenceRule(b binarySegm) ClassSequenceRule {
	glyphCount, e1 := b.u16(0)
	seqLookupCount, e2 := b.u16(2)
	if e1 != nil || e2 != nil || glyphCount == 0 {
		return ClassSequenceRule{}
	}
	var r ClassSequenceRule
	for i := 0; i < int(glyphCount)-1; i++ {
		c, err := b.u16(4 + i*2)
		if err != nil {
			break
		}
		r.InputClasses = append(r.InputClasses, c)
	}
	lookupOff := 4 + (int(glyphCount)-1)*2
	r.LookupRecord = parseSequenceLookupRecords(b, lookupOff, int(seqLookupCount))
	return r
}

func parseSequenceContextFormat3(b binarySegm) SequenceContext {
	glyphCount, e1 := b.u16(2)
	seqLookupCount, e2 := b.u16(4)
	if e1 != nil || e2 != nil {
		return SequenceContext{}
	}
	sc := SequenceContext{Format: 3}
	for i := 0; i < int(glyphCount); i++ {
		off, err := b.u16(6 + i*2)
		if err != nil || off == 0 {
			sc.InputCoverages = append(sc.InputCoverages, Coverage{})
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			sc.InputCoverages = append(sc.InputCoverages, Coverage{})
			continue
		}
		sc.InputCoverages = append(sc.InputCoverages, ParseCoverage(seg))
	}
	lookupOff := 6 + int(glyphCount)*2
	sc.LookupRecord = parseSequenceLookupRecords(b, lookupOff, int(seqLookupCount))
	return sc
}

// ChainedSequenceRule is the format 1 chaining rule: literal backtrack/
// input/lookahead glyph sequences.
type ChainedSequenceRule struct {
	Backtrack    []GlyphIndex
	Input        []GlyphIndex
	Lookahead    []GlyphIndex
	LookupRecord []SequenceLookupRecord
}

// ChainedClassSequenceRule is the format 2 chaining rule: class sequences.
type ChainedClassSequenceRule struct {
	BacktrackClasses []uint16
	InputClasses     []uint16
	LookaheadClasses []uint16
	LookupRecord     []SequenceLookupRecord
}

// ChainedSequenceContext is a parsed GSUB LookupType 6 / GPOS LookupType 8
// subtable.
type ChainedSequenceContext struct {
	Format   uint16
	Coverage Coverage
	RuleSets [][]ChainedSequenceRule

	BacktrackClassDef ClassDef
	InputClassDef     ClassDef
	LookaheadClassDef ClassDef
	ClassRuleSets     [][]ChainedClassSequenceRule

	BacktrackCoverages []Coverage
	InputCoverages     []Coverage
	LookaheadCoverages []Coverage
	LookupRecord       []SequenceLookupRecord
}

// ParseChainedSequenceContext parses a ChainedSequenceContext subtable
// rooted at b.
func ParseChainedSequenceContext(b binarySegm) ChainedSequenceContext {
	format, err := b.u16(0)
	if err != nil {
		return ChainedSequenceContext{}
	}
	switch format {
	case 1:
		return parseChainedFormat1(b)
	case 2:
		return parseChainedFormat2(b)
	case 3:
		return parseChainedFormat3(b)
	default:
		tracer().Errorf("chained sequence context: unrecognized format %d", format)
		return ChainedSequenceContext{}
	}
}

func parseChainedFormat1(b binarySegm) ChainedSequenceContext {
	covOff, e1 := b.u16(2)
	n, e2 := b.u16(4)
	if e1 != nil || e2 != nil {
		return ChainedSequenceContext{}
	}
	cc := ChainedSequenceContext{Format: 1}
	if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil && covOff != 0 {
		cc.Coverage = ParseCoverage(seg)
	}
	cc.RuleSets = make([][]ChainedSequenceRule, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(6 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		cc.RuleSets[i] = parseChainedRuleSet(seg)
	}
	return cc
}

func parseChainedRuleSet(b binarySegm) []ChainedSequenceRule {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	rules := make([]ChainedSequenceRule, 0, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(2 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		rules = append(rules, parseChainedRule(seg))
	}
	return rules
}

// glyphSeq16 reads a (count, glyph...) array at off, returning the slice and
// the byte offset just past it.
func glyphSeq16(b binarySegm, off int) ([]GlyphIndex, int) {
	n, err := b.u16(off)
	if err != nil {
		return nil, off + 2
	}
	seq := make([]GlyphIndex, 0, n)
	for i := 0; i < int(n); i++ {
		g, err := b.u16(off + 2 + i*2)
		if err != nil {
			break
		}
		seq = append(seq, GlyphIndex(g))
	}
	return seq, off + 2 + int(n)*2
}

func classSeq16(b binarySegm, off int) ([]uint16, int) {
	n, err := b.u16(off)
	if err != nil {
		return nil, off + 2
	}
	seq := make([]uint16, 0, n)
	for i := 0; i < int(n); i++ {
		c, err := b.u16(off + 2 + i*2)
		if err != nil {
			break
		}
		seq = append(seq, c)
	}
	return seq, off + 2 + int(n)*2
}

func parseChainedRule(b binarySegm) ChainedSequenceRule {
	var r ChainedSequenceRule
	off := 0
	r.Backtrack, off = glyphSeq16(b, off)
	// Input sequence count includes all input glyphs; the first one is
	// matched via Coverage, so only glyphCount-1 literal glyphs follow.
	inputCount, err := b.u16(off)
	if err != nil || inputCount == 0 {
		return r
	}
	off += 2
	for i := 0; i < int(inputCount)-1; i++ {
		g, err := b.u16(off + i*2)
		if err != nil {
			break
		}
		r.Input = append(r.Input, GlyphIndex(g))
	}
	off += (int(inputCount) - 1) * 2
	r.Lookahead, off = glyphSeq16(b, off)
	seqLookupCount, err := b.u16(off)
	if err != nil {
		return r
	}
	r.LookupRecord = parseSequenceLookupRecords(b, off+2, int(seqLookupCount))
	return r
}

func parseChainedFormat2(b binarySegm) ChainedSequenceContext {
	covOff, e1 := b.u16(2)
	backtrackCDOff, e2 := b.u16(4)
	inputCDOff, e3 := b.u16(6)
	lookaheadCDOff, e4 := b.u16(8)
	n, e5 := b.u16(10)
	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil {
		return ChainedSequenceContext{}
	}
	cc := ChainedSequenceContext{Format: 2}
	if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil && covOff != 0 {
		cc.Coverage = ParseCoverage(seg)
	}
	if seg, err := b.view(int(backtrackCDOff), len(b)-int(backtrackCDOff)); err == nil && backtrackCDOff != 0 {
		cc.BacktrackClassDef = ParseClassDef(seg)
	}
	if seg, err := b.view(int(inputCDOff), len(b)-int(inputCDOff)); err == nil && inputCDOff != 0 {
		cc.InputClassDef = ParseClassDef(seg)
	}
	if seg, err := b.view(int(lookaheadCDOff), len(b)-int(lookaheadCDOff)); err == nil && lookaheadCDOff != 0 {
		cc.LookaheadClassDef = ParseClassDef(seg)
	}
	cc.ClassRuleSets = make([][]ChainedClassSequenceRule, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(12 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		cc.ClassRuleSets[i] = parseChainedClassRuleSet(seg)
	}
	return cc
}

func parseChainedClassRuleSet(b binarySegm) []ChainedClassSequenceRule {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	rules := make([]ChainedClassSequenceRule, 0, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(2 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		rules = append(rules, parseChainedClassRule(seg))
	}
	return rules
}

func parseChainedClassRule(b binarySegm) ChainedClassSequenceRule {
	var r ChainedClassSequenceRule
	off := 0
	r.BacktrackClasses, off = classSeq16(b, off)
	// As in parseChainedRule, the input count includes the first glyph,
	// whose class is not stored: only inputCount-1 classes follow.
	inputCount, err := b.u16(off)
	if err != nil || inputCount == 0 {
		return r
	}
	off += 2
	for i := 0; i < int(inputCount)-1; i++ {
		c, err := b.u16(off + i*2)
		if err != nil {
			break
		}
		r.InputClasses = append(r.InputClasses, c)
	}
	off += (int(inputCount) - 1) * 2
	r.LookaheadClasses, off = classSeq16(b, off)
	seqLookupCount, err := b.u16(off)
	if err != nil {
		return r
	}
	r.LookupRecord = parseSequenceLookupRecords(b, off+2, int(seqLookupCount))
	return r
}

func parseChainedFormat3(b binarySegm) ChainedSequenceContext {
	off := 2
	backtrackCount, err := b.u16(off)
	if err != nil {
		return ChainedSequenceContext{}
	}
	off += 2
	cc := ChainedSequenceContext{Format: 3}
	for i := 0; i < int(backtrackCount); i++ {
		covOff, err := b.u16(off + i*2)
		if err == nil && covOff != 0 {
			if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
				cc.BacktrackCoverages = append(cc.BacktrackCoverages, ParseCoverage(seg))
				continue
			}
		}
		cc.BacktrackCoverages = append(cc.BacktrackCoverages, Coverage{})
	}
	off += int(backtrackCount) * 2
	inputCount, err := b.u16(off)
	if err != nil {
		return cc
	}
	off += 2
	for i := 0; i < int(inputCount); i++ {
		covOff, err := b.u16(off + i*2)
		if err == nil && covOff != 0 {
			if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
				cc.InputCoverages = append(cc.InputCoverages, ParseCoverage(seg))
				continue
			}
		}
		cc.InputCoverages = append(cc.InputCoverages, Coverage{})
	}
	off += int(inputCount) * 2
	lookaheadCount, err := b.u16(off)
	if err != nil {
		return cc
	}
	off += 2
	for i := 0; i < int(lookaheadCount); i++ {
		covOff, err := b.u16(off + i*2)
		if err == nil && covOff != 0 {
			if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
				cc.LookaheadCoverages = append(cc.LookaheadCoverages, ParseCoverage(seg))
				continue
			}
		}
		cc.LookaheadCoverages = append(cc.LookaheadCoverages, Coverage{})
	}
	off += int(lookaheadCount) * 2
	seqLookupCount, err := b.u16(off)
	if err != nil {
		return cc
	}
	cc.LookupRecord = parseSequenceLookupRecords(b, off+2, int(seqLookupCount))
	return cc
}
