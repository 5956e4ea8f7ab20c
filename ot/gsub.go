package ot

// GSUB lookup types, per the OpenType GSUB table.
const (
	GSUBSingle           = 1
	GSUBMultiple         = 2
	GSUBAlternate        = 3
	GSUBLigature         = 4
	GSUBContext          = 5
	GSUBChainingContext  = 6
	GSUBExtension        = 7
	GSUBReverseChaining  = 8
)

// SingleSubst is a parsed GSUB LookupType 1 subtable.
type SingleSubst struct {
	Format   uint16
	Coverage Coverage
	delta    int16    // format 1
	subst    []GlyphIndex // format 2, parallel to Coverage order
}

// ParseSingleSubst parses a GSUB LookupType 1 subtable.
func ParseSingleSubst(b binarySegm) SingleSubst {
	format, err := b.u16(0)
	if err != nil {
		return SingleSubst{}
	}
	var s SingleSubst
	s.Format = format
	if seg, ok := b.at16(2, b); ok {
		s.Coverage = ParseCoverage(seg)
	}
	switch format {
	case 1:
		delta, err := b.i16(4)
		if err != nil {
			return SingleSubst{}
		}
		s.delta = delta
	case 2:
		n, err := b.u16(4)
		if err != nil {
			return SingleSubst{}
		}
		s.subst = make([]GlyphIndex, 0, n)
		for i := 0; i < int(n); i++ {
			g, err := b.u16(6 + i*2)
			if err != nil {
				break
			}
			s.subst = append(s.subst, GlyphIndex(g))
		}
	default:
		tracer().Errorf("single subst: unrecognized format %d", format)
	}
	return s
}

// Apply returns the substituted glyph and true, if glyph is covered.
func (s SingleSubst) Apply(glyph GlyphIndex) (GlyphIndex, bool) {
	idx, ok := s.Coverage.Index(glyph)
	if !ok {
		return glyph, false
	}
	switch s.Format {
	case 1:
		return GlyphIndex(int32(glyph) + int32(s.delta)), true
	case 2:
		if idx >= len(s.subst) {
			return glyph, false
		}
		return s.subst[idx], true
	default:
		return glyph, false
	}
}

// MultipleSubst is a parsed GSUB LookupType 2 subtable: one glyph in,
// several glyphs out.
type MultipleSubst struct {
	Coverage  Coverage
	sequences [][]GlyphIndex
}

// ParseMultipleSubst parses a GSUB LookupType 2 subtable.
func ParseMultipleSubst(b binarySegm) MultipleSubst {
	n, err := b.u16(4)
	if err != nil {
		return MultipleSubst{}
	}
	var m MultipleSubst
	covOff, err := b.u16(2)
	if err == nil && covOff != 0 {
		if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
			m.Coverage = ParseCoverage(seg)
		}
	}
	m.sequences = make([][]GlyphIndex, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(6 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		seq, _ := glyphSeq16(seg, 0)
		m.sequences[i] = seq
	}
	return m
}

// Apply returns the substitution sequence for glyph, if covered.
func (m MultipleSubst) Apply(glyph GlyphIndex) ([]GlyphIndex, bool) {
	idx, ok := m.Coverage.Index(glyph)
	if !ok || idx >= len(m.sequences) {
		return nil, false
	}
	return m.sequences[idx], true
}

// AlternateSubst is a parsed GSUB LookupType 3 subtable: a glyph maps to a
// set of alternates. The apply package always substitutes the first
// alternate; no caller-supplied selector reaches it.
type AlternateSubst struct {
	Coverage   Coverage
	Alternates [][]GlyphIndex
}

// ParseAlternateSubst parses a GSUB LookupType 3 subtable.
func ParseAlternateSubst(b binarySegm) AlternateSubst {
	n, err := b.u16(4)
	if err != nil {
		return AlternateSubst{}
	}
	var a AlternateSubst
	covOff, err := b.u16(2)
	if err == nil && covOff != 0 {
		if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
			a.Coverage = ParseCoverage(seg)
		}
	}
	a.Alternates = make([][]GlyphIndex, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(6 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		seq, _ := glyphSeq16(seg, 0)
		a.Alternates[i] = seq
	}
	return a
}

// Apply selects alternate number alternateIndex (clamped to the available
// set) for glyph, if covered.
func (a AlternateSubst) Apply(glyph GlyphIndex, alternateIndex int) (GlyphIndex, bool) {
	idx, ok := a.Coverage.Index(glyph)
	if !ok || idx >= len(a.Alternates) {
		return glyph, false
	}
	set := a.Alternates[idx]
	if len(set) == 0 {
		return glyph, false
	}
	if alternateIndex < 0 {
		alternateIndex = 0
	}
	if alternateIndex >= len(set) {
		alternateIndex = len(set) - 1
	}
	return set[alternateIndex], true
}

// Ligature is one ligature-substitution rule: matching component glyphs
// (after the first, which is found via Coverage) collapse to LigGlyph.
type Ligature struct {
	LigGlyph   GlyphIndex
	Components []GlyphIndex
}

// LigatureSubst is a parsed GSUB LookupType 4 subtable.
type LigatureSubst struct {
	Coverage Coverage
	ligSets  [][]Ligature
}

// ParseLigatureSubst parses a GSUB LookupType 4 subtable.
func ParseLigatureSubst(b binarySegm) LigatureSubst {
	n, err := b.u16(4)
	if err != nil {
		return LigatureSubst{}
	}
	var l LigatureSubst
	covOff, err := b.u16(2)
	if err == nil && covOff != 0 {
		if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
			l.Coverage = ParseCoverage(seg)
		}
	}
	l.ligSets = make([][]Ligature, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(6 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		l.ligSets[i] = parseLigatureSet(seg)
	}
	return l
}

func parseLigatureSet(b binarySegm) []Ligature {
	n, err := b.u16(0)
	if err != nil {
		return nil
	}
	ligs := make([]Ligature, 0, n)
	for i := 0; i < int(n); i++ {
		off, err := b.u16(2 + i*2)
		if err != nil || off == 0 {
			continue
		}
		seg, err := b.view(int(off), len(b)-int(off))
		if err != nil {
			continue
		}
		ligs = append(ligs, parseLigature(seg))
	}
	return ligs
}

func parseLigature(b binarySegm) Ligature {
	ligGlyph, e1 := b.u16(0)
	compCount, e2 := b.u16(2)
	if e1 != nil || e2 != nil || compCount == 0 {
		return Ligature{}
	}
	lig := Ligature{LigGlyph: GlyphIndex(ligGlyph)}
	for i := 0; i < int(compCount)-1; i++ {
		g, err := b.u16(4 + i*2)
		if err != nil {
			break
		}
		lig.Components = append(lig.Components, GlyphIndex(g))
	}
	return lig
}

// LigatureSetFor returns the candidate ligatures whose first component is
// glyph, longest-component-sequence candidates generally listed first (per
// OpenType convention — callers should try them in order and take the
// first full match).
func (l LigatureSubst) LigatureSetFor(glyph GlyphIndex) ([]Ligature, bool) {
	idx, ok := l.Coverage.Index(glyph)
	if !ok || idx >= len(l.ligSets) {
		return nil, false
	}
	return l.ligSets[idx], true
}

// ExtensionSubst is a parsed GSUB LookupType 7 subtable: an indirection to a
// subtable of another (non-extension) lookup type, used to address
// subtables beyond the 16-bit offset range.
type ExtensionSubst struct {
	ExtensionLookupType uint16
	Extension           binarySegm
}

// ParseExtensionSubst parses a GSUB LookupType 7 subtable.
func ParseExtensionSubst(b binarySegm) ExtensionSubst {
	lookupType, e1 := b.u16(2)
	off, e2 := b.u32(4)
	if e1 != nil || e2 != nil {
		return ExtensionSubst{}
	}
	var e ExtensionSubst
	e.ExtensionLookupType = lookupType
	if seg, err := b.view(int(off), len(b)-int(off)); err == nil {
		e.Extension = seg
	}
	return e
}

// ReverseChainSingleSubst is a parsed GSUB LookupType 8 subtable: a single
// substitution applied scanning right-to-left, with backtrack/lookahead
// context glyphs consulted but not consumed.
type ReverseChainSingleSubst struct {
	Coverage           Coverage
	BacktrackCoverages []Coverage
	LookaheadCoverages []Coverage
	Substitutes        []GlyphIndex // parallel to Coverage order
}

// ParseReverseChainSingleSubst parses a GSUB LookupType 8 subtable.
func ParseReverseChainSingleSubst(b binarySegm) ReverseChainSingleSubst {
	var r ReverseChainSingleSubst
	covOff, err := b.u16(2)
	if err != nil {
		return r
	}
	if covOff != 0 {
		if seg, err := b.view(int(covOff), len(b)-int(covOff)); err == nil {
			r.Coverage = ParseCoverage(seg)
		}
	}
	off := 4
	backtrackCount, err := b.u16(off)
	if err != nil {
		return r
	}
	off += 2
	for i := 0; i < int(backtrackCount); i++ {
		o, err := b.u16(off + i*2)
		if err == nil && o != 0 {
			if seg, err := b.view(int(o), len(b)-int(o)); err == nil {
				r.BacktrackCoverages = append(r.BacktrackCoverages, ParseCoverage(seg))
				continue
			}
		}
		r.BacktrackCoverages = append(r.BacktrackCoverages, Coverage{})
	}
	off += int(backtrackCount) * 2
	lookaheadCount, err := b.u16(off)
	if err != nil {
		return r
	}
	off += 2
	for i := 0; i < int(lookaheadCount); i++ {
		o, err := b.u16(off + i*2)
		if err == nil && o != 0 {
			if seg, err := b.view(int(o), len(b)-int(o)); err == nil {
				r.LookaheadCoverages = append(r.LookaheadCoverages, ParseCoverage(seg))
				continue
			}
		}
		r.LookaheadCoverages = append(r.LookaheadCoverages, Coverage{})
	}
	off += int(lookaheadCount) * 2
	glyphCount, err := b.u16(off)
	if err != nil {
		return r
	}
	off += 2
	for i := 0; i < int(glyphCount); i++ {
		g, err := b.u16(off + i*2)
		if err != nil {
			break
		}
		r.Substitutes = append(r.Substitutes, GlyphIndex(g))
	}
	return r
}

// Apply returns the substitute for glyph, if covered.
func (r ReverseChainSingleSubst) Apply(glyph GlyphIndex) (GlyphIndex, bool) {
	idx, ok := r.Coverage.Index(glyph)
	if !ok || idx >= len(r.Substitutes) {
		return glyph, false
	}
	return r.Substitutes[idx], true
}
