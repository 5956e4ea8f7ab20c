package apply

import (
	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/locator"
	"github.com/glyphforge/otshape/ot"
)

// matchForward walks loc forward from start (inclusive), collecting n
// non-ignored positions that each satisfy matchFn(position, ordinal).
func matchForward(loc *locator.Locator, start, n int, matchFn func(pos, i int) bool) ([]int, bool) {
	if n == 0 {
		return nil, true
	}
	positions := make([]int, 0, n)
	pos := start
	for i := 0; i < n; i++ {
		idx, ok := loc.GetAfter(pos)
		if !ok || !matchFn(idx, i) {
			return nil, false
		}
		positions = append(positions, idx)
		pos = idx + 1
	}
	return positions, true
}

// matchBackward walks loc backward from beforeStart (inclusive), collecting
// n non-ignored positions ordered nearest-first, each satisfying
// matchFn(position, ordinal).
func matchBackward(loc *locator.Locator, beforeStart, n int, matchFn func(pos, i int) bool) bool {
	if n == 0 {
		return true
	}
	pos := beforeStart
	for i := 0; i < n; i++ {
		idx, ok := loc.GetBefore(pos)
		if !ok || !matchFn(idx, i) {
			return false
		}
		pos = idx - 1
	}
	return true
}

// runNestedLookups applies a rule's SequenceLookupRecords in array order,
// tracking how much each nested application shifted the album's length so
// later records still land on the right matched-sequence position. Each
// nested lookup runs through a locator windowed to exactly the matched
// input range (so a nested lookup that is itself contextual can only ever
// match within it), and once every record has run loc is advanced past the
// whole consumed range via TakeState, so the driving MoveNext loop that
// found this rule doesn't revisit glyphs these nested lookups already
// touched.
func runNestedLookups(font *ot.Font, gsub bool, alb *album.Album, loc *locator.Locator, records []ot.SequenceLookupRecord, inputPositions []int) bool {
	applied := false
	delta := 0
	contextEnd := inputPositions[len(inputPositions)-1] + 1
	gd, _ := font.GDef()
	nested := locator.New(alb, gd)
	for _, rec := range records {
		si := int(rec.SequenceIndex)
		if si < 0 || si >= len(inputPositions) {
			continue
		}
		lookup, ok := font.Lookup(gsub, int(rec.LookupIndex))
		if !ok {
			continue
		}
		target := inputPositions[si] + delta
		end := contextEnd + delta
		before := alb.Len()
		nested.Reset(target, end-target)
		nested.JumpTo(target)
		nested.SetLookupFlag(lookup.Flag)
		nested.SetMarkFilteringSet(lookup.MarkFilterSet)
		var fired bool
		if gsub {
			fired = ApplyGSUBLookup(font, lookup, alb, nested)
		} else {
			fired = ApplyGPOSLookup(font, lookup, alb, nested)
		}
		if fired {
			applied = true
			grown := alb.Len() - before
			delta += grown
			contextEnd += grown
		}
	}
	start, limit := loc.Window()
	nested.Reset(start, (limit+delta)-start)
	nested.JumpTo(contextEnd - 1)
	loc.TakeState(nested)
	return applied
}

// applySequenceContext matches a SequenceContext rule at loc's current
// position and, on a match, runs its nested lookups.
func applySequenceContext(font *ot.Font, gsub bool, sc ot.SequenceContext, alb *album.Album, loc *locator.Locator) bool {
	idx := loc.Index()
	glyph := alb.Glyph(idx)
	switch sc.Format {
	case 1:
		ci, ok := sc.Coverage.Index(glyph)
		if !ok || ci >= len(sc.RuleSets) {
			return false
		}
		for _, rule := range sc.RuleSets[ci] {
			positions, ok := matchForward(loc, idx+1, len(rule.Input), func(pos, i int) bool {
				return alb.Glyph(pos) == rule.Input[i]
			})
			if !ok {
				continue
			}
			return runNestedLookups(font, gsub, alb, loc, rule.LookupRecord, append([]int{idx}, positions...))
		}
		return false
	case 2:
		class := sc.ClassDef.Class(glyph)
		if int(class) >= len(sc.ClassRuleSets) {
			return false
		}
		for _, rule := range sc.ClassRuleSets[class] {
			positions, ok := matchForward(loc, idx+1, len(rule.InputClasses), func(pos, i int) bool {
				return sc.ClassDef.Class(alb.Glyph(pos)) == rule.InputClasses[i]
			})
			if !ok {
				continue
			}
			return runNestedLookups(font, gsub, alb, loc, rule.LookupRecord, append([]int{idx}, positions...))
		}
		return false
	case 3:
		if len(sc.InputCoverages) == 0 || !sc.InputCoverages[0].Contains(glyph) {
			return false
		}
		positions, ok := matchForward(loc, idx+1, len(sc.InputCoverages)-1, func(pos, i int) bool {
			return sc.InputCoverages[i+1].Contains(alb.Glyph(pos))
		})
		if !ok {
			return false
		}
		return runNestedLookups(font, gsub, alb, loc, sc.LookupRecord, append([]int{idx}, positions...))
	default:
		return false
	}
}

// applyChainedSequenceContext matches a ChainedSequenceContext rule at
// loc's current position (backtrack, input, lookahead) and, on a match,
// runs its nested lookups.
func applyChainedSequenceContext(font *ot.Font, gsub bool, cc ot.ChainedSequenceContext, alb *album.Album, loc *locator.Locator) bool {
	idx := loc.Index()
	glyph := alb.Glyph(idx)
	switch cc.Format {
	case 1:
		ci, ok := cc.Coverage.Index(glyph)
		if !ok || ci >= len(cc.RuleSets) {
			return false
		}
		for _, rule := range cc.RuleSets[ci] {
			if !matchBackward(loc, idx-1, len(rule.Backtrack), func(pos, i int) bool {
				return alb.Glyph(pos) == rule.Backtrack[i]
			}) {
				continue
			}
			positions, ok := matchForward(loc, idx+1, len(rule.Input), func(pos, i int) bool {
				return alb.Glyph(pos) == rule.Input[i]
			})
			if !ok {
				continue
			}
			laStart := idx + 1
			if len(positions) > 0 {
				laStart = positions[len(positions)-1] + 1
			}
			if _, ok := matchForward(loc, laStart, len(rule.Lookahead), func(pos, i int) bool {
				return alb.Glyph(pos) == rule.Lookahead[i]
			}); !ok {
				continue
			}
			return runNestedLookups(font, gsub, alb, loc, rule.LookupRecord, append([]int{idx}, positions...))
		}
		return false
	case 2:
		class := cc.InputClassDef.Class(glyph)
		if int(class) >= len(cc.ClassRuleSets) {
			return false
		}
		for _, rule := range cc.ClassRuleSets[class] {
			if !matchBackward(loc, idx-1, len(rule.BacktrackClasses), func(pos, i int) bool {
				return cc.BacktrackClassDef.Class(alb.Glyph(pos)) == rule.BacktrackClasses[i]
			}) {
				continue
			}
			positions, ok := matchForward(loc, idx+1, len(rule.InputClasses), func(pos, i int) bool {
				return cc.InputClassDef.Class(alb.Glyph(pos)) == rule.InputClasses[i]
			})
			if !ok {
				continue
			}
			laStart := idx + 1
			if len(positions) > 0 {
				laStart = positions[len(positions)-1] + 1
			}
			if _, ok := matchForward(loc, laStart, len(rule.LookaheadClasses), func(pos, i int) bool {
				return cc.LookaheadClassDef.Class(alb.Glyph(pos)) == rule.LookaheadClasses[i]
			}); !ok {
				continue
			}
			return runNestedLookups(font, gsub, alb, loc, rule.LookupRecord, append([]int{idx}, positions...))
		}
		return false
	case 3:
		if len(cc.InputCoverages) == 0 || !cc.InputCoverages[0].Contains(glyph) {
			return false
		}
		if !matchBackward(loc, idx-1, len(cc.BacktrackCoverages), func(pos, i int) bool {
			return cc.BacktrackCoverages[i].Contains(alb.Glyph(pos))
		}) {
			return false
		}
		positions, ok := matchForward(loc, idx+1, len(cc.InputCoverages)-1, func(pos, i int) bool {
			return cc.InputCoverages[i+1].Contains(alb.Glyph(pos))
		})
		if !ok {
			return false
		}
		laStart := idx + 1
		if len(positions) > 0 {
			laStart = positions[len(positions)-1] + 1
		}
		if _, ok := matchForward(loc, laStart, len(cc.LookaheadCoverages), func(pos, i int) bool {
			return cc.LookaheadCoverages[i].Contains(alb.Glyph(pos))
		}); !ok {
			return false
		}
		return runNestedLookups(font, gsub, alb, loc, cc.LookupRecord, append([]int{idx}, positions...))
	default:
		return false
	}
}
