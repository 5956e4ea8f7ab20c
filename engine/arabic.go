package engine

import (
	"unicode"

	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/knowledge"
)

// joiningType is the Unicode Arabic_Joining_Type property (a coarse
// subset sufficient for the isol/init/medi/fina feature selection
// OpenType Arabic shaping uses: transparent marks never interrupt a
// joining chain, and only dual/right/join-causing characters combine).
type joiningType uint8

const (
	joiningTypeU joiningType = iota // non-joining
	joiningTypeR                    // right-joining
	joiningTypeD                    // dual-joining
	joiningTypeT                    // transparent (combining marks)
	joiningTypeC                    // join-causing (ZWJ, tatweel)
)

// Arabic is the shaping engine for Arabic and the scripts
// knowledge.ScriptAliases folds onto it (Syriac, Mongolian, N'Ko): a
// left-to-right scan over the run's Unicode joining types assigns each
// glyph its isolated/initial/medial/final presentation form, encoded as
// a knowledge.Mask* feature-mask bit the compiled pattern's isol/init/
// medi/fina feature units then select on.
type Arabic struct{}

func (Arabic) Name() string { return "arabic" }

func (Arabic) ProcessAlbum(alb *album.Album, codepoints []rune) {
	n := alb.Len()
	if n == 0 || len(codepoints) != n {
		return
	}
	types := make([]joiningType, n)
	for i, cp := range codepoints {
		types[i] = classifyJoiningType(cp)
	}
	for i := 0; i < n; i++ {
		t := types[i]
		if t != joiningTypeD && t != joiningTypeR && t != joiningTypeC {
			// Non-joining and transparent positions carry no form bit.
			alb.SetFeatureMask(i, 0)
			continue
		}
		// Join-causing positions (ZWJ, Tatweel) get a presentation form of
		// their own, computed as if they were dual-joining.
		if t == joiningTypeC {
			t = joiningTypeD
		}
		prev := previousJoinType(types, i)
		next := nextJoinType(types, i)
		joinPrev := prev >= 0 && canJoinFollowing(types[prev]) && canJoinPreceding(t)
		joinNext := next >= 0 && canJoinFollowing(t) && canJoinPreceding(types[next])

		var mask uint16
		switch {
		case joinPrev && joinNext:
			mask = knowledge.MaskMedi
		case joinPrev:
			mask = knowledge.MaskFina
		case joinNext:
			mask = knowledge.MaskInit
		default:
			mask = knowledge.MaskIsol
		}
		alb.SetFeatureMask(i, mask)
	}
}

// formMask is every joining-form bit the engine may assign. ProcessAlbum
// overwrites each position's feature mask with exactly one of these bits
// (or 0), so re-running it is idempotent.
const formMask = knowledge.MaskIsol | knowledge.MaskFina | knowledge.MaskFin2 |
	knowledge.MaskFin3 | knowledge.MaskMedi | knowledge.MaskMed2 | knowledge.MaskInit

func previousJoinType(types []joiningType, i int) int {
	for j := i - 1; j >= 0; j-- {
		if types[j] != joiningTypeT {
			return j
		}
	}
	return -1
}

func nextJoinType(types []joiningType, i int) int {
	for j := i + 1; j < len(types); j++ {
		if types[j] != joiningTypeT {
			return j
		}
	}
	return -1
}

func canJoinPreceding(t joiningType) bool {
	return t == joiningTypeD || t == joiningTypeR || t == joiningTypeC
}

func canJoinFollowing(t joiningType) bool {
	return t == joiningTypeD || t == joiningTypeC
}

func classifyJoiningType(cp rune) joiningType {
	switch cp {
	case 0, '‌': // NUL placeholder, ZWNJ: explicitly breaks joining
		return joiningTypeU
	case '‍', 'ـ': // ZWJ, Tatweel
		return joiningTypeC
	}
	if unicode.Is(unicode.M, cp) {
		return joiningTypeT
	}
	if isRightJoining(cp) {
		return joiningTypeR
	}
	if isArabicJoiningLetter(cp) {
		return joiningTypeD
	}
	return joiningTypeU
}

func isArabicJoiningLetter(cp rune) bool {
	return unicode.IsLetter(cp) && (unicode.In(cp, unicode.Arabic) || unicode.In(cp, unicode.Syriac))
}

// rightJoiningRunes lists the Arabic/Syriac letters whose Joining_Type is
// Right_Joining (R): they join to a preceding letter but never to a
// following one.
var rightJoiningRunes = map[rune]struct{}{
	'آ': {}, 'أ': {}, 'ؤ': {}, 'إ': {}, 'ا': {}, 'ة': {},
	'د': {}, 'ذ': {}, 'ر': {}, 'ز': {}, 'و': {},
	'ٱ': {}, 'ٲ': {}, 'ٳ': {}, 'ٵ': {}, 'ٶ': {}, 'ٷ': {},
	'ڈ': {}, 'ډ': {}, 'ڑ': {}, 'ۀ': {}, 'ۃ': {}, 'ۄ': {},
	'ۅ': {}, 'ۆ': {}, 'ۇ': {}, 'ۈ': {}, 'ۉ': {}, 'ۊ': {},
	'ۋ': {}, 'ۍ': {},
	'ܐ': {}, 'ܕ': {}, 'ܖ': {}, 'ܘ': {}, 'ܙ': {}, 'ܚ': {},
	'ܝ': {}, 'ܪ': {}, 'ܫ': {}, 'ܬ': {}, 'ܭ': {}, 'ܮ': {}, 'ܯ': {},
}

func isRightJoining(cp rune) bool {
	_, ok := rightJoiningRunes[cp]
	return ok
}
