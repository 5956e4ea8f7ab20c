package codepoints

import (
	"unicode/utf16"
	"unicode/utf8"
)

// invalidIndex marks a Sequence as not-yet-Reset.
const invalidIndex = -1

// source abstracts the encoding-specific step-one-code-point operation a
// Sequence delegates to.
type source interface {
	len() int
	decodeForward(index int) (r rune, width int)
	decodeBackward(index int) (r rune, width int)
}

// Sequence is a stepping cursor over a code point sequence. It holds no
// decoded copy beyond what the source already is: stepping re-decodes one
// code point at a time, matching how a shaping engine consumes text
// exactly once per direction.
type Sequence struct {
	src      source
	index    int
	backward bool
}

// NewUTF8 returns a Sequence over the UTF-8-encoded string s.
func NewUTF8(s string) *Sequence {
	return &Sequence{src: utf8Source(s), index: invalidIndex}
}

// NewUTF16 returns a Sequence over UTF-16 code units u, decoding surrogate
// pairs as it steps.
func NewUTF16(u []uint16) *Sequence {
	return &Sequence{src: utf16Source(u), index: invalidIndex}
}

// NewRunes returns a Sequence over an already-decoded rune slice.
func NewRunes(r []rune) *Sequence {
	return &Sequence{src: runeSource(r), index: invalidIndex}
}

// Reset positions the cursor before the first code point (backward=false)
// or after the last (backward=true), ready for a sequence of Next calls
// in that direction.
func (c *Sequence) Reset(backward bool) {
	c.backward = backward
	if !backward {
		c.index = 0
	} else {
		c.index = c.src.len()
	}
}

// Next returns the next code point in the cursor's current direction and
// advances past it, or (0, false) once the sequence is exhausted.
func (c *Sequence) Next() (rune, bool) {
	if !c.backward {
		if c.index >= c.src.len() {
			return 0, false
		}
		r, width := c.src.decodeForward(c.index)
		c.index += width
		return r, true
	}
	if c.index <= 0 {
		return 0, false
	}
	r, width := c.src.decodeBackward(c.index)
	c.index -= width
	return r, true
}

// Index returns the cursor's current position, in the source's own unit
// (byte offset for UTF-8, code-unit offset for UTF-16, rune offset for a
// rune slice).
func (c *Sequence) Index() int { return c.index }

// Len returns the sequence's length in the source's own unit.
func (c *Sequence) Len() int { return c.src.len() }

type utf8Source string

func (s utf8Source) len() int { return len(s) }

func (s utf8Source) decodeForward(i int) (rune, int) {
	r, width := utf8.DecodeRuneInString(string(s[i:]))
	return r, width
}

func (s utf8Source) decodeBackward(i int) (rune, int) {
	r, width := utf8.DecodeLastRuneInString(string(s[:i]))
	return r, width
}

type utf16Source []uint16

func (s utf16Source) len() int { return len(s) }

func (s utf16Source) decodeForward(i int) (rune, int) {
	r1 := rune(s[i])
	if utf16.IsSurrogate(r1) && i+1 < len(s) {
		if r := utf16.DecodeRune(r1, rune(s[i+1])); r != utf8.RuneError {
			return r, 2
		}
	}
	return r1, 1
}

func (s utf16Source) decodeBackward(i int) (rune, int) {
	r1 := rune(s[i-1])
	if utf16.IsSurrogate(r1) && i-2 >= 0 {
		r0 := rune(s[i-2])
		if r := utf16.DecodeRune(r0, r1); r != utf8.RuneError {
			return r, 2
		}
	}
	return r1, 1
}

type runeSource []rune

func (s runeSource) len() int { return len(s) }

func (s runeSource) decodeForward(i int) (rune, int) { return s[i], 1 }

func (s runeSource) decodeBackward(i int) (rune, int) { return s[i-1], 1 }
