package ot

import (
	"errors"
	"fmt"
)

// errBufferBounds signals an attempt to read past the end of a byte segment.
var errBufferBounds = errors.New("ot: buffer bounds error")

func u8(b []byte) uint8 {
	return b[0]
}

func u16(b []byte) uint16 {
	_ = b[1] // bounds-check hint to the compiler
	return uint16(b[0])<<8 | uint16(b[1])
}

func u32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func i16(b []byte) int16 {
	return int16(u16(b))
}

// binarySegm is a segment of a font's binary table data. Every nested
// structure is accessed by deriving a new binarySegm rooted at an offset
// read from the enclosing one — no pointer graph is ever materialized.
type binarySegm []byte

func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

func (b binarySegm) u8(i int) (uint8, error) {
	v, err := b.view(i, 1)
	if err != nil {
		return 0, err
	}
	return u8(v), nil
}

func (b binarySegm) u16(i int) (uint16, error) {
	v, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(v), nil
}

func (b binarySegm) i16(i int) (int16, error) {
	v, err := b.u16(i)
	return int16(v), err
}

func (b binarySegm) u32(i int) (uint32, error) {
	v, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(v), nil
}

// U16 returns the uint16 at byte offset i, or 0 if out of bounds.
func (b binarySegm) U16(i int) uint16 {
	v, err := b.u16(i)
	if err != nil {
		return 0
	}
	return v
}

// U32 returns the uint32 at byte offset i, or 0 if out of bounds.
func (b binarySegm) U32(i int) uint32 {
	v, err := b.u32(i)
	if err != nil {
		return 0
	}
	return v
}

// sub returns a sub-slice of b, or an empty segment if out of bounds.
func (b binarySegm) sub(offset, n int) binarySegm {
	v, err := b.view(offset, n)
	if err != nil {
		tracer().Debugf("ot: sub-segment [%d:%d] out of bounds (len %d)", offset, offset+n, len(b))
		return binarySegm{}
	}
	return v
}

// at16 derives a new segment rooted at the offset16 stored at byte i within b,
// relative to base. An offset of 0 conventionally denotes "no link" (NULL).
func (b binarySegm) at16(i int, base binarySegm) (binarySegm, bool) {
	off, err := b.u16(i)
	if err != nil || off == 0 {
		return nil, false
	}
	v, err := base.view(int(off), len(base)-int(off))
	if err != nil {
		return nil, false
	}
	return v, true
}

func assertf(cond bool, format string, args ...any) {
	if !assertionsEnabled {
		return
	}
	if !cond {
		panic(fmt.Sprintf("ot: assertion failed: "+format, args...))
	}
}

// assertionsEnabled gates the debug-only fatal assertions the OpenType spec asks
// for ("Mismatched versions ... fatal-in-debug; in release ... continues").
// Go has no build-time NDEBUG switch for this, so it is a package variable
// instead, off by default.
var assertionsEnabled = false

// EnableAssertions turns on debug-only invariant checks (panics instead of
// silently recovering). Intended for tests and development builds.
func EnableAssertions(on bool) {
	assertionsEnabled = on
}

// Assert panics with the given message if cond is false and assertions are
// enabled; it is a silent no-op otherwise. Exported so that other packages
// (locator, process) can gate their own debug-only invariant checks behind
// the same switch.
func Assert(cond bool, format string, args ...any) {
	assertf(cond, format, args...)
}
