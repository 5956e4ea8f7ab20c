package ot

// ValueFormat is the GPOS ValueFormat bit field selecting which of a
// ValueRecord's fields are present in the binary encoding.
type ValueFormat uint16

const (
	ValueXPlacement ValueFormat = 1 << iota
	ValueYPlacement
	ValueXAdvance
	ValueYAdvance
	ValueXPlaDevice
	ValueYPlaDevice
	ValueXAdvDevice
	ValueYAdvDevice
)

// ValueRecord holds the subset of a GPOS ValueRecord this engine acts on.
// Device/variation tables are out of scope
type ValueRecord struct {
	XPlacement int16
	YPlacement int16
	XAdvance   int16
	YAdvance   int16
}

// valueRecordSize returns the byte size of a ValueRecord encoded with the
// given format.
func valueRecordSize(format ValueFormat) int {
	n := 0
	for bit := ValueFormat(1); bit <= ValueYAdvDevice; bit <<= 1 {
		if format&bit != 0 {
			n += 2
		}
	}
	return n
}

// parseValueRecord reads a ValueRecord at byte offset off in b, following
// the field order mandated by the OpenType spec (xPlacement, yPlacement,
// xAdvance, yAdvance, then device offsets which are ignored here).
func parseValueRecord(b binarySegm, off int, format ValueFormat) (ValueRecord, int) {
	var v ValueRecord
	i := off
	if format&ValueXPlacement != 0 {
		x, _ := b.i16(i)
		v.XPlacement = x
		i += 2
	}
	if format&ValueYPlacement != 0 {
		y, _ := b.i16(i)
		v.YPlacement = y
		i += 2
	}
	if format&ValueXAdvance != 0 {
		x, _ := b.i16(i)
		v.XAdvance = x
		i += 2
	}
	if format&ValueYAdvance != 0 {
		y, _ := b.i16(i)
		v.YAdvance = y
		i += 2
	}
	// Device table offsets (4 fields) are skipped, not interpreted.
	for _, bit := range []ValueFormat{ValueXPlaDevice, ValueYPlaDevice, ValueXAdvDevice, ValueYAdvDevice} {
		if format&bit != 0 {
			i += 2
		}
	}
	return v, i - off
}

// Anchor is a GPOS anchor point (x, y), format 1/2/3 all reduced to their
// coordinate pair — contour-point (format 2) and device-adjusted (format 3)
// refinements are out of scope, matching value records' device tables.
type Anchor struct {
	X, Y  int16
	valid bool
}

// Valid reports whether the anchor was present (a NULL anchor offset parses
// to an invalid, zero Anchor).
func (a Anchor) Valid() bool { return a.valid }

// parseAnchor parses an Anchor table rooted at b, or returns an invalid
// Anchor for a NULL/malformed offset.
func parseAnchor(b binarySegm) Anchor {
	if len(b) < 6 {
		return Anchor{}
	}
	format, err := b.u16(0)
	if err != nil || format == 0 {
		return Anchor{}
	}
	x, err1 := b.i16(2)
	y, err2 := b.i16(4)
	if err1 != nil || err2 != nil {
		return Anchor{}
	}
	return Anchor{X: x, Y: y, valid: true}
}

// anchorAt16 follows an offset16-to-Anchor at byte i in b, rooted at base.
func anchorAt16(b binarySegm, i int, base binarySegm) Anchor {
	seg, ok := b.at16(i, base)
	if !ok {
		return Anchor{}
	}
	return parseAnchor(seg)
}
