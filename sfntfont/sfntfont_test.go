package sfntfont

import (
	"bytes"
	"testing"

	"github.com/glyphforge/otshape/ot"
)

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func be32(v uint32) []byte { return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)} }

// buildBareSFNT wraps a single table's payload in a minimal SFNT byte
// stream: a 12-byte offset table followed by one 16-byte directory entry,
// then the table's bytes at the first aligned offset after the directory.
func buildBareSFNT(tag string, payload []byte) []byte {
	const headerSize = 12
	const dirEntrySize = 16
	tableOffset := uint32(headerSize + dirEntrySize)

	var b bytes.Buffer
	b.Write(be32(0x00010000)) // sfnt version 1.0
	b.Write(be16(1))          // numTables
	b.Write(be16(0))          // searchRange (unused by our scanner)
	b.Write(be16(0))          // entrySelector
	b.Write(be16(0))          // rangeShift

	tagBytes := make([]byte, 4)
	copy(tagBytes, tag)
	b.Write(tagBytes)
	b.Write(be32(0)) // checksum, unused
	b.Write(be32(tableOffset))
	b.Write(be32(uint32(len(payload))))

	b.Write(payload)
	return b.Bytes()
}

func TestLoadTableFindsMatchingDirectoryEntry(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	data := buildBareSFNT("GDEF", payload)

	sf := &Font{raw: data}
	got, ok := sf.LoadTable(ot.T("GDEF"))
	if !ok {
		t.Fatal("LoadTable(GDEF) = false, want true")
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("LoadTable(GDEF) = %x, want %x", got, payload)
	}
}

func TestLoadTableMissingTagReturnsFalse(t *testing.T) {
	data := buildBareSFNT("GDEF", []byte{1, 2, 3, 4})

	sf := &Font{raw: data}
	if _, ok := sf.LoadTable(ot.T("GSUB")); ok {
		t.Fatal("LoadTable(GSUB) = true, want false for a font with no such table")
	}
}

func TestLoadTableRejectsOutOfBoundsEntry(t *testing.T) {
	data := buildBareSFNT("GDEF", []byte{1, 2, 3, 4})
	// Corrupt the length field of the single directory entry to run past
	// the end of the buffer.
	data[12+12] = 0xFF

	sf := &Font{raw: data}
	if _, ok := sf.LoadTable(ot.T("GDEF")); ok {
		t.Fatal("LoadTable(GDEF) = true, want false for a truncated/corrupt entry")
	}
}

func TestLoadTableOnTooShortBufferReturnsFalse(t *testing.T) {
	sf := &Font{raw: []byte{1, 2, 3}}
	if _, ok := sf.LoadTable(ot.T("GDEF")); ok {
		t.Fatal("LoadTable(GDEF) = true, want false for a buffer shorter than an SFNT header")
	}
}
