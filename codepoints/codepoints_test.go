package codepoints

import "testing"

func collect(c *Sequence, backward bool) []rune {
	c.Reset(backward)
	var out []rune
	for {
		r, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, r)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUTF8ForwardAndBackward(t *testing.T) {
	c := NewUTF8("abc")
	if got := collect(c, false); !runesEqual(got, []rune{'a', 'b', 'c'}) {
		t.Fatalf("forward = %v", got)
	}
	if got := collect(c, true); !runesEqual(got, []rune{'c', 'b', 'a'}) {
		t.Fatalf("backward = %v", got)
	}
}

func TestUTF8MultibyteRunes(t *testing.T) {
	c := NewUTF8("aبb") // a + beh + b
	got := collect(c, false)
	want := []rune{'a', 'ب', 'b'}
	if !runesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRunesSource(t *testing.T) {
	c := NewRunes([]rune{'x', 'y', 'z'})
	if got := collect(c, false); !runesEqual(got, []rune{'x', 'y', 'z'}) {
		t.Fatalf("forward = %v", got)
	}
	if got := collect(c, true); !runesEqual(got, []rune{'z', 'y', 'x'}) {
		t.Fatalf("backward = %v", got)
	}
}

func TestUTF16SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded as a surrogate pair.
	r := rune(0x1F600)
	hi, lo := 0xD800+((r-0x10000)>>10), 0xDC00+((r-0x10000)&0x3FF)
	c := NewUTF16([]uint16{'a', uint16(hi), uint16(lo), 'b'})
	got := collect(c, false)
	want := []rune{'a', r, 'b'}
	if !runesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
