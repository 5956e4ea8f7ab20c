/*
Package codepoints implements a stepping cursor over a Unicode code point
sequence, independent of the source encoding (UTF-8, UTF-16, or a plain
rune slice), advancing either forward or backward one code point at a
time.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package codepoints

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.codepoints")
}
