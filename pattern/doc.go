/*
Package pattern implements the compiled shaping plan (Pattern) and its
builder. A Pattern is immutable once built: a font, a script/language
pair, a default run direction, and an ordered list of feature units each
carrying the sorted, deduplicated lookup indices the text processor will
apply.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pattern

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.pattern")
}
