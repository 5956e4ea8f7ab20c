/*
Package locator implements the filtering iterator that walks an Album's
glyph sequence during substitution, positioning and attachment, skipping
glyphs a lookup's flags say to ignore.

A Locator is a stack-local, explicit state object — not a coroutine — so
that nested context-matching can hold several locators (an outer locator,
a context locator restricted to a matched range, and recursive context
locators for nested lookups) and pass state between them with TakeState.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package locator

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.locator")
}
