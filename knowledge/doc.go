/*
Package knowledge holds the per-script tables of feature tags and feature
units that scheme.Scheme consults when it builds a pattern.Pattern: which
OpenType features a script needs, in which order, batched into which
feature units, and what default run direction the script implies.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package knowledge

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.knowledge")
}
