/*
Package scheme builds a pattern.Pattern by consulting a font's ScriptList/
LangSys/FeatureList against a script's knowledge.ScriptKnowledge: which
features the script wants, in which order, matched against which features
and lookups the font actually implements.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scheme

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("otshape.scheme")
}
