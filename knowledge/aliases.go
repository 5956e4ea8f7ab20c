package knowledge

import "github.com/glyphforge/otshape/ot"

// ScriptAliases maps a script tag to the canonical tag its shaping
// knowledge is registered under. Syriac reuses the Arabic joining table:
// both are cursively-joining right-to-left scripts and OpenType fonts
// commonly share one set of isol/fina/medi/init features across both.
var ScriptAliases = map[ot.Tag]ot.Tag{
	tag("syrc"): tag("arab"),
	tag("ARAB"): tag("arab"),
	tag("mong"): tag("arab"),
	tag("nko "): tag("arab"),
}
