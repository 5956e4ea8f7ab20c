package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "font":
		pterm.Info.Println("font <path>")
		pterm.Println("  Load an SFNT font file and bind it to this session.")
	case "script":
		pterm.Info.Println("script <tag>")
		pterm.Println("  Set the 4-character OpenType script tag to shape with, e.g. 'latn' or 'arab'.")
	case "lang":
		pterm.Info.Println("lang <tag>")
		pterm.Println("  Set the 4-character OpenType language-system tag within the script.")
	case "dir":
		pterm.Info.Println("dir <ltr|rtl>")
		pterm.Println("  Set the run's writing direction.")
	case "text":
		pterm.Info.Println("text <string>")
		pterm.Println("  Bind the UTF-8 text this session will shape.")
	case "shape":
		pterm.Info.Println("shape")
		pterm.Println("  Build a Pattern for the bound font/script/language and shape the bound text.")
	case "print":
		pterm.Info.Println("print")
		pterm.Println("  Print the glyphs, advances and positions from the last 'shape'.")
	default:
		pterm.Info.Println("Commands: font, script, lang, dir, text, shape, print, help, quit")
	}
}
