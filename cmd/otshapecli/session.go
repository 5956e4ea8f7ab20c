package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/bidi"

	"github.com/glyphforge/otshape/album"
	"github.com/glyphforge/otshape/artist"
	"github.com/glyphforge/otshape/ot"
	"github.com/glyphforge/otshape/pattern"
	"github.com/glyphforge/otshape/scheme"
	"github.com/glyphforge/otshape/sfntfont"
	"github.com/glyphforge/otshape/shapefont"
)

// session is the interpreter's state between commands: the currently
// loaded font, the script/language/direction it will shape with, the
// bound input text, the last compiled pattern and the last shaped
// Album. Mirrors the role of otcli's Intp, minus its table-navigation
// stack, which this command's domain has no use for.
type session struct {
	fontPath  string
	font      *shapefont.ShapingFont
	scriptTag ot.Tag
	langTag   ot.Tag
	haveLang  bool
	text      string
	direction bidi.Direction

	pat pattern.Pattern
	alb *album.Album
}

func (s *session) String() string {
	script := "-"
	if s.scriptTag != 0 {
		script = s.scriptTag.String()
	}
	lang := "-"
	if s.haveLang {
		lang = s.langTag.String()
	}
	dir := "ltr"
	if s.direction == bidi.RightToLeft {
		dir = "rtl"
	}
	return fmt.Sprintf("( font=%s script=%s lang=%s dir=%s )", s.fontPath, script, lang, dir)
}

func (s *session) loadFont(path string) error {
	if path == "" {
		return fmt.Errorf("usage: font <path>")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read font %s: %w", path, err)
	}
	raw, err := sfntfont.Parse(data)
	if err != nil {
		return fmt.Errorf("cannot decode font %s: %w", path, err)
	}
	s.fontPath = path
	s.font = shapefont.New(raw)
	s.pat = pattern.Pattern{}
	s.alb = nil
	pterm.Printf("loaded font %s\n", path)
	return nil
}

func (s *session) setScript(tag string) error {
	if len(tag) != 4 {
		return fmt.Errorf("script tag %q must be 4 characters", tag)
	}
	s.scriptTag = ot.T(tag)
	pterm.Printf("script set to %s\n", tag)
	return nil
}

func (s *session) setLanguage(tag string) error {
	if len(tag) != 4 {
		return fmt.Errorf("language tag %q must be 4 characters", tag)
	}
	s.langTag = ot.T(tag)
	s.haveLang = true
	pterm.Printf("language set to %s\n", tag)
	return nil
}

func (s *session) setDirection(arg string) error {
	switch arg {
	case "ltr", "LTR":
		s.direction = bidi.LeftToRight
	case "rtl", "RTL":
		s.direction = bidi.RightToLeft
	default:
		return fmt.Errorf("unknown direction %q (expected ltr|rtl)", arg)
	}
	return nil
}

func (s *session) setText(text string) error {
	s.text = text
	return nil
}

// shape builds a Pattern for the bound font/script/language, then runs
// one shaping pass over the bound text, leaving the result in s.alb for
// print.
func (s *session) shape() error {
	if s.font == nil {
		return fmt.Errorf("no font loaded (try 'font <path>')")
	}
	if s.scriptTag == 0 {
		return fmt.Errorf("no script set (try 'script <tag>')")
	}
	if s.text == "" {
		return fmt.Errorf("no text set (try 'text <string>')")
	}

	sch := scheme.New()
	sch.SetFont(s.font.Layout())
	sch.SetScript(s.scriptTag)
	if s.haveLang {
		sch.SetLanguage(s.langTag)
	}
	pat, ok := sch.BuildPattern()
	if !ok {
		return fmt.Errorf("font has no usable GSUB/GPOS for script %s", s.scriptTag)
	}
	s.pat = pat

	art := artist.New()
	art.SetFont(s.font)
	art.SetUTF8String(s.text)
	art.SetPattern(s.pat)
	art.SetTextDirection(s.direction)

	alb := album.New()
	if err := art.FillAlbum(alb); err != nil {
		return err
	}
	s.alb = alb
	pterm.Printf("shaped %d glyph(s)\n", alb.Len())
	return nil
}

func (s *session) print() error {
	if s.alb == nil {
		return fmt.Errorf("nothing shaped yet (try 'shape')")
	}
	for i := 0; i < s.alb.Len(); i++ {
		pos := s.alb.Position(i)
		pterm.Printf("glyph[%d] = %d  advance=%d  pos=(%d,%d)\n",
			i, s.alb.Glyph(i), s.alb.Advance(i), pos.X, pos.Y)
	}
	return nil
}
