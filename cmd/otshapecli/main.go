/*
Command otshapecli is a small interactive shell for exercising a shaping
run: load a font, pick a script/language/direction, bind some text, shape
it and print the resulting glyphs.

Grounded on otcli/main.go: the same readline REPL loop, pterm-colored
welcome/error output and schuko tracing setup (RegisterTraceAdapter/
ConfigureRoot/SetTraceSelector), with the table-navigation command set
(table/map/list/->) replaced by the commands this module's domain
actually calls for (font/script/lang/dir/text/shape/print).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	"golang.org/x/text/unicode/bidi"
)

func tracer() tracing.Trace {
	return tracing.Select("otshape.cli")
}

func main() {
	initDisplay()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.otshape.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.LevelError)

	pterm.Info.Println("Welcome to otshape CLI")
	repl, err := readline.New("otshape > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	defer repl.Close()

	sess := &session{direction: bidi.LeftToRight}
	pterm.Info.Println("Quit with <ctrl>D or 'quit'")
	sess.REPL(repl)
}

// We use pterm for moderately fancy output, same prefixes otcli
// configures.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// REPL reads one command per line until readline returns an error (EOF
// on <ctrl>D) or the user types "quit".
func (s *session) REPL(repl *readline.Instance) {
	for {
		pterm.Println(s.String())
		line, err := repl.Readline()
		if err != nil {
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		cmd := strings.ToLower(fields[0])
		arg := ""
		if len(fields) > 1 {
			arg = strings.TrimSpace(fields[1])
		}
		if cmd == "quit" {
			break
		}
		if err := s.dispatch(cmd, arg); err != nil {
			pterm.Error.Println(err)
		}
	}
	pterm.Info.Println("Good bye!")
}

func (s *session) dispatch(cmd, arg string) error {
	switch cmd {
	case "help":
		help(arg)
		return nil
	case "font":
		return s.loadFont(arg)
	case "script":
		return s.setScript(arg)
	case "lang":
		return s.setLanguage(arg)
	case "dir":
		return s.setDirection(arg)
	case "text":
		return s.setText(arg)
	case "shape":
		return s.shape()
	case "print":
		return s.print()
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}
