package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// palette colors the parts of the command output.
type palette struct {
	header *color.Color
	pos    *color.Color
	term   *color.Color
}

// newPalette honors the configured color mode. In mode auto, colors are used
// only if stdout is a terminal.
func newPalette(mode string) palette {
	p := palette{
		header: color.New(color.FgBlue, color.Bold),
		pos:    color.New(color.FgGreen),
		term:   color.New(color.FgRed),
	}
	enable := mode == "always" || (mode == "auto" && term.IsTerminal(int(os.Stdout.Fd())))
	for _, c := range []*color.Color{p.header, p.pos, p.term} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) headerf(w io.Writer, format string, args ...interface{}) {
	p.header.Fprintf(w, format, args...)
}
