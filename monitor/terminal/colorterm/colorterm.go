// This file is part of Gopher86.
//
// Gopher86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher86.  If not, see <https://www.gnu.org/licenses/>.

// Package colorterm implements the Terminal interface for the gopher86
// monitor. It puts the terminal into raw mode and uses the line editor from
// golang.org/x/term, with coloured output.
package colorterm

import (
	"io"
	"os"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/monitor/terminal"
	"golang.org/x/term"
)

// NotATerminal is returned by Initialise() when standard input is not a
// terminal.
const NotATerminal = "colorterm: standard input is not a terminal"

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	fd    int
	state *term.State
	t     *term.Terminal
}

// Available returns true if standard input and output are both terminals.
func Available() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	ct.fd = int(os.Stdin.Fd())
	if !term.IsTerminal(ct.fd) {
		return curated.Errorf(NotATerminal)
	}

	var err error
	ct.state, err = term.MakeRaw(ct.fd)
	if err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.t = term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		ct.t.SetSize(w, h)
	}

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	if ct.state != nil {
		_ = term.Restore(ct.fd, ct.state)
		ct.state = nil
	}
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.t.SetPrompt(string(ct.t.Escape.Blue) + prompt + string(ct.t.Escape.Reset))
	return ct.t.ReadLine()
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	var pen []byte

	switch style {
	case terminal.StyleHelp:
		pen = ct.t.Escape.White
	case terminal.StyleFeedback:
		pen = ct.t.Escape.Cyan
	case terminal.StyleLog:
		pen = ct.t.Escape.Yellow
	case terminal.StyleError:
		pen = ct.t.Escape.Red
		s = "* " + s
	}

	ct.t.Write(pen)
	ct.t.Write([]byte(s))
	ct.t.Write(ct.t.Escape.Reset)
	ct.t.Write([]byte("\n"))
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}
