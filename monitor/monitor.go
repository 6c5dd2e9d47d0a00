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

package monitor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/environment"
	"github.com/jetsetilly/gopher86/hardware/memory"
	"github.com/jetsetilly/gopher86/monitor/terminal"
)

// Sentinal error patterns returned by Command().
const (
	UnknownCommand  = "monitor: unknown command: %s"
	MissingArgument = "monitor: %s: missing argument"
	BadArgument     = "monitor: %s: bad argument: %s"
	NothingToUndo   = "monitor: nothing to undo"
)

// Monitor is the command line interface to guest memory.
type Monitor struct {
	env  *environment.Environment
	mem  *memory.Memory
	term terminal.Terminal

	// state of memory before the most recent command that changed it
	undo *memory.Memory

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(env *environment.Environment, mem *memory.Memory, term terminal.Terminal) *Monitor {
	return &Monitor{
		env:  env,
		mem:  mem,
		term: term,
	}
}

func (m *Monitor) prompt() string {
	return fmt.Sprintf("[ %s | %d free ] > ", m.mem.A20, m.mem.Pages.FreeTotal())
}

// Run the monitor input loop until QUIT or the end of input. The terminal is
// initialised and cleaned up by Run().
func (m *Monitor) Run() error {
	if err := m.term.Initialise(); err != nil {
		return err
	}
	defer m.term.CleanUp()

	m.term.TermPrintLine(terminal.StyleHelp, m.mem.String())

	for !m.quit {
		input, err := m.term.TermRead(m.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := m.Command(input); err != nil {
			m.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// Quitting returns true if the QUIT command has been issued.
func (m *Monitor) Quitting() bool {
	return m.quit
}

// Command parses and runs a single line of input. Empty input is not an
// error.
func (m *Monitor) Command(input string) error {
	tk := TokeniseInput(input)

	cmd, ok := tk.Get()
	if !ok {
		return nil
	}
	cmd = strings.ToUpper(cmd)

	if _, ok := help[cmd]; !ok {
		return curated.Errorf(UnknownCommand, cmd)
	}

	if n, ok := mutates[cmd]; ok && tk.Remaining() >= n {
		snapshot := m.mem.Snapshot()
		defer func() {
			m.undo = snapshot
		}()
	}

	return m.execute(cmd, tk)
}

// Writer returns an io.Writer that prints every complete line written to it
// on the terminal in the specified style.
func (m *Monitor) Writer(style terminal.Style) io.Writer {
	return &termWriter{out: m.term, style: style}
}

type termWriter struct {
	out   terminal.Output
	style terminal.Style
	buf   []byte
}

func (tw *termWriter) Write(p []byte) (int, error) {
	tw.buf = append(tw.buf, p...)
	for {
		i := bytes.IndexByte(tw.buf, '\n')
		if i < 0 {
			break
		}
		tw.out.TermPrintLine(tw.style, string(tw.buf[:i]))
		tw.buf = tw.buf[i+1:]
	}
	return len(p), nil
}
