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
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/memory"
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/pages"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/monitor/script"
	"github.com/jetsetilly/gopher86/monitor/terminal"
)

func (m *Monitor) feedback(format string, args ...any) {
	m.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf(format, args...))
}

func getAddress(cmd string, tk *Tokens) (addresses.PhysPt, error) {
	s, ok := tk.Get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, cmd)
	}
	addr, err := parseAddress(s)
	if err != nil {
		return 0, curated.Errorf(BadArgument, cmd, s)
	}
	return addr, nil
}

func getNumber(cmd string, tk *Tokens, bits int) (uint64, error) {
	s, ok := tk.Get()
	if !ok {
		return 0, curated.Errorf(MissingArgument, cmd)
	}
	v, err := parseNumber(s, bits)
	if err != nil {
		return 0, curated.Errorf(BadArgument, cmd, s)
	}
	return v, nil
}

func getHandle(cmd string, tk *Tokens) (pages.MemHandle, error) {
	v, err := getNumber(cmd, tk, 31)
	return pages.MemHandle(v), err
}

func getFilename(cmd string, tk *Tokens) (string, error) {
	s, ok := tk.Get()
	if !ok {
		return "", curated.Errorf(MissingArgument, cmd)
	}
	return s, nil
}

func (m *Monitor) execute(cmd string, tk *Tokens) error {
	switch cmd {
	case cmdQuit:
		m.quit = true

	case cmdHelp:
		s, ok := tk.Get()
		if !ok {
			for _, k := range keywords {
				m.term.TermPrintLine(terminal.StyleHelp, usage[k])
			}
			return nil
		}
		s = strings.ToUpper(s)
		if _, ok := help[s]; !ok {
			return curated.Errorf(UnknownCommand, s)
		}
		m.term.TermPrintLine(terminal.StyleHelp, usage[s])
		m.term.TermPrintLine(terminal.StyleHelp, help[s])

	case cmdPeek:
		addr, err := getAddress(cmd, tk)
		if err != nil {
			return err
		}

		count := uint64(16)
		if tk.Remaining() > 0 {
			count, err = getNumber(cmd, tk, 16)
			if err != nil {
				return err
			}
		}

		for line := uint64(0); line < count; line += 16 {
			s := strings.Builder{}
			s.WriteString(addresses.PhysPt(uint64(addr) + line).String())
			for i := line; i < min(line+16, count); i++ {
				s.WriteString(fmt.Sprintf(" %02x", m.mem.ReadB(addr+addresses.PhysPt(i))))
			}
			m.term.TermPrintLine(terminal.StyleFeedback, s.String())
		}

	case cmdPoke:
		addr, err := getAddress(cmd, tk)
		if err != nil {
			return err
		}

		v, err := getNumber(cmd, tk, 32)
		if err != nil {
			return err
		}

		width := "B"
		if s, ok := tk.Get(); ok {
			width = strings.ToUpper(s)
		}

		switch width {
		case "B":
			if v > 0xff {
				return curated.Errorf(BadArgument, cmd, fmt.Sprintf("%#x", v))
			}
			m.mem.WriteB(addr, uint8(v))
		case "W":
			if v > 0xffff {
				return curated.Errorf(BadArgument, cmd, fmt.Sprintf("%#x", v))
			}
			m.mem.WriteW(addr, uint16(v))
		case "D":
			m.mem.WriteD(addr, uint32(v))
		default:
			return curated.Errorf(BadArgument, cmd, width)
		}

	case cmdStr:
		addr, err := getAddress(cmd, tk)
		if err != nil {
			return err
		}
		m.feedback("%q", m.mem.StrRead(addr, memory.MaxStrLen))

	case cmdVec:
		v, err := getNumber(cmd, tk, 8)
		if err != nil {
			return err
		}
		vec := uint8(v)

		s, ok := tk.Get()
		if !ok {
			m.feedback("%02x: %s", vec, m.mem.RealGetVec(vec))
			return nil
		}

		pt, err := parseRealPt(s)
		if err != nil {
			return curated.Errorf(BadArgument, cmd, s)
		}
		old := m.mem.RealExchangeVec(vec, pt)
		m.feedback("%02x: %s -> %s", vec, old, pt)

	case cmdAlloc:
		v, err := getNumber(cmd, tk, 31)
		if err != nil {
			return err
		}
		count := int(v)

		var contiguous, friendly bool
		for tk.Remaining() > 0 {
			s, _ := tk.Get()
			switch strings.ToUpper(s) {
			case "CONTIGUOUS":
				contiguous = true
			case "FRIENDLY":
				friendly = true
			default:
				return curated.Errorf(BadArgument, cmd, s)
			}
		}

		var h pages.MemHandle
		if friendly {
			h = m.mem.Pages.AllocatePagesA20Friendly(count, contiguous)
		} else {
			h = m.mem.Pages.AllocatePages(count, contiguous)
		}
		if h == pages.InvalidHandle {
			return curated.Errorf(pages.Exhausted, count)
		}
		m.feedback("handle %d at %s", h, pages.PageAddress(h))

	case cmdFree:
		h, err := getHandle(cmd, tk)
		if err != nil {
			return err
		}
		if err := m.mem.Pages.ReleasePages(h); err != nil {
			return err
		}

	case cmdRealloc:
		h, err := getHandle(cmd, tk)
		if err != nil {
			return err
		}

		v, err := getNumber(cmd, tk, 31)
		if err != nil {
			return err
		}

		var contiguous bool
		if s, ok := tk.Get(); ok {
			if strings.ToUpper(s) != "CONTIGUOUS" {
				return curated.Errorf(BadArgument, cmd, s)
			}
			contiguous = true
		}

		if err := m.mem.Pages.ReAllocatePages(&h, int(v), contiguous); err != nil {
			return err
		}
		if h == pages.InvalidHandle {
			m.feedback("released")
		} else {
			m.feedback("handle %d at %s", h, pages.PageAddress(h))
		}

	case cmdChain:
		h, err := getHandle(cmd, tk)
		if err != nil {
			return err
		}

		chain := m.mem.Pages.Chain(h)
		if chain == nil {
			return curated.Errorf(pages.BadHandle, h)
		}

		m.feedback("handle %d: %d pages", h, len(chain))
		for i := 0; i < len(chain); i += 8 {
			s := strings.Builder{}
			for _, p := range chain[i:min(i+8, len(chain))] {
				s.WriteString(fmt.Sprintf(" %04x", p))
			}
			m.feedback("%s", s.String())
		}

	case cmdStats:
		m.feedback("%s", m.mem)
		m.feedback("%d chains", len(m.mem.Pages.Handles()))
		if r := m.mem.Pages.ReservedHandle(); r != pages.InvalidHandle {
			m.feedback("reserved: handle %d (%d pages)", r, m.mem.Pages.AllocatedPages(r))
		}
		if p, ok := m.mem.Pages.GetNextFreePage(); ok {
			m.feedback("next free page: %04x", p)
		}
		if err := m.mem.Pages.Check(); err != nil {
			return err
		}

	case cmdA20:
		if s, ok := tk.Get(); ok {
			switch strings.ToUpper(s) {
			case "ON":
				m.mem.A20.Enable(true)
			case "OFF":
				m.mem.A20.Enable(false)
			default:
				return curated.Errorf(BadArgument, cmd, s)
			}
		}
		m.feedback("%s", m.mem.A20)

	case cmdGraph:
		s, ok := tk.Get()
		if !ok {
			m.mem.Pages.WriteGraph(m.Writer(terminal.StyleFeedback))
			return nil
		}

		f, err := os.Create(s)
		if err != nil {
			return curated.Errorf("monitor: %v", err)
		}
		defer f.Close()
		m.mem.Pages.WriteGraph(f)

	case cmdSave:
		fn, err := getFilename(cmd, tk)
		if err != nil {
			return err
		}

		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf("monitor: %v", err)
		}
		defer f.Close()

		if err := m.mem.Save(f); err != nil {
			return err
		}
		logger.Logf(m.env, "monitor", "saved memory to %s", fn)

	case cmdLoad:
		fn, err := getFilename(cmd, tk)
		if err != nil {
			return err
		}

		f, err := os.Open(fn)
		if err != nil {
			return curated.Errorf("monitor: %v", err)
		}
		defer f.Close()

		if err := m.mem.Load(f); err != nil {
			return err
		}
		logger.Logf(m.env, "monitor", "loaded memory from %s", fn)

	case cmdUndo:
		if m.undo == nil {
			return curated.Errorf(NothingToUndo)
		}
		if err := m.mem.Plumb(m.undo); err != nil {
			return err
		}
		m.undo = nil

	case cmdReset:
		m.mem.Reset()

	case cmdScript:
		fn, err := getFilename(cmd, tk)
		if err != nil {
			return err
		}

		r := script.NewRunner(m.env, m.mem, m.Writer(terminal.StyleFeedback))
		defer r.Close()
		return r.RunFile(fn)

	case cmdLog:
		n := uint64(10)
		if tk.Remaining() > 0 {
			var err error
			n, err = getNumber(cmd, tk, 16)
			if err != nil {
				return err
			}
		}
		logger.Tail(m.Writer(terminal.StyleLog), int(n))
	}

	return nil
}
