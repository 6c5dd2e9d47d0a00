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

package monitor_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/environment"
	"github.com/jetsetilly/gopher86/hardware/memory"
	"github.com/jetsetilly/gopher86/hardware/memory/pages"
	"github.com/jetsetilly/gopher86/hardware/preferences"
	"github.com/jetsetilly/gopher86/monitor"
	"github.com/jetsetilly/gopher86/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher86/test"
)

func newMonitor(t *testing.T, input string) (*monitor.Monitor, *memory.Memory, *test.CompareWriter) {
	t.Helper()

	prefs := preferences.NewDefaultPreferences()
	test.DemandSuccess(t, prefs.Size.Set(2048))

	env, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	test.DemandSuccess(t, err)

	mem, err := memory.NewMemory(env)
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(input), tw)
	test.DemandSuccess(t, pt.Initialise())

	return monitor.NewMonitor(env, mem, pt), mem, tw
}

func TestPeekPoke(t *testing.T) {
	mon, mem, tw := newMonitor(t, "")

	test.ExpectSuccess(t, mon.Command("poke 0x1000 0x1234 W"))
	test.ExpectEquality(t, mem.ReadW(0x1000), uint16(0x1234))

	test.ExpectSuccess(t, mon.Command("peek 0x1000 2"))
	test.ExpectSuccess(t, tw.Compare("00001000 34 12\n"))

	// seg:off addressing
	test.ExpectSuccess(t, mon.Command("poke 100:0 $ff"))
	test.ExpectEquality(t, mem.ReadB(0x1000), uint8(0xff))

	test.ExpectSuccess(t, mon.Command("POKE 1004h 0xdeadbeef d"))
	test.ExpectEquality(t, mem.ReadD(0x1004), uint32(0xdeadbeef))

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("peek 0x1000 20"))
	test.ExpectSuccess(t, tw.Compare(
		"00001000 ff 12 00 00 ef be ad de 00 00 00 00 00 00 00 00\n"+
			"00001010 00 00 00 00\n"))
}

func TestStrings(t *testing.T) {
	mon, mem, tw := newMonitor(t, "")
	mem.StrCopy(0x2000, "hello", 16)
	test.ExpectSuccess(t, mon.Command("str 0x2000"))
	test.ExpectSuccess(t, tw.Compare("\"hello\"\n"))
}

func TestVectors(t *testing.T) {
	mon, mem, tw := newMonitor(t, "")

	test.ExpectSuccess(t, mon.Command("vec 0x21 f000:1234"))
	test.ExpectEquality(t, mem.RealGetVec(0x21).String(), "f000:1234")
	test.ExpectSuccess(t, tw.Compare("21: 0000:0000 -> f000:1234\n"))

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("vec 0x21"))
	test.ExpectSuccess(t, tw.Compare("21: f000:1234\n"))
}

func TestArguments(t *testing.T) {
	mon, _, _ := newMonitor(t, "")

	err := mon.Command("bogus")
	test.ExpectSuccess(t, curated.Is(err, monitor.UnknownCommand))

	err = mon.Command("peek")
	test.ExpectSuccess(t, curated.Is(err, monitor.MissingArgument))

	err = mon.Command("poke 0 0x100 B")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArgument))

	err = mon.Command("poke 0 1 Q")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArgument))

	err = mon.Command("alloc 1 sideways")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArgument))

	err = mon.Command("help bogus")
	test.ExpectSuccess(t, curated.Is(err, monitor.UnknownCommand))

	// empty input and comments are not errors
	test.ExpectSuccess(t, mon.Command(""))
	test.ExpectSuccess(t, mon.Command("   # nothing to see here"))
}

func TestAllocation(t *testing.T) {
	mon, mem, tw := newMonitor(t, "")
	free := mem.Pages.FreeTotal()

	test.ExpectSuccess(t, mon.Command("alloc 4 contiguous"))
	test.ExpectSuccess(t, tw.Compare("handle 273 at 00110000\n"))
	test.ExpectEquality(t, mem.Pages.FreeTotal(), free-4)

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("chain 273"))
	test.ExpectSuccess(t, tw.Compare("handle 273: 4 pages\n 0110 0111 0112 0113\n"))

	test.ExpectSuccess(t, mon.Command("realloc 273 6 contiguous"))
	test.ExpectEquality(t, mem.Pages.FreeTotal(), free-6)

	test.ExpectSuccess(t, mon.Command("free 273"))
	test.ExpectEquality(t, mem.Pages.FreeTotal(), free)

	err := mon.Command("free 273")
	test.ExpectSuccess(t, curated.Is(err, pages.BadHandle))

	err = mon.Command("chain 273")
	test.ExpectSuccess(t, curated.Is(err, pages.BadHandle))

	err = mon.Command("alloc 100000")
	test.ExpectSuccess(t, curated.Is(err, pages.Exhausted))

	test.ExpectSuccess(t, mon.Command("stats"))
}

func TestA20(t *testing.T) {
	mon, mem, tw := newMonitor(t, "")

	test.ExpectSuccess(t, mon.Command("a20 on"))
	test.ExpectEquality(t, mem.A20.Enabled(), true)
	test.ExpectSuccess(t, tw.Compare("A20 enabled\n"))

	test.ExpectSuccess(t, mon.Command("a20 off"))
	test.ExpectEquality(t, mem.A20.Enabled(), false)

	err := mon.Command("a20 maybe")
	test.ExpectSuccess(t, curated.Is(err, monitor.BadArgument))
}

func TestUndo(t *testing.T) {
	mon, mem, _ := newMonitor(t, "")

	err := mon.Command("undo")
	test.ExpectSuccess(t, curated.Is(err, monitor.NothingToUndo))

	test.ExpectSuccess(t, mon.Command("poke 0x3000 0x55"))
	test.ExpectSuccess(t, mon.Command("alloc 8"))
	test.ExpectEquality(t, mem.ReadB(0x3000), uint8(0x55))

	free := mem.Pages.FreeTotal()
	test.ExpectSuccess(t, mon.Command("undo"))
	test.ExpectEquality(t, mem.Pages.FreeTotal(), free+8)
	test.ExpectEquality(t, mem.ReadB(0x3000), uint8(0x55))

	err = mon.Command("undo")
	test.ExpectSuccess(t, curated.Is(err, monitor.NothingToUndo))

	// commands that only display state do not replace the undo state
	test.ExpectSuccess(t, mon.Command("poke 0x3000 0xaa"))
	test.ExpectSuccess(t, mon.Command("a20"))
	test.ExpectSuccess(t, mon.Command("undo"))
	test.ExpectEquality(t, mem.ReadB(0x3000), uint8(0x55))
}

func TestSaveLoad(t *testing.T) {
	mon, mem, _ := newMonitor(t, "")
	fn := filepath.Join(t.TempDir(), "memory.sav")

	test.ExpectSuccess(t, mon.Command("poke 0x4000 0x77"))
	test.ExpectSuccess(t, mon.Command("alloc 3"))
	free := mem.Pages.FreeTotal()
	test.ExpectSuccess(t, mon.Command("save "+fn))

	test.ExpectSuccess(t, mon.Command("reset"))
	test.ExpectEquality(t, mem.ReadB(0x4000), uint8(0x00))

	test.ExpectSuccess(t, mon.Command("load "+fn))
	test.ExpectEquality(t, mem.ReadB(0x4000), uint8(0x77))
	test.ExpectEquality(t, mem.Pages.FreeTotal(), free)

	test.ExpectFailure(t, mon.Command("load "+filepath.Join(t.TempDir(), "missing")))
}

func TestGraph(t *testing.T) {
	mon, _, tw := newMonitor(t, "")
	fn := filepath.Join(t.TempDir(), "chains.dot")

	test.ExpectSuccess(t, mon.Command("alloc 2"))
	tw.Clear()
	test.ExpectSuccess(t, mon.Command("graph"))
	test.ExpectSuccess(t, tw.Contains("digraph"))

	test.ExpectSuccess(t, mon.Command("graph "+fn))
	b, err := os.ReadFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestScript(t *testing.T) {
	mon, mem, tw := newMonitor(t, "")
	fn := filepath.Join(t.TempDir(), "script.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("pokeb(0x5000, 0x99)\nprint(peekb(0x5000))\n"), 0o644))

	test.ExpectSuccess(t, mon.Command("script "+fn))
	test.ExpectEquality(t, mem.ReadB(0x5000), uint8(0x99))
	test.ExpectSuccess(t, tw.Compare("153\n"))

	test.ExpectSuccess(t, mon.Command("undo"))
	test.ExpectEquality(t, mem.ReadB(0x5000), uint8(0x00))
}

func TestRun(t *testing.T) {
	mon, mem, tw := newMonitor(t, "poke 0 1\nbogus\nquit\npoke 0 2\n")

	test.ExpectSuccess(t, mon.Run())
	test.ExpectEquality(t, mon.Quitting(), true)
	test.ExpectEquality(t, mem.ReadB(0), uint8(1))
	test.ExpectSuccess(t, tw.Contains("* monitor: unknown command: BOGUS\n"))
}

func TestHelp(t *testing.T) {
	mon, _, tw := newMonitor(t, "")

	test.ExpectSuccess(t, mon.Command("help peek"))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "PEEK <addr> [count]\n"))

	tw.Clear()
	test.ExpectSuccess(t, mon.Command("help"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "QUIT\n"))
}
