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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/environment"
	"github.com/jetsetilly/gopher86/hardware/memory"
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/pages"
	"github.com/jetsetilly/gopher86/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern for errors raised by the Lua interpreter.
const ScriptError = "script: %v"

// Runner executes Lua scripts with bindings to a Memory instance.
type Runner struct {
	env    *environment.Environment
	mem    *memory.Memory
	output io.Writer
	L      *lua.LState
}

// NewRunner is the preferred method of initialisation for the Runner type.
// Close() should be called when the Runner is no longer required.
func NewRunner(env *environment.Environment, mem *memory.Memory, output io.Writer) *Runner {
	r := &Runner{
		env:    env,
		mem:    mem,
		output: output,
		L:      lua.NewState(),
	}

	bindings := map[string]lua.LGFunction{
		"print":       r.print,
		"peekb":       r.peekb,
		"peekw":       r.peekw,
		"peekd":       r.peekd,
		"pokeb":       r.pokeb,
		"pokew":       r.pokew,
		"poked":       r.poked,
		"alloc":       r.alloc,
		"free":        r.free,
		"realloc":     r.realloc,
		"pageaddr":    r.pageaddr,
		"freetotal":   r.freetotal,
		"freelargest": r.freelargest,
		"a20":         r.a20,
	}
	for k, f := range bindings {
		r.L.SetGlobal(k, r.L.NewFunction(f))
	}

	return r
}

// Close the Lua state.
func (r *Runner) Close() {
	r.L.Close()
}

// RunFile executes the Lua script in the named file.
func (r *Runner) RunFile(filename string) error {
	logger.Logf(r.env, "script", "running %s", filename)
	if err := r.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString executes the Lua source in src.
func (r *Runner) RunString(src string) error {
	if err := r.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (r *Runner) print(L *lua.LState) int {
	top := L.GetTop()
	s := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(r.output, strings.Join(s, "\t"))
	return 0
}

func checkAddr(L *lua.LState, n int) addresses.PhysPt {
	return addresses.PhysPt(uint32(L.CheckInt64(n)))
}

func checkHandle(L *lua.LState, n int) pages.MemHandle {
	return pages.MemHandle(L.CheckInt(n))
}

func (r *Runner) peekb(L *lua.LState) int {
	L.Push(lua.LNumber(r.mem.ReadB(checkAddr(L, 1))))
	return 1
}

func (r *Runner) peekw(L *lua.LState) int {
	L.Push(lua.LNumber(r.mem.ReadW(checkAddr(L, 1))))
	return 1
}

func (r *Runner) peekd(L *lua.LState) int {
	L.Push(lua.LNumber(r.mem.ReadD(checkAddr(L, 1))))
	return 1
}

func (r *Runner) pokeb(L *lua.LState) int {
	r.mem.WriteB(checkAddr(L, 1), uint8(L.CheckInt64(2)))
	return 0
}

func (r *Runner) pokew(L *lua.LState) int {
	r.mem.WriteW(checkAddr(L, 1), uint16(L.CheckInt64(2)))
	return 0
}

func (r *Runner) poked(L *lua.LState) int {
	r.mem.WriteD(checkAddr(L, 1), uint32(L.CheckInt64(2)))
	return 0
}

// push nil and an error message in the manner of the Lua io library
func fail(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(err.Error()))
	return 2
}

func (r *Runner) alloc(L *lua.LState) int {
	count := L.CheckInt(1)
	contiguous := L.OptBool(2, false)
	friendly := L.OptBool(3, false)

	var h pages.MemHandle
	if friendly {
		h = r.mem.Pages.AllocatePagesA20Friendly(count, contiguous)
	} else {
		h = r.mem.Pages.AllocatePages(count, contiguous)
	}

	if h == pages.InvalidHandle {
		return fail(L, curated.Errorf(pages.Exhausted, count))
	}

	L.Push(lua.LNumber(h))
	return 1
}

func (r *Runner) free(L *lua.LState) int {
	if err := r.mem.Pages.ReleasePages(checkHandle(L, 1)); err != nil {
		return fail(L, err)
	}
	L.Push(lua.LTrue)
	return 1
}

func (r *Runner) realloc(L *lua.LState) int {
	h := checkHandle(L, 1)
	count := L.CheckInt(2)
	contiguous := L.OptBool(3, false)

	if err := r.mem.Pages.ReAllocatePages(&h, count, contiguous); err != nil {
		return fail(L, err)
	}

	L.Push(lua.LNumber(h))
	return 1
}

func (r *Runner) pageaddr(L *lua.LState) int {
	L.Push(lua.LNumber(pages.PageAddress(checkHandle(L, 1))))
	return 1
}

func (r *Runner) freetotal(L *lua.LState) int {
	L.Push(lua.LNumber(r.mem.Pages.FreeTotal()))
	return 1
}

func (r *Runner) freelargest(L *lua.LState) int {
	L.Push(lua.LNumber(r.mem.Pages.FreeLargest()))
	return 1
}

func (r *Runner) a20(L *lua.LState) int {
	if L.GetTop() >= 1 {
		r.mem.A20.Enable(L.CheckBool(1))
	}
	L.Push(lua.LBool(r.mem.A20.Enabled()))
	return 1
}
