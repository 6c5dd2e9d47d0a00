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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/environment"
	"github.com/jetsetilly/gopher86/hardware/memory/a20"
	"github.com/jetsetilly/gopher86/hardware/memory/bus"
	"github.com/jetsetilly/gopher86/hardware/memory/host"
	"github.com/jetsetilly/gopher86/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher86/hardware/memory/pages"
)

// Memory is the guest physical memory.
type Memory struct {
	env *environment.Environment

	// the backing store for guest memory
	ram []uint8

	// byte order access strategy
	access host.Access

	A20   *a20.Gate
	Pages *pages.Allocator

	// one entry per page of guest memory. a nil entry is plain RAM
	handlers []bus.PageHandler

	// value returned by reads of unmapped addresses
	unmapped uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The size of memory and other options are taken from the preferences in
// the environment.
func NewMemory(env *environment.Environment) (*Memory, error) {
	access, err := host.Select(env.Prefs.Access.Get().(string))
	if err != nil {
		return nil, curated.Errorf("memory: %v", err)
	}

	size := env.Prefs.Size.Get().(int) * 1024
	reserve := env.Prefs.Reserved.Get().(int) * 1024

	mem := &Memory{
		env:      env,
		ram:      make([]uint8, size),
		access:   access,
		A20:      a20.NewGate(env, env.Prefs.A20.Get().(bool)),
		handlers: make([]bus.PageHandler, memorymap.Pages(size)),
		unmapped: uint8(env.Prefs.UnmappedValue.Get().(int)),
	}

	mem.Pages, err = pages.NewAllocator(env, memorymap.Pages(size), memorymap.Pages(reserve), mem, mem.A20)
	if err != nil {
		return nil, curated.Errorf("memory: %v", err)
	}

	mem.mapBIOS()

	return mem, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%dK: %s: %s: %s", len(mem.ram)/1024, mem.access, mem.A20, mem.Pages)
}

// Size returns the size of guest memory in bytes.
func (mem *Memory) Size() uint32 {
	return uint32(len(mem.ram))
}

// Access returns the byte order access strategy in use.
func (mem *Memory) Access() host.Access {
	return mem.access
}

// Reset clears guest memory, frees all allocated pages and removes all page
// handlers. The A20 gate is returned to the state in the preferences.
func (mem *Memory) Reset() {
	clear(mem.ram)
	clear(mem.handlers)
	mem.Pages.Reset()
	mem.A20.Enable(mem.env.Prefs.A20.Get().(bool))
	mem.mapBIOS()
}

// the system BIOS area is read-only to the paged access functions
func (mem *Memory) mapBIOS() {
	if len(mem.ram) > memorymap.MemtopBIOS {
		first := memorymap.Page(memorymap.OriginBIOS)
		last := memorymap.Page(memorymap.MemtopBIOS)
		_ = mem.MapHandler(first, last-first+1, mem.ROM())
	}
}
