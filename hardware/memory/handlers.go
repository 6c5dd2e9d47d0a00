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
	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/bus"
	"github.com/jetsetilly/gopher86/logger"
)

// PageRange is the error pattern for handler mapping outside of guest memory.
const PageRange = "memory: pages %#x to %#x are outside of guest memory"

// MapHandler installs the handler for count pages starting at page. A nil
// handler returns the pages to plain RAM.
func (mem *Memory) MapHandler(page int, count int, h bus.PageHandler) error {
	if page < 0 || count < 0 || page+count > len(mem.handlers) {
		return curated.Errorf(PageRange, page, page+count-1)
	}
	for p := page; p < page+count; p++ {
		mem.handlers[p] = h
	}
	return nil
}

// UnmapHandler returns count pages starting at page to plain RAM.
func (mem *Memory) UnmapHandler(page int, count int) error {
	return mem.MapHandler(page, count, nil)
}

// IsPlainRAM returns true if the address, after the A20 gate has been
// applied, is in a page of plain RAM.
func (mem *Memory) IsPlainRAM(addr addresses.PhysPt) bool {
	return mem.plain(mem.A20.Wrap(addr), 1)
}

// Handler returns the handler for the page. Returns nil for plain RAM and for
// pages outside of guest memory.
func (mem *Memory) Handler(page int) bus.PageHandler {
	if page < 0 || page >= len(mem.handlers) {
		return nil
	}
	return mem.handlers[page]
}

// ROM is a page handler that allows reads from RAM and ignores writes. The
// Phys functions can still write to pages mapped as ROM.
type ROM struct {
	mem *Memory
}

// ROM returns a ROM page handler for this memory.
func (mem *Memory) ROM() ROM {
	return ROM{mem: mem}
}

// ReadB implements the bus.PageHandler interface.
func (r ROM) ReadB(addr addresses.PhysPt) uint8 {
	return r.mem.ram[addr]
}

// WriteB implements the bus.PageHandler interface.
func (r ROM) WriteB(addr addresses.PhysPt, data uint8) {
	logger.Logf(r.mem.env, "memory", "write to ROM at %s ignored", addr)
}

// IOFuncs is a page handler that passes every access to a function. It is
// suitable for memory-mapped devices. A nil Read function reads as 0xff and
// a nil Write function ignores the write.
type IOFuncs struct {
	Read  func(addr addresses.PhysPt) uint8
	Write func(addr addresses.PhysPt, data uint8)
}

// ReadB implements the bus.PageHandler interface.
func (f IOFuncs) ReadB(addr addresses.PhysPt) uint8 {
	if f.Read == nil {
		return 0xff
	}
	return f.Read(addr)
}

// WriteB implements the bus.PageHandler interface.
func (f IOFuncs) WriteB(addr addresses.PhysPt, data uint8) {
	if f.Write != nil {
		f.Write(addr, data)
	}
}

// OutOfRange is the error pattern for debugger access outside of guest memory.
const OutOfRange = "memory: address %s is outside of guest memory"

// Peek implements the bus.DebuggerBus interface. Page handlers and the A20
// gate are bypassed.
func (mem *Memory) Peek(addr addresses.PhysPt) (uint8, error) {
	if uint32(addr) >= mem.Size() {
		return 0, curated.Errorf(OutOfRange, addr)
	}
	return mem.ram[addr], nil
}

// Poke implements the bus.DebuggerBus interface. Page handlers and the A20
// gate are bypassed.
func (mem *Memory) Poke(addr addresses.PhysPt, data uint8) error {
	if uint32(addr) >= mem.Size() {
		return curated.Errorf(OutOfRange, addr)
	}
	mem.ram[addr] = data
	return nil
}

// MovePages implements the bus.Mover interface.
func (mem *Memory) MovePages(dst addresses.PhysPt, src addresses.PhysPt, size uint32) {
	copy(mem.ram[dst:uint32(dst)+size], mem.ram[src:uint32(src)+size])
}

var _ bus.DebuggerBus = (*Memory)(nil)
var _ bus.Mover = (*Memory)(nil)
var _ bus.PageHandler = ROM{}
var _ bus.PageHandler = IOFuncs{}
