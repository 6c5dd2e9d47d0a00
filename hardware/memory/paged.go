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
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher86/logger"
)

// plain returns true if the n bytes at the address, which has already been
// passed through the A20 gate, are in a single page of plain RAM
func (mem *Memory) plain(addr addresses.PhysPt, n uint32) bool {
	if memorymap.PageOffset(uint32(addr))+n > memorymap.PageSize {
		return false
	}
	p := memorymap.Page(uint32(addr))
	return p < len(mem.handlers) && mem.handlers[p] == nil
}

// ReadB reads a byte from guest memory.
func (mem *Memory) ReadB(addr addresses.PhysPt) uint8 {
	addr = mem.A20.Wrap(addr)
	p := memorymap.Page(uint32(addr))
	if p >= len(mem.handlers) {
		logger.Logf(mem.env, "memory", "read from unmapped address %s", addr)
		return mem.unmapped
	}
	if h := mem.handlers[p]; h != nil {
		return h.ReadB(addr)
	}
	return mem.ram[addr]
}

// ReadW reads a little-endian word from guest memory.
func (mem *Memory) ReadW(addr addresses.PhysPt) uint16 {
	if a := mem.A20.Wrap(addr); mem.plain(a, 2) {
		return mem.access.ReadW(mem.ram, uint32(a))
	}
	return uint16(mem.ReadB(addr)) | uint16(mem.ReadB(addr+1))<<8
}

// ReadD reads a little-endian double word from guest memory.
func (mem *Memory) ReadD(addr addresses.PhysPt) uint32 {
	if a := mem.A20.Wrap(addr); mem.plain(a, 4) {
		return mem.access.ReadD(mem.ram, uint32(a))
	}
	return uint32(mem.ReadB(addr)) | uint32(mem.ReadB(addr+1))<<8 |
		uint32(mem.ReadB(addr+2))<<16 | uint32(mem.ReadB(addr+3))<<24
}

// WriteB writes a byte to guest memory.
func (mem *Memory) WriteB(addr addresses.PhysPt, v uint8) {
	addr = mem.A20.Wrap(addr)
	p := memorymap.Page(uint32(addr))
	if p >= len(mem.handlers) {
		logger.Logf(mem.env, "memory", "write to unmapped address %s", addr)
		return
	}
	if h := mem.handlers[p]; h != nil {
		h.WriteB(addr, v)
		return
	}
	mem.ram[addr] = v
}

// WriteW writes a little-endian word to guest memory.
func (mem *Memory) WriteW(addr addresses.PhysPt, v uint16) {
	if a := mem.A20.Wrap(addr); mem.plain(a, 2) {
		mem.access.WriteW(mem.ram, uint32(a), v)
		return
	}
	mem.WriteB(addr, uint8(v))
	mem.WriteB(addr+1, uint8(v>>8))
}

// WriteD writes a little-endian double word to guest memory.
func (mem *Memory) WriteD(addr addresses.PhysPt, v uint32) {
	if a := mem.A20.Wrap(addr); mem.plain(a, 4) {
		mem.access.WriteD(mem.ram, uint32(a), v)
		return
	}
	mem.WriteB(addr, uint8(v))
	mem.WriteB(addr+1, uint8(v>>8))
	mem.WriteB(addr+2, uint8(v>>16))
	mem.WriteB(addr+3, uint8(v>>24))
}
