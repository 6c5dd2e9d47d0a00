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

import "github.com/jetsetilly/gopher86/hardware/memory/addresses"

// PhysReadB reads a byte from plain RAM.
func (mem *Memory) PhysReadB(addr addresses.PhysPt) uint8 {
	return mem.ram[addr]
}

// PhysReadW reads a little-endian word from plain RAM.
func (mem *Memory) PhysReadW(addr addresses.PhysPt) uint16 {
	return mem.access.ReadW(mem.ram, uint32(addr))
}

// PhysReadD reads a little-endian double word from plain RAM.
func (mem *Memory) PhysReadD(addr addresses.PhysPt) uint32 {
	return mem.access.ReadD(mem.ram, uint32(addr))
}

// PhysWriteB writes a byte to plain RAM.
func (mem *Memory) PhysWriteB(addr addresses.PhysPt, v uint8) {
	mem.ram[addr] = v
}

// PhysWriteW writes a little-endian word to plain RAM.
func (mem *Memory) PhysWriteW(addr addresses.PhysPt, v uint16) {
	mem.access.WriteW(mem.ram, uint32(addr), v)
}

// PhysWriteD writes a little-endian double word to plain RAM.
func (mem *Memory) PhysWriteD(addr addresses.PhysPt, v uint32) {
	mem.access.WriteD(mem.ram, uint32(addr), v)
}

// PhysWriteS copies the string to plain RAM. No terminating NUL is written.
// Returns the address after the last byte written.
func (mem *Memory) PhysWriteS(addr addresses.PhysPt, s string) addresses.PhysPt {
	copy(mem.ram[addr:], s)
	return addr + addresses.PhysPt(len(s))
}
