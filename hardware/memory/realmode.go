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
)

// RealReadB reads a byte from seg:off.
func (mem *Memory) RealReadB(seg, off uint16) uint8 {
	return mem.ReadB(addresses.PhysMake(seg, off))
}

// RealReadW reads a word from seg:off.
func (mem *Memory) RealReadW(seg, off uint16) uint16 {
	return mem.ReadW(addresses.PhysMake(seg, off))
}

// RealReadD reads a double word from seg:off.
func (mem *Memory) RealReadD(seg, off uint16) uint32 {
	return mem.ReadD(addresses.PhysMake(seg, off))
}

// RealWriteB writes a byte to seg:off.
func (mem *Memory) RealWriteB(seg, off uint16, v uint8) {
	mem.WriteB(addresses.PhysMake(seg, off), v)
}

// RealWriteW writes a word to seg:off.
func (mem *Memory) RealWriteW(seg, off uint16, v uint16) {
	mem.WriteW(addresses.PhysMake(seg, off), v)
}

// RealWriteD writes a double word to seg:off.
func (mem *Memory) RealWriteD(seg, off uint16, v uint32) {
	mem.WriteD(addresses.PhysMake(seg, off), v)
}

func vectorAddress(vec uint8) addresses.PhysPt {
	return addresses.PhysPt(memorymap.OriginIVT + uint32(vec)*memorymap.VectorLength)
}

// RealGetVec returns the interrupt vector.
func (mem *Memory) RealGetVec(vec uint8) addresses.RealPt {
	return addresses.RealPt(mem.ReadD(vectorAddress(vec)))
}

// RealSetVec sets the interrupt vector.
func (mem *Memory) RealSetVec(vec uint8, pt addresses.RealPt) {
	mem.WriteD(vectorAddress(vec), uint32(pt))
}

// RealExchangeVec sets the interrupt vector and returns the previous value.
func (mem *Memory) RealExchangeVec(vec uint8, pt addresses.RealPt) addresses.RealPt {
	old := mem.RealGetVec(vec)
	mem.RealSetVec(vec, pt)
	return old
}
