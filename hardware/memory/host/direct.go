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

package host

import (
	"math/bits"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Direct is the direct cast strategy.
var Direct Access = directAccess{}

type directAccess struct{}

func (directAccess) String() string {
	return AccessDirect
}

// the bounds check on the last byte of each access stops the unsafe pointer
// from reaching beyond the end of the slice

func (directAccess) ReadB(mem []uint8, off uint32) uint8 {
	return mem[off]
}

func (directAccess) ReadW(mem []uint8, off uint32) uint16 {
	_ = mem[off+1]
	v := *(*uint16)(unsafe.Pointer(&mem[off]))
	if cpu.IsBigEndian {
		return bits.ReverseBytes16(v)
	}
	return v
}

func (directAccess) ReadD(mem []uint8, off uint32) uint32 {
	_ = mem[off+3]
	v := *(*uint32)(unsafe.Pointer(&mem[off]))
	if cpu.IsBigEndian {
		return bits.ReverseBytes32(v)
	}
	return v
}

func (directAccess) ReadQ(mem []uint8, off uint32) uint64 {
	_ = mem[off+7]
	v := *(*uint64)(unsafe.Pointer(&mem[off]))
	if cpu.IsBigEndian {
		return bits.ReverseBytes64(v)
	}
	return v
}

func (directAccess) WriteB(mem []uint8, off uint32, v uint8) {
	mem[off] = v
}

func (directAccess) WriteW(mem []uint8, off uint32, v uint16) {
	_ = mem[off+1]
	if cpu.IsBigEndian {
		v = bits.ReverseBytes16(v)
	}
	*(*uint16)(unsafe.Pointer(&mem[off])) = v
}

func (directAccess) WriteD(mem []uint8, off uint32, v uint32) {
	_ = mem[off+3]
	if cpu.IsBigEndian {
		v = bits.ReverseBytes32(v)
	}
	*(*uint32)(unsafe.Pointer(&mem[off])) = v
}

func (directAccess) WriteQ(mem []uint8, off uint32, v uint64) {
	_ = mem[off+7]
	if cpu.IsBigEndian {
		v = bits.ReverseBytes64(v)
	}
	*(*uint64)(unsafe.Pointer(&mem[off])) = v
}
