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

// Bytes is the byte assembly strategy.
var Bytes Access = bytesAccess{}

type bytesAccess struct{}

func (bytesAccess) String() string {
	return AccessBytes
}

func (bytesAccess) ReadB(mem []uint8, off uint32) uint8 {
	return mem[off]
}

func (bytesAccess) ReadW(mem []uint8, off uint32) uint16 {
	return uint16(mem[off]) | uint16(mem[off+1])<<8
}

func (bytesAccess) ReadD(mem []uint8, off uint32) uint32 {
	return uint32(mem[off]) | uint32(mem[off+1])<<8 |
		uint32(mem[off+2])<<16 | uint32(mem[off+3])<<24
}

func (a bytesAccess) ReadQ(mem []uint8, off uint32) uint64 {
	return uint64(a.ReadD(mem, off)) | uint64(a.ReadD(mem, off+4))<<32
}

func (bytesAccess) WriteB(mem []uint8, off uint32, v uint8) {
	mem[off] = v
}

func (bytesAccess) WriteW(mem []uint8, off uint32, v uint16) {
	mem[off] = uint8(v)
	mem[off+1] = uint8(v >> 8)
}

func (bytesAccess) WriteD(mem []uint8, off uint32, v uint32) {
	mem[off] = uint8(v)
	mem[off+1] = uint8(v >> 8)
	mem[off+2] = uint8(v >> 16)
	mem[off+3] = uint8(v >> 24)
}

func (a bytesAccess) WriteQ(mem []uint8, off uint32, v uint64) {
	a.WriteD(mem, off, uint32(v))
	a.WriteD(mem, off+4, uint32(v>>32))
}
