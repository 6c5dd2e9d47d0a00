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

import "unsafe"

// Width is the set of types that can be passed to Read() and Write().
type Width interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Read a value of type T from mem using the access strategy. The width of
// the access is the size of T.
func Read[T Width](a Access, mem []uint8, off uint32) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		return T(a.ReadB(mem, off))
	case 2:
		return T(a.ReadW(mem, off))
	case 4:
		return T(a.ReadD(mem, off))
	}
	return T(a.ReadQ(mem, off))
}

// Write a value of type T to mem using the access strategy. The width of
// the access is the size of T.
func Write[T Width](a Access, mem []uint8, off uint32, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		a.WriteB(mem, off, uint8(v))
	case 2:
		a.WriteW(mem, off, uint16(v))
	case 4:
		a.WriteD(mem, off, uint32(v))
	default:
		a.WriteQ(mem, off, uint64(v))
	}
}

// LoadIntelWord returns the little-endian word at the start of b.
func LoadIntelWord(b []uint8) uint16 {
	return Bytes.ReadW(b, 0)
}

// StoreIntelWord stores v as a little-endian word at the start of b.
func StoreIntelWord(b []uint8, v uint16) {
	Bytes.WriteW(b, 0, v)
}

// LoadIntelDword returns the little-endian double word at the start of b.
func LoadIntelDword(b []uint8) uint32 {
	return Bytes.ReadD(b, 0)
}

// StoreIntelDword stores v as a little-endian double word at the start of b.
func StoreIntelDword(b []uint8, v uint32) {
	Bytes.WriteD(b, 0, v)
}
