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

package memorymap

// Page geometry.
const (
	PageSize  = 4096
	PageShift = 12
	PageMask  = PageSize - 1
)

// Real-mode areas.
const (
	OriginIVT    = 0x00000
	MemtopIVT    = 0x003ff
	OriginVideo  = 0xa0000
	OriginUMA    = 0xc0000
	OriginBIOS   = 0xf0000
	MemtopBIOS   = 0xfffff
	RealModeTop  = 0x100000
	OriginHMA    = 0x100000
	MemtopHMA    = 0x10ffef
	VectorLength = 4
	NumVectors   = 256
)

// A20Bit is the address line that is controlled by the A20 gate.
const A20Bit = 1 << 20

// A20PageBit is the bit in a page index that corresponds to A20Bit.
const A20PageBit = A20Bit >> PageShift

// XMSStart is the first page of extended memory beyond the HMA. Pages below
// this are the conventional memory, upper memory area and HMA.
const XMSStart = (OriginHMA + 0x10000) >> PageShift

// Page returns the page index of the address.
func Page(addr uint32) int {
	return int(addr >> PageShift)
}

// PageOrigin returns the address of the first byte of the page.
func PageOrigin(page int) uint32 {
	return uint32(page) << PageShift
}

// PageOffset returns the offset of the address within its page.
func PageOffset(addr uint32) uint32 {
	return addr & PageMask
}

// Pages returns the number of pages required to hold size bytes.
func Pages(size int) int {
	return (size + PageSize - 1) / PageSize
}

// Aliased returns true if the page is in an odd-numbered megabyte. Such pages
// resolve to a different page when the A20 gate is disabled.
func Aliased(page int) bool {
	return page&A20PageBit == A20PageBit
}
