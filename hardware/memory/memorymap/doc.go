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

// Package memorymap describes the layout of the PC physical address space as
// seen by the memory subsystem. It contains no logic beyond simple address
// and page arithmetic.
//
// The physical address space is divided into 4KiB pages. The first megabyte
// is the real-mode address space:
//
//	0x00000 - 0x003ff	interrupt vector table
//	0x00400 - 0x9ffff	conventional memory (including the BIOS data area)
//	0xa0000 - 0xbffff	video memory
//	0xc0000 - 0xeffff	adapter ROMs and upper memory blocks
//	0xf0000 - 0xfffff	system BIOS
//
// The 64KiB (less 16 bytes) above the first megabyte is the high memory area
// (HMA). It is reachable from real mode only when the A20 gate is enabled.
// When the gate is disabled bit 20 of every address is forced low and the
// second megabyte aliases the first, the third aliases the second, and so on.
//
// Extended memory starts at XMSStart. Pages below XMSStart are not normally
// available to the page allocator.
package memorymap
