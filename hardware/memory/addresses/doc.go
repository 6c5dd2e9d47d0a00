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

// Package addresses defines the address types used throughout the memory
// subsystem and the arithmetic for converting between them.
//
// A PhysPt is an offset into guest physical memory. A RealPt is a real-mode
// far pointer, packed as the segment in the high word and the offset in the
// low word. Converting a RealPt to a physical address is done with
// (segment<<4)+offset and is not clamped. Software written for the 8086
// depends on this wrapping behaviour.
//
// PhysToReal416 is a lossy conversion and is not the inverse of Real2Phys.
package addresses
