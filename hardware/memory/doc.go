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

// Package memory implements the guest physical memory of the emulated PC.
//
// The Memory type owns the host slice that backs guest memory along with the
// page allocator and the A20 gate. It is created once with NewMemory() and
// the backing slice is never reallocated.
//
// There are three ways of accessing guest memory:
//
//	Phys*	unchecked access to plain RAM
//	Read*	paged access, honouring the A20 gate and page handlers
//	Real*	paged access with a segment and offset
//
// The Phys functions are the fastest and should only be used when the caller
// knows the address is plain RAM and inside guest memory. An address outside
// of guest memory will cause a run time panic.
//
// The paged functions apply the A20 gate before anything else. The page
// containing the resulting address is then looked up. Pages with a handler
// (see MapHandler()) are accessed one byte at a time through the handler.
// Pages outside of guest memory read as the unmapped value (0xff by default)
// and writes to them are dropped. All other pages are plain RAM.
//
// A multi-byte access that crosses a page boundary, or which touches a page
// with a handler, is split into byte accesses. The value is always composed
// in little-endian order.
//
//	                    CPU
//	                     |
//	      ---------------+---------------
//	     |               |               |
//	   Phys*           Read*           Real*
//	     |               |               |
//	     |           A20 gate  <---------
//	     |               |
//	     |         page handlers ---- ROM / IO
//	     |               |
//	      -------> host access strategy
//	                     |
//	                    RAM
//
// The bulk transfer functions (Block*, Str*, MemCpy) are built on the paged
// functions and are correct across page boundaries and chains.
package memory
