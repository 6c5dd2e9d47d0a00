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

// Package script runs Lua scripts against guest memory. Scripts are run by a
// Runner, which exposes the following functions to the script:
//
//	peekb(addr)             read byte from the paged layer
//	peekw(addr)             read word
//	peekd(addr)             read dword
//	pokeb(addr, v)          write byte
//	pokew(addr, v)          write word
//	poked(addr, v)          write dword
//	alloc(count [, contiguous [, friendly]])
//	                        allocate pages. returns handle or nil, message
//	free(handle)            release pages. returns true or nil, message
//	realloc(handle, count [, contiguous])
//	                        reallocate pages. returns handle or nil, message
//	pageaddr(handle)        physical address of the page for a handle
//	freetotal()             number of free pages
//	freelargest()           length of the longest run of free pages
//	a20([enable])           set and/or return the state of the A20 gate
//
// The print function of the Lua base library is redirected to the output
// of the Runner.
package script
