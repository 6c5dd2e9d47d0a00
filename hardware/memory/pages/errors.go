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

package pages

// Error patterns returned by the allocator.
const (
	BadHandle   = "pages: invalid handle: %d"
	Exhausted   = "pages: not enough free pages: %d requested"
	Reserved    = "pages: handle %d is reserved"
	Corrupt     = "pages: page table corrupt: %v"
	BadGeometry = "pages: %d reserved pages in a table of %d pages"
)
