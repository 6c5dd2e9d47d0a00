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

package bus

import "github.com/jetsetilly/gopher86/hardware/memory/addresses"

// PageHandler is implemented by anything that wants to intercept accesses to
// one or more pages of guest memory. The address passed to each function is
// the full physical address, after the A20 gate has been applied.
//
// Multi-byte accesses to a page with a handler are split into byte accesses,
// least significant byte first.
type PageHandler interface {
	ReadB(addr addresses.PhysPt) uint8
	WriteB(addr addresses.PhysPt, data uint8)
}

// DebuggerBus defines the meta-operations for guest memory. Unlike the normal
// access functions these report addresses that are outside of guest memory
// as an error.
type DebuggerBus interface {
	Peek(addr addresses.PhysPt) (uint8, error)
	Poke(addr addresses.PhysPt, data uint8) error
}

// Mover copies size bytes of guest memory from src to dst. The ranges will
// not overlap.
type Mover interface {
	MovePages(dst addresses.PhysPt, src addresses.PhysPt, size uint32)
}

// AliasChecker reports whether a page would resolve to a different page
// when the A20 gate is disabled.
type AliasChecker interface {
	Aliased(page int) bool
}
