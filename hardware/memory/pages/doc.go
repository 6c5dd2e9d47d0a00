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

// Package pages implements the allocator for 4KiB pages of guest physical
// memory. It is used by the XMS and EMS emulation to hand out memory to the
// guest.
//
// An allocation is a chain of pages identified by a MemHandle. The pages of
// a chain need not be consecutive unless the allocation asks for them to be.
// The handle of a chain is the handle of its first page and the value of a
// handle should be treated as opaque by the caller. The value InvalidHandle
// is never a valid handle and is returned when an allocation fails.
//
// Running out of memory is a normal condition. The Allocate functions
// return InvalidHandle when there are not enough free pages and the guest
// is told that no memory is available. Functions that take a handle return
// an error if the handle is stale or was never allocated. Those errors can
// be tested for with curated.Is() and the patterns in errors.go.
//
// Placement is best-fit. A free run of exactly the requested length is
// preferred, otherwise the smallest run that is large enough is used.
//
// Pages below the configured reservation are held by a chain that is
// created when the allocator is reset. This chain can be found with
// ReservedHandle() but it cannot be released or reallocated.
//
// All functions are safe to call from any goroutine.
package pages
