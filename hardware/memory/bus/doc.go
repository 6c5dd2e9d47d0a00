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

// Package bus defines the interfaces through which the parts of the memory
// subsystem talk to each other and to the rest of the emulator.
//
// The page allocator never touches guest memory directly. When it needs to
// relocate the contents of a chain it asks a Mover to do it, and when it
// needs to know whether a page aliases under the A20 gate it asks an
// AliasChecker. This keeps the allocator testable without a full memory
// instance.
package bus
