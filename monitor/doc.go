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

// Package monitor implements an interactive command line for inspecting and
// modifying guest memory. It is a test bench for the memory subsystem: pages
// can be allocated and released, the A20 gate toggled, and the state of
// memory saved, loaded and graphed.
//
// Commands are case insensitive. Numeric arguments are decimal by default
// and can be given in hex with a 0x or $ prefix, or an h suffix. Addresses
// can also be given in real-mode seg:off form, where both parts are hex.
//
// The monitor reads from and writes to an implementation of the
// terminal.Terminal interface.
package monitor
