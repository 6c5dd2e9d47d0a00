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

// Package host provides the primitive access to the host memory that backs
// the guest's physical memory. Guest values are always stored little-endian,
// whatever the byte order of the host.
//
// There are two strategies that implement the Access interface. Bytes
// assembles every value one byte at a time and is correct on any host and at
// any alignment. Direct reads and writes the value in a single operation and
// converts between host and guest byte order if required. It is only safe on
// hosts that tolerate unaligned access.
//
// Default is chosen at build time from the target architecture. Select() can
// be used to override the choice at run time.
//
// No function in this package checks bounds beyond the checks made by the Go
// runtime itself.
package host
