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

// Package a20 emulates the gate on address line 20.
//
// With the gate disabled the CPU cannot drive A20 high, so addresses
// beyond the first megabyte wrap round to the start of memory in the same
// way as they did on the 8086. With the gate enabled every address reaches
// the memory it names.
//
// The state of the gate can be changed from any goroutine. Reading the state
// never blocks.
package a20
