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

// Package modalflag is a wrapper for the flag package in the standard
// library. It adds the concept of modes, so that a single program can be run
// in different ways with a different set of flags for each way.
//
// A mode is the first argument that is not a flag. Flags before the mode
// belong to the parent mode and flags after it belong to the new mode:
//
//	gopher86 -log SCRIPT -echo test.lua
//
// The first sub-mode added with AddSubModes() is the default and is
// selected when no mode is given on the command line. Mode names are not
// case sensitive.
//
// Help is requested with the -help or -h flag. The help message lists the
// flags of the current mode and the sub-modes that are available.
package modalflag
