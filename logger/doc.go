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

// Package logger is the central log for Gopher86. Log entries are tagged and
// repeated entries are folded into a single entry with a repeat count.
//
// The package level functions operate on the central logger. Additional
// Logger instances can be created with NewLogger() but this is really only
// useful for testing.
//
// Every log request is accompanied by a Permission. The Allow value should be
// used when there is no other source of permission. The environment package
// provides an implementation of Permission that prevents emulation instances
// other than the main emulation from logging.
package logger
