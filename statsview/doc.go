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

// Package statsview runs a local HTTP server showing runtime statistics for
// the monitor. It is only available when built with the statsview build tag:
//
//	go build -tags statsview
//
// The charts are then available at localhost:12686/debug/statsview and the
// standard pprof pages at localhost:12686/debug/pprof/.
//
// Without the build tag Launch() does nothing and Available() returns false.
package statsview
