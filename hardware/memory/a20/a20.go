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

package a20

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher86/logger"
)

// Gate is the A20 gate. The zero value is a disabled gate that does not log.
type Gate struct {
	perm    logger.Permission
	enabled atomic.Bool
}

// NewGate is the preferred method of initialisation for the Gate type.
func NewGate(perm logger.Permission, enabled bool) *Gate {
	g := &Gate{perm: perm}
	g.enabled.Store(enabled)
	return g
}

func (g *Gate) String() string {
	if g.Enabled() {
		return "A20 enabled"
	}
	return "A20 disabled"
}

// Enabled returns true if the gate is enabled.
func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}

// Enable or disable the gate.
func (g *Gate) Enable(enable bool) {
	if g.enabled.Swap(enable) != enable {
		logger.Log(g.perm, "a20", g)
	}
}

// Wrap returns the address that is reached when addr is placed on the
// address bus.
func (g *Gate) Wrap(addr addresses.PhysPt) addresses.PhysPt {
	if g.enabled.Load() {
		return addr
	}
	return addr &^ memorymap.A20Bit
}

// Match returns addr with bit 20 taken from ref when the gate is disabled.
// The address is returned unchanged when the gate is enabled.
func (g *Gate) Match(addr uint32, ref uint32) uint32 {
	if g.enabled.Load() {
		return addr
	}
	return addr&^memorymap.A20Bit | ref&memorymap.A20Bit
}

// Aliased implements the bus.AliasChecker interface. The result does not
// depend on the current state of the gate.
func (g *Gate) Aliased(page int) bool {
	return memorymap.Aliased(page)
}
