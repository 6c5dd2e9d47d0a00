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

package a20_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher86/hardware/memory/a20"
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/test"
)

func TestWrap(t *testing.T) {
	g := a20.NewGate(nil, false)
	test.ExpectFailure(t, g.Enabled())
	test.ExpectEquality(t, g.Wrap(0x100000), addresses.PhysPt(0x000000))
	test.ExpectEquality(t, g.Wrap(0x10ffef), addresses.PhysPt(0x00ffef))
	test.ExpectEquality(t, g.Wrap(0x200010), addresses.PhysPt(0x200010))
	test.ExpectEquality(t, g.Wrap(0x312345), addresses.PhysPt(0x212345))

	g.Enable(true)
	test.ExpectSuccess(t, g.Enabled())
	test.ExpectEquality(t, g.Wrap(0x100000), addresses.PhysPt(0x100000))
	test.ExpectEquality(t, g.Wrap(0x312345), addresses.PhysPt(0x312345))
}

func TestMatch(t *testing.T) {
	var g a20.Gate
	test.ExpectEquality(t, g.Match(0x100010, 0x000000), uint32(0x000010))
	test.ExpectEquality(t, g.Match(0x000010, 0x100000), uint32(0x100010))
	g.Enable(true)
	test.ExpectEquality(t, g.Match(0x100010, 0x000000), uint32(0x100010))
	test.ExpectEquality(t, g.Match(0x000010, 0x100000), uint32(0x000010))
}

func TestAliased(t *testing.T) {
	g := a20.NewGate(nil, true)
	test.ExpectFailure(t, g.Aliased(0x0ff))
	test.ExpectSuccess(t, g.Aliased(0x100))
	g.Enable(false)
	test.ExpectSuccess(t, g.Aliased(0x100))
}

func TestLogging(t *testing.T) {
	logger.Clear()
	g := a20.NewGate(logger.Allow, false)
	g.Enable(true)
	g.Enable(true)
	g.Enable(false)

	w := &bytes.Buffer{}
	logger.Write(w)
	test.ExpectEquality(t, strings.Count(w.String(), "a20:"), 2)
	test.ExpectSuccess(t, strings.Contains(w.String(), "A20 enabled"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "A20 disabled"))
}
