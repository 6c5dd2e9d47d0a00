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

package monitor

import (
	"testing"

	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/test"
)

func TestTokeniseInput(t *testing.T) {
	tk := TokeniseInput("  peek   $f000   16 # comment")
	test.ExpectEquality(t, tk.String(), "peek   $f000   16")
	test.ExpectEquality(t, tk.Remaining(), 3)

	s, ok := tk.Get()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "peek")

	s, ok = tk.Peek()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, s, "0xf000")

	tk.Get()
	tk.Get()
	_, ok = tk.Get()
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, tk.Remaining(), 0)
}

func TestParseNumber(t *testing.T) {
	v, err := parseNumber("100", 32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(100))

	v, err = parseNumber("0x100", 32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(0x100))

	v, err = parseNumber("100h", 32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(0x100))

	_, err = parseNumber("0x100", 8)
	test.ExpectFailure(t, err)

	_, err = parseNumber("h", 32)
	test.ExpectFailure(t, err)
}

func TestParseAddress(t *testing.T) {
	a, err := parseAddress("f000:fff0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, addresses.PhysPt(0xffff0))

	// no clamping at the top of real-mode memory
	a, err = parseAddress("ffff:0010")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, addresses.PhysPt(0x100000))

	a, err = parseAddress("0x110000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, addresses.PhysPt(0x110000))

	_, err = parseAddress("f000:")
	test.ExpectFailure(t, err)

	r, err := parseRealPt("0040:001e")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, addresses.RealMake(0x40, 0x1e))

	_, err = parseRealPt("1234")
	test.ExpectFailure(t, err)
}
