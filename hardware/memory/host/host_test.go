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

package host_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/memory/host"
	"github.com/jetsetilly/gopher86/test"
)

var strategies = []host.Access{host.Bytes, host.Direct}

func TestEndianness(t *testing.T) {
	for _, a := range strategies {
		mem := make([]uint8, 16)
		a.WriteD(mem, 3, 0x12345678)
		test.ExpectEquality(t, mem[3], uint8(0x78), a)
		test.ExpectEquality(t, mem[4], uint8(0x56), a)
		test.ExpectEquality(t, mem[5], uint8(0x34), a)
		test.ExpectEquality(t, mem[6], uint8(0x12), a)

		a.WriteW(mem, 9, 0xabcd)
		test.ExpectEquality(t, mem[9], uint8(0xcd), a)
		test.ExpectEquality(t, mem[10], uint8(0xab), a)

		a.WriteQ(mem, 0, 0x0102030405060708)
		test.ExpectEquality(t, mem[0], uint8(0x08), a)
		test.ExpectEquality(t, mem[7], uint8(0x01), a)
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	for _, a := range strategies {
		mem := make([]uint8, 64)
		for off := uint32(0); off < 56; off++ {
			b := uint8(rnd.Uint32())
			a.WriteB(mem, off, b)
			test.ExpectEquality(t, a.ReadB(mem, off), b, a, off)

			w := uint16(rnd.Uint32())
			a.WriteW(mem, off, w)
			test.ExpectEquality(t, a.ReadW(mem, off), w, a, off)

			d := rnd.Uint32()
			a.WriteD(mem, off, d)
			test.ExpectEquality(t, a.ReadD(mem, off), d, a, off)

			q := rnd.Uint64()
			a.WriteQ(mem, off, q)
			test.ExpectEquality(t, a.ReadQ(mem, off), q, a, off)
		}
	}
}

func TestAgreement(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	memB := make([]uint8, 4096)
	memD := make([]uint8, 4096)

	for i := 0; i < 10000; i++ {
		off := uint32(rnd.Intn(len(memB) - 8))
		v := rnd.Uint64()
		switch rnd.Intn(4) {
		case 0:
			host.Bytes.WriteB(memB, off, uint8(v))
			host.Direct.WriteB(memD, off, uint8(v))
		case 1:
			host.Bytes.WriteW(memB, off, uint16(v))
			host.Direct.WriteW(memD, off, uint16(v))
		case 2:
			host.Bytes.WriteD(memB, off, uint32(v))
			host.Direct.WriteD(memD, off, uint32(v))
		case 3:
			host.Bytes.WriteQ(memB, off, v)
			host.Direct.WriteQ(memD, off, v)
		}
	}
	test.ExpectSuccess(t, bytes.Equal(memB, memD))

	for off := uint32(0); off < uint32(len(memB)-8); off += 7 {
		test.ExpectEquality(t, host.Direct.ReadD(memB, off), host.Bytes.ReadD(memD, off), off)
		test.ExpectEquality(t, host.Direct.ReadQ(memB, off), host.Bytes.ReadQ(memD, off), off)
	}
}

func TestGeneric(t *testing.T) {
	mem := make([]uint8, 16)
	host.Write(host.Bytes, mem, 1, uint16(0x1234))
	host.Write(host.Bytes, mem, 4, uint32(0xdeadbeef))
	host.Write(host.Bytes, mem, 8, uint64(0x1122334455667788))
	host.Write(host.Bytes, mem, 0, uint8(0x99))

	test.ExpectEquality(t, host.Read[uint8](host.Direct, mem, 0), uint8(0x99))
	test.ExpectEquality(t, host.Read[uint16](host.Direct, mem, 1), uint16(0x1234))
	test.ExpectEquality(t, host.Read[uint32](host.Direct, mem, 4), uint32(0xdeadbeef))
	test.ExpectEquality(t, host.Read[uint64](host.Direct, mem, 8), uint64(0x1122334455667788))

	test.ExpectEquality(t, host.LoadIntelWord(mem[1:]), uint16(0x1234))
	host.StoreIntelWord(mem[2:], 0xfffe)
	test.ExpectEquality(t, mem[2], uint8(0xfe))
	test.ExpectEquality(t, host.LoadIntelDword(mem[4:]), uint32(0xdeadbeef))
	host.StoreIntelDword(mem[12:], 0x01020304)
	test.ExpectEquality(t, mem[15], uint8(0x01))
}

func TestSelect(t *testing.T) {
	a, err := host.Select("auto")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, host.Default)

	a, err = host.Select("BYTES")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a.String(), host.AccessBytes)

	a, err = host.Select(" direct ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a.String(), host.AccessDirect)

	_, err = host.Select("fastest")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, host.UnknownAccess))
}
