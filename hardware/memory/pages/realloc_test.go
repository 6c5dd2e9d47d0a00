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

package pages_test

import (
	"testing"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher86/hardware/memory/pages"
	"github.com/jetsetilly/gopher86/test"
)

// ram is a flat memory that implements the bus.Mover interface
type ram []uint8

func (r ram) MovePages(dst addresses.PhysPt, src addresses.PhysPt, size uint32) {
	copy(r[dst:dst+addresses.PhysPt(size)], r[src:src+addresses.PhysPt(size)])
}

func (r ram) fill(page int, v uint8) {
	o := memorymap.PageOrigin(page)
	for i := uint32(0); i < memorymap.PageSize; i++ {
		r[o+i] = v + uint8(i)
	}
}

func (r ram) holds(page int, v uint8) bool {
	o := memorymap.PageOrigin(page)
	for i := uint32(0); i < memorymap.PageSize; i++ {
		if r[o+i] != v+uint8(i) {
			return false
		}
	}
	return true
}

func TestReAllocate(t *testing.T) {
	mem := make(ram, 16*memorymap.PageSize)
	al, err := pages.NewAllocator(nil, 16, 0, mem, nil)
	test.DemandSuccess(t, err)

	h := al.AllocatePages(2, true)
	blocker := al.AllocatePages(1, true)
	test.ExpectEquality(t, pages.Page(h), 0)
	test.ExpectEquality(t, pages.Page(blocker), 2)
	mem.fill(0, 0x10)
	mem.fill(1, 0x20)

	// the page after the chain is in use so the chain must move
	test.ExpectSuccess(t, al.ReAllocatePages(&h, 4, true))
	test.ExpectEquality(t, pages.Page(h), 3)
	test.ExpectEquality(t, al.AllocatedPages(h), 4)
	test.ExpectSuccess(t, mem.holds(3, 0x10))
	test.ExpectSuccess(t, mem.holds(4, 0x20))
	test.ExpectEquality(t, al.FreeLargest(), 9)
	test.ExpectEquality(t, al.FreeTotal(), 11)

	// shrink
	test.ExpectSuccess(t, al.ReAllocatePages(&h, 1, true))
	test.ExpectEquality(t, pages.Page(h), 3)
	test.ExpectEquality(t, al.AllocatedPages(h), 1)
	test.ExpectEquality(t, al.FreeTotal(), 14)

	// grow in place
	test.ExpectSuccess(t, al.ReAllocatePages(&h, 2, true))
	test.ExpectEquality(t, pages.Page(h), 3)
	test.ExpectEquality(t, al.Chain(h)[1], 4)
	test.ExpectSuccess(t, mem.holds(3, 0x10))

	// non-contiguous growth links new pages to the end of the chain
	test.ExpectSuccess(t, al.ReAllocatePages(&h, 5, false))
	test.ExpectEquality(t, pages.Page(h), 3)
	c := al.Chain(h)
	test.ExpectEquality(t, len(c), 5)
	test.ExpectEquality(t, c[2], 0)
	test.ExpectEquality(t, c[3], 1)
	test.ExpectEquality(t, c[4], 5)
	test.ExpectSuccess(t, al.Check())

	// growth that cannot be satisfied leaves the chain untouched
	before := h
	err = al.ReAllocatePages(&h, 100, true)
	test.ExpectSuccess(t, curated.Is(err, pages.Exhausted))
	test.ExpectEquality(t, h, before)
	test.ExpectEquality(t, al.AllocatedPages(h), 5)
	test.ExpectSuccess(t, mem.holds(3, 0x10))

	// a handle that is not the start of a chain
	nh := al.NextHandle(h)
	test.ExpectSuccess(t, curated.Is(al.ReAllocatePages(&nh, 1, false), pages.BadHandle))

	// reallocating an invalid handle allocates
	var n pages.MemHandle
	test.ExpectSuccess(t, al.ReAllocatePages(&n, 2, true))
	test.ExpectInequality(t, n, pages.InvalidHandle)
	test.ExpectEquality(t, al.AllocatedPages(n), 2)

	// reallocating to zero releases
	free := al.FreeTotal()
	test.ExpectSuccess(t, al.ReAllocatePages(&n, 0, true))
	test.ExpectEquality(t, n, pages.InvalidHandle)
	test.ExpectEquality(t, al.FreeTotal(), free+2)
	test.ExpectSuccess(t, al.ReAllocatePages(&n, 0, true))
	test.ExpectEquality(t, n, pages.InvalidHandle)

	test.ExpectSuccess(t, al.Check())
}

func TestReAllocatePrefix(t *testing.T) {
	mem := make(ram, 32*memorymap.PageSize)
	al, err := pages.NewAllocator(nil, 32, 0, mem, nil)
	test.DemandSuccess(t, err)

	h := al.AllocatePages(4, true)
	for i, p := range al.Chain(h) {
		mem.fill(p, uint8(i*0x40))
	}

	test.ExpectSuccess(t, al.ReAllocatePages(&h, 2, true))

	// occupy the pages after the chain so that growth relocates
	other := al.AllocatePages(8, true)
	test.ExpectEquality(t, pages.Page(other), pages.Page(h)+2)

	test.ExpectSuccess(t, al.ReAllocatePages(&h, 4, true))
	test.ExpectEquality(t, al.AllocatedPages(h), 4)
	c := al.Chain(h)
	test.ExpectSuccess(t, mem.holds(c[0], 0x00))
	test.ExpectSuccess(t, mem.holds(c[1], 0x40))
	for i := 1; i < len(c); i++ {
		test.ExpectEquality(t, c[i], c[i-1]+1)
	}
}
