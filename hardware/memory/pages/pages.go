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

package pages

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/bus"
	"github.com/jetsetilly/gopher86/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher86/logger"
)

// MemHandle identifies a chain of pages.
type MemHandle int32

// InvalidHandle is returned by failed allocations and by NextHandle() at the
// end of a chain.
const InvalidHandle MemHandle = 0

// marks the last page of a chain
const endOfChain MemHandle = -1

// the handle for page p is p+1 so that page zero has a handle that is
// distinct from InvalidHandle

func handleOf(page int) MemHandle {
	return MemHandle(page + 1)
}

func (h MemHandle) page() int {
	return int(h) - 1
}

// entry in the page table. a free page has a next value of InvalidHandle
type entry struct {
	allocated bool
	head      bool
	next      MemHandle
}

// Allocator is the page allocator. It should be initialised with NewAllocator().
type Allocator struct {
	crit sync.Mutex
	perm logger.Permission

	table    []entry
	reserve  int
	reserved MemHandle

	mover bus.Mover
	alias bus.AliasChecker
}

type defaultAlias struct{}

func (defaultAlias) Aliased(page int) bool {
	return memorymap.Aliased(page)
}

// NewAllocator is the preferred method of initialisation for the Allocator
// type. The first reserve pages are held by the reserved chain.
//
// The mover is used to copy the contents of a chain when ReAllocatePages()
// has to move it. If mover is nil then the contents are not copied. If alias
// is nil the allocator uses the fixed A20 aliasing rule of the PC.
func NewAllocator(perm logger.Permission, total int, reserve int, mover bus.Mover, alias bus.AliasChecker) (*Allocator, error) {
	if total < 0 || reserve < 0 || reserve > total {
		return nil, curated.Errorf(BadGeometry, reserve, total)
	}

	if alias == nil {
		alias = defaultAlias{}
	}

	al := &Allocator{
		perm:    perm,
		table:   make([]entry, total),
		reserve: reserve,
		mover:   mover,
		alias:   alias,
	}
	al.reset()

	return al, nil
}

func (al *Allocator) String() string {
	al.crit.Lock()
	defer al.crit.Unlock()
	return fmt.Sprintf("%d pages: %d free: %d largest", len(al.table), al.freeTotal(), al.freeLargest())
}

// Reset frees every page except for the reserved pages.
func (al *Allocator) Reset() {
	al.crit.Lock()
	defer al.crit.Unlock()
	al.reset()
}

func (al *Allocator) reset() {
	clear(al.table)
	al.reserved = InvalidHandle
	if al.reserve > 0 {
		for p := 0; p < al.reserve; p++ {
			al.table[p] = entry{allocated: true, next: handleOf(p + 1)}
		}
		al.table[0].head = true
		al.table[al.reserve-1].next = endOfChain
		al.reserved = handleOf(0)
	}
}

// ReservedHandle returns the handle of the chain that holds the reserved
// pages. Returns InvalidHandle if there is no reservation.
func (al *Allocator) ReservedHandle() MemHandle {
	al.crit.Lock()
	defer al.crit.Unlock()
	return al.reserved
}

// TotalPages returns the number of pages in the page table.
func (al *Allocator) TotalPages() int {
	return len(al.table)
}

// FreeTotal returns the number of free pages.
func (al *Allocator) FreeTotal() int {
	al.crit.Lock()
	defer al.crit.Unlock()
	return al.freeTotal()
}

func (al *Allocator) freeTotal() int {
	var n int
	for _, e := range al.table {
		if !e.allocated {
			n++
		}
	}
	return n
}

// FreeLargest returns the length of the longest run of consecutive free pages.
func (al *Allocator) FreeLargest() int {
	al.crit.Lock()
	defer al.crit.Unlock()
	return al.freeLargest()
}

func (al *Allocator) freeLargest() int {
	var largest, run int
	for _, e := range al.table {
		if e.allocated {
			run = 0
			continue
		}
		run++
		largest = max(largest, run)
	}
	return largest
}

// GetNextFreePage returns the page that would be chosen for a single page
// allocation. The page is not allocated. The boolean is false if there are
// no free pages.
func (al *Allocator) GetNextFreePage() (int, bool) {
	al.crit.Lock()
	defer al.crit.Unlock()
	p := al.bestMatch(1, false)
	return p, p >= 0
}

// valid returns true if the handle refers to an allocated page.
func (al *Allocator) valid(h MemHandle) bool {
	return h > 0 && int(h) <= len(al.table) && al.table[h.page()].allocated
}

// isHead returns true if the handle is the first page of a chain.
func (al *Allocator) isHead(h MemHandle) bool {
	return al.valid(h) && al.table[h.page()].head
}

// AllocatedPages returns the number of pages in the chain starting at the
// handle. The handle can be any page in a chain. Returns zero if the handle
// does not refer to an allocated page.
func (al *Allocator) AllocatedPages(h MemHandle) int {
	al.crit.Lock()
	defer al.crit.Unlock()
	return al.chainLength(h)
}

func (al *Allocator) chainLength(h MemHandle) int {
	if !al.valid(h) {
		return 0
	}
	var n int
	for h > 0 {
		n++
		h = al.table[h.page()].next
	}
	return n
}

// NextHandle returns the handle of the next page in the chain. Returns
// InvalidHandle at the end of the chain or if the handle is not allocated.
func (al *Allocator) NextHandle(h MemHandle) MemHandle {
	al.crit.Lock()
	defer al.crit.Unlock()
	return al.nextHandle(h)
}

func (al *Allocator) nextHandle(h MemHandle) MemHandle {
	if !al.valid(h) {
		return InvalidHandle
	}
	n := al.table[h.page()].next
	if n == endOfChain {
		return InvalidHandle
	}
	return n
}

// NextHandleAt returns the handle that is where pages further along the chain.
// Returns InvalidHandle if the chain is not long enough.
func (al *Allocator) NextHandleAt(h MemHandle, where int) MemHandle {
	al.crit.Lock()
	defer al.crit.Unlock()
	if !al.valid(h) {
		return InvalidHandle
	}
	for ; where > 0 && h != InvalidHandle; where-- {
		h = al.nextHandle(h)
	}
	return h
}

// Handles returns the handles of every chain, including the reserved chain,
// in page order.
func (al *Allocator) Handles() []MemHandle {
	al.crit.Lock()
	defer al.crit.Unlock()
	var hs []MemHandle
	for p, e := range al.table {
		if e.allocated && e.head {
			hs = append(hs, handleOf(p))
		}
	}
	return hs
}

// Chain returns the page indexes of the chain starting at the handle.
func (al *Allocator) Chain(h MemHandle) []int {
	al.crit.Lock()
	defer al.crit.Unlock()
	return al.chain(h)
}

func (al *Allocator) chain(h MemHandle) []int {
	if !al.valid(h) {
		return nil
	}
	var c []int
	for h > 0 {
		c = append(c, h.page())
		h = al.table[h.page()].next
	}
	return c
}

// PageAddress returns the physical address of the page the handle refers to.
func PageAddress(h MemHandle) addresses.PhysPt {
	return addresses.PhysPt(memorymap.PageOrigin(h.page()))
}

// Page returns the index of the page the handle refers to.
func Page(h MemHandle) int {
	return h.page()
}

// Handle returns the handle for the page containing the physical address.
// Returns InvalidHandle if the address is outside of the page table. The
// page need not be allocated.
func (al *Allocator) Handle(addr addresses.PhysPt) MemHandle {
	p := memorymap.Page(uint32(addr))
	if p >= len(al.table) {
		return InvalidHandle
	}
	return handleOf(p)
}
