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
	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher86/logger"
)

// usable returns true if the page can be used by a new allocation.
func (al *Allocator) usable(p int, friendly bool) bool {
	if p >= len(al.table) || al.table[p].allocated {
		return false
	}
	return !friendly || !al.alias.Aliased(p)
}

// bestMatch returns the first page of the free run that best fits size pages.
// returns -1 if there is no run long enough
func (al *Allocator) bestMatch(size int, friendly bool) int {
	first := -1
	best := -1
	bestSize := len(al.table) + 1

	// the loop runs one past the end of the table so that a run reaching the
	// end of memory is terminated
	for p := 0; p <= len(al.table); p++ {
		if al.usable(p, friendly) {
			if first == -1 {
				first = p
			}
			continue
		}

		if first == -1 {
			continue
		}

		run := p - first
		if run == size {
			return first
		}
		if run > size && run < bestSize {
			best = first
			bestSize = run
		}
		first = -1
	}

	return best
}

// link page p onto the end of a chain. tail is InvalidHandle for a new chain
func (al *Allocator) link(tail MemHandle, p int) MemHandle {
	h := handleOf(p)
	al.table[p] = entry{allocated: true, next: endOfChain}
	if tail == InvalidHandle {
		al.table[p].head = true
	} else {
		al.table[tail.page()].next = h
	}
	return h
}

// free every page in the chain starting at h
func (al *Allocator) free(h MemHandle) {
	for h > 0 {
		e := &al.table[h.page()]
		h = e.next
		*e = entry{}
	}
}

// AllocatePages allocates count pages and returns the handle of the new
// chain. If contiguous is true the pages are consecutive. Returns
// InvalidHandle if the allocation cannot be satisfied.
func (al *Allocator) AllocatePages(count int, contiguous bool) MemHandle {
	al.crit.Lock()
	defer al.crit.Unlock()
	return al.allocate(count, contiguous, false)
}

// AllocatePagesA20Friendly is like AllocatePages() except that no page in an
// odd megabyte is used. The pages of the allocation are therefore reached in
// the same way whatever the state of the A20 gate.
func (al *Allocator) AllocatePagesA20Friendly(count int, contiguous bool) MemHandle {
	al.crit.Lock()
	defer al.crit.Unlock()
	return al.allocate(count, contiguous, true)
}

func (al *Allocator) allocate(count int, contiguous bool, friendly bool) MemHandle {
	if count <= 0 || count > al.freeTotal() {
		logger.Logf(al.perm, "pages", "cannot allocate %d pages", count)
		return InvalidHandle
	}

	var head, tail MemHandle

	if contiguous {
		p := al.bestMatch(count, friendly)
		if p == -1 {
			logger.Logf(al.perm, "pages", "no run of %d free pages", count)
			return InvalidHandle
		}
		for i := range count {
			tail = al.link(tail, p+i)
			if i == 0 {
				head = tail
			}
		}
		return head
	}

	for count > 0 {
		p := al.bestMatch(1, friendly)
		if p == -1 {
			// only possible for the friendly variant, which can run out of
			// suitable pages before the free pages are exhausted
			al.free(head)
			logger.Logf(al.perm, "pages", "not enough unaliased pages")
			return InvalidHandle
		}
		for ; count > 0 && al.usable(p, friendly); p++ {
			tail = al.link(tail, p)
			if head == InvalidHandle {
				head = tail
			}
			count--
		}
	}

	return head
}

// AllocatePage allocates a single page and returns its physical address.
func (al *Allocator) AllocatePage() (addresses.PhysPt, error) {
	al.crit.Lock()
	defer al.crit.Unlock()
	h := al.allocate(1, false, false)
	if h == InvalidHandle {
		return 0, curated.Errorf(Exhausted, 1)
	}
	return PageAddress(h), nil
}

// checkHead returns an error if the handle cannot be released or reallocated
func (al *Allocator) checkHead(h MemHandle) error {
	if !al.isHead(h) {
		return curated.Errorf(BadHandle, h)
	}
	if h == al.reserved {
		return curated.Errorf(Reserved, h)
	}
	return nil
}

// ReleasePages returns every page in the chain to the free pages. The
// handle is no longer valid after a successful release.
func (al *Allocator) ReleasePages(h MemHandle) error {
	al.crit.Lock()
	defer al.crit.Unlock()

	if err := al.checkHead(h); err != nil {
		logger.Log(al.perm, "pages", err)
		return err
	}
	al.free(h)
	return nil
}

// ReAllocatePages changes the number of pages in the chain. The handle is
// updated if the chain has to move. The contents of the pages common to the
// old and new chains are preserved.
//
// A handle of InvalidHandle results in a new allocation. A count of zero
// releases the chain and sets the handle to InvalidHandle.
//
// On error the handle and the chain are unchanged.
func (al *Allocator) ReAllocatePages(h *MemHandle, count int, contiguous bool) error {
	al.crit.Lock()
	defer al.crit.Unlock()

	if count < 0 {
		return curated.Errorf(Exhausted, count)
	}

	if *h == InvalidHandle {
		if count == 0 {
			return nil
		}
		n := al.allocate(count, contiguous, false)
		if n == InvalidHandle {
			return curated.Errorf(Exhausted, count)
		}
		*h = n
		return nil
	}

	if err := al.checkHead(*h); err != nil {
		logger.Log(al.perm, "pages", err)
		return err
	}

	if count == 0 {
		al.free(*h)
		*h = InvalidHandle
		return nil
	}

	c := al.chain(*h)
	if count == len(c) {
		return nil
	}

	// shrink
	if count < len(c) {
		last := &al.table[c[count-1]]
		al.free(last.next)
		last.next = endOfChain
		return nil
	}

	need := count - len(c)
	last := c[len(c)-1]

	if !contiguous {
		n := al.allocate(need, false, false)
		if n == InvalidHandle {
			return curated.Errorf(Exhausted, count)
		}
		al.table[n.page()].head = false
		al.table[last].next = n
		return nil
	}

	// grow in place if the chain is a single run and the pages that follow
	// it are free
	inPlace := last-c[0] == len(c)-1
	for p := last + 1; inPlace && p <= last+need; p++ {
		inPlace = al.usable(p, false)
	}
	if inPlace {
		tail := handleOf(last)
		for p := last + 1; p <= last+need; p++ {
			tail = al.link(tail, p)
		}
		return nil
	}

	n := al.allocate(count, true, false)
	if n == InvalidHandle {
		return curated.Errorf(Exhausted, count)
	}

	if al.mover != nil {
		for i, p := range c {
			al.mover.MovePages(PageAddress(n)+addresses.PhysPt(i*memorymap.PageSize),
				addresses.PhysPt(memorymap.PageOrigin(p)), memorymap.PageSize)
		}
	}

	al.free(*h)
	*h = n

	return nil
}
