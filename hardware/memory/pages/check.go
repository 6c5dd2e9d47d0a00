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

	"github.com/jetsetilly/gopher86/curated"
)

// Check the page table for consistency. Every allocated page must be on
// exactly one chain, every chain must start at a head page and end with the
// end of chain marker, and free pages must not be linked to anything.
func (al *Allocator) Check() error {
	al.crit.Lock()
	defer al.crit.Unlock()
	return check(al.table, al.reserve, al.reserved)
}

func check(table []entry, reserve int, reserved MemHandle) error {
	seen := make([]bool, len(table))

	for p, e := range table {
		if !e.allocated {
			if e.head || e.next != InvalidHandle {
				return curated.Errorf(Corrupt, fmt.Sprintf("free page %d is linked", p))
			}
			continue
		}

		if !e.head {
			continue
		}

		h := handleOf(p)
		for h != endOfChain {
			if h <= 0 || int(h) > len(table) {
				return curated.Errorf(Corrupt, fmt.Sprintf("chain %d links to %d", handleOf(p), h))
			}
			q := h.page()
			if !table[q].allocated {
				return curated.Errorf(Corrupt, fmt.Sprintf("chain %d includes free page %d", handleOf(p), q))
			}
			if seen[q] {
				return curated.Errorf(Corrupt, fmt.Sprintf("page %d is on more than one chain", q))
			}
			if q != p && table[q].head {
				return curated.Errorf(Corrupt, fmt.Sprintf("chain %d includes head page %d", handleOf(p), q))
			}
			seen[q] = true
			h = table[q].next
		}
	}

	for p, e := range table {
		if e.allocated && !seen[p] {
			return curated.Errorf(Corrupt, fmt.Sprintf("page %d is allocated but on no chain", p))
		}
	}

	// the reserved pages are a single chain covering the start of memory
	if reserve < 0 || reserve > len(table) {
		return curated.Errorf(Corrupt, fmt.Sprintf("reservation of %d pages", reserve))
	}
	if reserve == 0 {
		if reserved != InvalidHandle {
			return curated.Errorf(Corrupt, fmt.Sprintf("reserved chain %d without a reservation", reserved))
		}
	} else {
		if reserved != handleOf(0) || !table[0].head {
			return curated.Errorf(Corrupt, fmt.Sprintf("reserved chain %d is missing", reserved))
		}
		for p := 0; p < reserve; p++ {
			next := handleOf(p + 1)
			if p == reserve-1 {
				next = endOfChain
			}
			if !table[p].allocated || table[p].next != next {
				return curated.Errorf(Corrupt, fmt.Sprintf("reserved chain broken at page %d", p))
			}
		}
	}

	return nil
}
