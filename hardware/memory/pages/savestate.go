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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/memory/bus"
	"github.com/jetsetilly/gopher86/logger"
)

// Snapshot creates a copy of the allocator. The copy shares the mover and
// alias checker of the original.
func (al *Allocator) Snapshot() *Allocator {
	al.crit.Lock()
	defer al.crit.Unlock()
	return &Allocator{
		perm:     al.perm,
		table:    append([]entry(nil), al.table...),
		reserve:  al.reserve,
		reserved: al.reserved,
		mover:    al.mover,
		alias:    al.alias,
	}
}

// Attach the allocator to a new owner. Used after Snapshot() so that the copy
// moves pages in the copy of memory and not the original.
func (al *Allocator) Attach(perm logger.Permission, mover bus.Mover, alias bus.AliasChecker) {
	al.crit.Lock()
	defer al.crit.Unlock()
	al.perm = perm
	al.mover = mover
	if alias != nil {
		al.alias = alias
	}
}

// Plumb the state of a snapshot into the allocator. The snapshot must have
// come from an allocator with the same number of pages.
func (al *Allocator) Plumb(snapshot *Allocator) error {
	snapshot.crit.Lock()
	table := append([]entry(nil), snapshot.table...)
	reserve := snapshot.reserve
	reserved := snapshot.reserved
	snapshot.crit.Unlock()

	al.crit.Lock()
	defer al.crit.Unlock()

	if len(table) != len(al.table) {
		return curated.Errorf(Corrupt, fmt.Sprintf("snapshot has %d pages", len(table)))
	}
	al.table = table
	al.reserve = reserve
	al.reserved = reserved
	return nil
}

const (
	flagAllocated = 0x01
	flagHead      = 0x02
)

type header struct {
	Total    uint32
	Reserve  uint32
	Reserved int32
}

// Save writes the page table to w.
func (al *Allocator) Save(w io.Writer) error {
	al.crit.Lock()
	defer al.crit.Unlock()

	hdr := header{
		Total:    uint32(len(al.table)),
		Reserve:  uint32(al.reserve),
		Reserved: int32(al.reserved),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return curated.Errorf("pages: save: %v", err)
	}

	b := make([]uint8, 5*len(al.table))
	for p, e := range al.table {
		var f uint8
		if e.allocated {
			f |= flagAllocated
		}
		if e.head {
			f |= flagHead
		}
		b[p*5] = f
		binary.LittleEndian.PutUint32(b[p*5+1:], uint32(e.next))
	}
	if _, err := w.Write(b); err != nil {
		return curated.Errorf("pages: save: %v", err)
	}

	return nil
}

// Load reads a page table written by Save(). The number of pages must match
// the allocator. The allocator is unchanged if the loaded table is not
// consistent.
func (al *Allocator) Load(r io.Reader) error {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return curated.Errorf("pages: load: %v", err)
	}

	al.crit.Lock()
	defer al.crit.Unlock()

	if int(hdr.Total) != len(al.table) {
		return curated.Errorf(Corrupt, fmt.Sprintf("saved table has %d pages", hdr.Total))
	}

	b := make([]uint8, 5*len(al.table))
	if _, err := io.ReadFull(r, b); err != nil {
		return curated.Errorf("pages: load: %v", err)
	}

	table := make([]entry, len(al.table))
	for p := range table {
		f := b[p*5]
		table[p] = entry{
			allocated: f&flagAllocated == flagAllocated,
			head:      f&flagHead == flagHead,
			next:      MemHandle(int32(binary.LittleEndian.Uint32(b[p*5+1:]))),
		}
	}

	if hdr.Reserve > hdr.Total {
		return curated.Errorf(Corrupt, fmt.Sprintf("saved reservation of %d pages", hdr.Reserve))
	}

	if err := check(table, int(hdr.Reserve), MemHandle(hdr.Reserved)); err != nil {
		return curated.Errorf("pages: load: %v", err)
	}

	al.table = table
	al.reserve = int(hdr.Reserve)
	al.reserved = MemHandle(hdr.Reserved)

	return nil
}
