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

package memory

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/environment"
	"github.com/jetsetilly/gopher86/hardware/memory/a20"
	"github.com/jetsetilly/gopher86/hardware/memory/bus"
)

// SaveStateMismatch is the error pattern for a save-state that does not
// match the memory it is being loaded into.
const SaveStateMismatch = "memory: save-state mismatch: %s"

var saveStateMagic = [4]uint8{'G', '8', '6', 'M'}

const saveStateVersion = 1

type saveStateHeader struct {
	Magic   [4]uint8
	Version uint8
	A20     uint8
	Size    uint32
}

// Save writes guest memory, the A20 gate and the page table to w. Page
// handlers are not saved.
func (mem *Memory) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	hdr := saveStateHeader{
		Magic:   saveStateMagic,
		Version: saveStateVersion,
		Size:    mem.Size(),
	}
	if mem.A20.Enabled() {
		hdr.A20 = 1
	}

	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return curated.Errorf("memory: save: %v", err)
	}
	if _, err := bw.Write(mem.ram); err != nil {
		return curated.Errorf("memory: save: %v", err)
	}
	if err := mem.Pages.Save(bw); err != nil {
		return curated.Errorf("memory: save: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return curated.Errorf("memory: save: %v", err)
	}

	return nil
}

// Load reads a save-state written by Save(). The memory is unchanged if the
// save-state is not valid or is for a different size of memory.
func (mem *Memory) Load(r io.Reader) error {
	br := bufio.NewReader(r)

	var hdr saveStateHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return curated.Errorf("memory: load: %v", err)
	}
	if hdr.Magic != saveStateMagic {
		return curated.Errorf(SaveStateMismatch, "not a memory save-state")
	}
	if hdr.Version != saveStateVersion {
		return curated.Errorf(SaveStateMismatch, "unsupported version")
	}
	if hdr.Size != mem.Size() {
		return curated.Errorf(SaveStateMismatch, "memory size")
	}

	ram := make([]uint8, hdr.Size)
	if _, err := io.ReadFull(br, ram); err != nil {
		return curated.Errorf("memory: load: %v", err)
	}

	// the page table is validated before it is committed
	if err := mem.Pages.Load(br); err != nil {
		return curated.Errorf("memory: load: %v", err)
	}

	copy(mem.ram, ram)
	mem.A20.Enable(hdr.A20 == 1)

	return nil
}

// rebind returns a copy of the handler table for use by dst. ROM handlers
// that view the RAM of src are replaced by ROM handlers that view the RAM of
// dst. Other handlers are shared.
func rebind(handlers []bus.PageHandler, src *Memory, dst *Memory) []bus.PageHandler {
	n := make([]bus.PageHandler, len(handlers))
	for i, h := range handlers {
		if r, ok := h.(ROM); ok && r.mem == src {
			h = dst.ROM()
		}
		n[i] = h
	}
	return n
}

// Snapshot creates a copy of guest memory, the page handlers and the
// allocator. The copy does not log.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.env = mem.env.Derive(environment.SnapshotEmulation)
	n.ram = append([]uint8(nil), mem.ram...)
	n.handlers = rebind(mem.handlers, mem, &n)
	n.A20 = a20.NewGate(n.env, mem.A20.Enabled())
	n.Pages = mem.Pages.Snapshot()
	n.Pages.Attach(n.env, &n, n.A20)
	return &n
}

// Plumb the state of a snapshot into the memory, including the page
// handlers. The backing slice of the memory is not replaced.
func (mem *Memory) Plumb(snapshot *Memory) error {
	if snapshot.Size() != mem.Size() {
		return curated.Errorf(SaveStateMismatch, "memory size")
	}
	if err := mem.Pages.Plumb(snapshot.Pages); err != nil {
		return err
	}
	copy(mem.ram, snapshot.ram)
	copy(mem.handlers, rebind(snapshot.handlers, snapshot, mem))
	mem.A20.Enable(snapshot.A20.Enabled())
	return nil
}
