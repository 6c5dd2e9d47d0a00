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
	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
	"github.com/jetsetilly/gopher86/hardware/memory/host"
	"github.com/jetsetilly/gopher86/hardware/memory/memorymap"
)

// MaxStrLen is the longest string that StrLen() and StrCpy() will look at.
const MaxStrLen = 1024

// run returns the number of bytes from addr to the end of its page, limited
// to n. the boolean is true if the page is plain RAM
func (mem *Memory) run(addr addresses.PhysPt, n int) (int, bool) {
	l := min(n, int(memorymap.PageSize-memorymap.PageOffset(uint32(addr))))
	return l, mem.plain(addr, 1)
}

// BlockRead copies len(buf) bytes of guest memory starting at addr into buf.
func (mem *Memory) BlockRead(addr addresses.PhysPt, buf []uint8) {
	for len(buf) > 0 {
		a := mem.A20.Wrap(addr)
		l, ok := mem.run(a, len(buf))
		if ok {
			copy(buf[:l], mem.ram[a:])
		} else {
			for i := range l {
				buf[i] = mem.ReadB(addr + addresses.PhysPt(i))
			}
		}
		buf = buf[l:]
		addr += addresses.PhysPt(l)
	}
}

// BlockWrite copies data into guest memory starting at addr.
func (mem *Memory) BlockWrite(addr addresses.PhysPt, data []uint8) {
	for len(data) > 0 {
		a := mem.A20.Wrap(addr)
		l, ok := mem.run(a, len(data))
		if ok {
			copy(mem.ram[a:], data[:l])
		} else {
			for i := range l {
				mem.WriteB(addr+addresses.PhysPt(i), data[i])
			}
		}
		data = data[l:]
		addr += addresses.PhysPt(l)
	}
}

// BlockRead32 is like BlockRead() but the bulk of the transfer is made with
// double word accesses. Bytes before the first aligned address and after
// the last whole double word are transferred one at a time.
func (mem *Memory) BlockRead32(addr addresses.PhysPt, buf []uint8) {
	var i int
	for ; i < len(buf) && (addr+addresses.PhysPt(i))&3 != 0; i++ {
		buf[i] = mem.ReadB(addr + addresses.PhysPt(i))
	}
	for ; i+4 <= len(buf); i += 4 {
		host.StoreIntelDword(buf[i:], mem.ReadD(addr+addresses.PhysPt(i)))
	}
	for ; i < len(buf); i++ {
		buf[i] = mem.ReadB(addr + addresses.PhysPt(i))
	}
}

// BlockWrite32 is like BlockWrite() but the bulk of the transfer is made
// with double word accesses.
func (mem *Memory) BlockWrite32(addr addresses.PhysPt, data []uint8) {
	var i int
	for ; i < len(data) && (addr+addresses.PhysPt(i))&3 != 0; i++ {
		mem.WriteB(addr+addresses.PhysPt(i), data[i])
	}
	for ; i+4 <= len(data); i += 4 {
		mem.WriteD(addr+addresses.PhysPt(i), host.LoadIntelDword(data[i:]))
	}
	for ; i < len(data); i++ {
		mem.WriteB(addr+addresses.PhysPt(i), data[i])
	}
}

// BlockCopy copies size bytes of guest memory from src to dst. Overlapping
// ranges are copied so that the result is as though the source had first
// been copied to a temporary buffer.
func (mem *Memory) BlockCopy(dst addresses.PhysPt, src addresses.PhysPt, size uint32) {
	if dst > src && dst-src < addresses.PhysPt(size) {
		for i := addresses.PhysPt(size); i > 0; i-- {
			mem.WriteB(dst+i-1, mem.ReadB(src+i-1))
		}
		return
	}
	for i := addresses.PhysPt(0); i < addresses.PhysPt(size); i++ {
		mem.WriteB(dst+i, mem.ReadB(src+i))
	}
}

// StrCopy copies the string from the host into guest memory. Copying stops at
// the first NUL in the string or after size bytes. A terminating NUL is
// written if there is room for it within size bytes. Returns the number of
// bytes copied, not including the terminator.
func (mem *Memory) StrCopy(addr addresses.PhysPt, s string, size uint32) uint32 {
	var n uint32
	for ; n < size && int(n) < len(s) && s[n] != 0x00; n++ {
		mem.WriteB(addr+addresses.PhysPt(n), s[n])
	}
	if n < size {
		mem.WriteB(addr+addresses.PhysPt(n), 0x00)
	}
	return n
}

// StrRead returns the NUL terminated string in guest memory at addr. No
// more than size bytes are read.
func (mem *Memory) StrRead(addr addresses.PhysPt, size uint32) string {
	b := make([]uint8, 0, min(size, MaxStrLen))
	for i := uint32(0); i < size; i++ {
		c := mem.ReadB(addr + addresses.PhysPt(i))
		if c == 0x00 {
			break
		}
		b = append(b, c)
	}
	return string(b)
}

// MemCpy copies size bytes of guest memory from src to dst, one byte at a
// time in ascending address order. When dst is just above src the source
// bytes are repeated through the destination.
func (mem *Memory) MemCpy(dst addresses.PhysPt, src addresses.PhysPt, size uint32) {
	for i := addresses.PhysPt(0); i < addresses.PhysPt(size); i++ {
		mem.WriteB(dst+i, mem.ReadB(src+i))
	}
}

// StrLen returns the length of the NUL terminated string in guest memory.
// Returns zero if there is no terminator in the first MaxStrLen bytes.
func (mem *Memory) StrLen(addr addresses.PhysPt) uint32 {
	for i := uint32(0); i < MaxStrLen; i++ {
		if mem.ReadB(addr+addresses.PhysPt(i)) == 0x00 {
			return i
		}
	}
	return 0
}

// StrCpy copies the NUL terminated string in guest memory at src to dst,
// including the terminator. No more than MaxStrLen bytes are copied before
// the terminator is written. Returns the length of the string copied.
func (mem *Memory) StrCpy(dst addresses.PhysPt, src addresses.PhysPt) uint32 {
	var n uint32
	for ; n < MaxStrLen; n++ {
		c := mem.ReadB(src + addresses.PhysPt(n))
		if c == 0x00 {
			break
		}
		mem.WriteB(dst+addresses.PhysPt(n), c)
	}
	mem.WriteB(dst+addresses.PhysPt(n), 0x00)
	return n
}
