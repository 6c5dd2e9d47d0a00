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

package addresses

import "fmt"

// PhysPt is a guest physical address.
type PhysPt uint32

// LinearPt is a guest linear address. Without paging it is identical to the
// physical address.
type LinearPt uint32

// RealPt is a packed segment:offset pair.
type RealPt uint32

// SegmentVal is the value of a segment register.
type SegmentVal uint16

func (p PhysPt) String() string {
	return fmt.Sprintf("%08x", uint32(p))
}

func (r RealPt) String() string {
	return fmt.Sprintf("%04x:%04x", RealSeg(r), RealOff(r))
}

// RealMake packs a segment and offset into a RealPt.
func RealMake(seg, off uint16) RealPt {
	return RealPt(uint32(seg)<<16 | uint32(off))
}

// RealSeg returns the segment part of the real pointer.
func RealSeg(r RealPt) uint16 {
	return uint16(r >> 16)
}

// RealOff returns the offset part of the real pointer.
func RealOff(r RealPt) uint16 {
	return uint16(r)
}

// Real2Phys converts the real pointer to a physical address.
func Real2Phys(r RealPt) PhysPt {
	return PhysMake(RealSeg(r), RealOff(r))
}

// PhysMake returns the physical address of seg:off.
func PhysMake(seg, off uint16) PhysPt {
	return PhysPt(uint32(seg)<<4 + uint32(off))
}

// PhysToReal416 converts the physical address to a real pointer with a 4-bit
// segment and a 16-bit offset.
func PhysToReal416(p PhysPt) RealPt {
	return RealMake(uint16((p>>4)&0xf000), uint16(p&0xffff))
}
