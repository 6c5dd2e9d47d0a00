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
	"io"

	"github.com/bradleyjkemp/memviz"
)

type graphPage struct {
	Page    int
	Address uint32
	Next    *graphPage
}

type graphChain struct {
	Handle MemHandle
	Pages  int
	First  *graphPage
}

// WriteGraph writes a graphviz description of every chain to w. The reserved
// chain is omitted.
func (al *Allocator) WriteGraph(w io.Writer) {
	al.crit.Lock()

	var chains []*graphChain
	for p, e := range al.table {
		h := handleOf(p)
		if !e.allocated || !e.head || h == al.reserved {
			continue
		}

		c := al.chain(h)
		gc := &graphChain{Handle: h, Pages: len(c)}
		var tail *graphPage
		for _, q := range c {
			gp := &graphPage{Page: q, Address: uint32(PageAddress(handleOf(q)))}
			if tail == nil {
				gc.First = gp
			} else {
				tail.Next = gp
			}
			tail = gp
		}
		chains = append(chains, gc)
	}

	al.crit.Unlock()

	memviz.Map(w, &chains)
}
