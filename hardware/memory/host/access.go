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

package host

import (
	"strings"

	"github.com/jetsetilly/gopher86/curated"
)

// Access is implemented by the byte-order strategies.
type Access interface {
	ReadB(mem []uint8, off uint32) uint8
	ReadW(mem []uint8, off uint32) uint16
	ReadD(mem []uint8, off uint32) uint32
	ReadQ(mem []uint8, off uint32) uint64
	WriteB(mem []uint8, off uint32, v uint8)
	WriteW(mem []uint8, off uint32, v uint16)
	WriteD(mem []uint8, off uint32, v uint32)
	WriteQ(mem []uint8, off uint32, v uint64)
	String() string
}

// List of valid names for Select().
const (
	AccessAuto   = "AUTO"
	AccessBytes  = "BYTES"
	AccessDirect = "DIRECT"
)

// AccessNames is the list of names accepted by Select().
var AccessNames = []string{AccessAuto, AccessBytes, AccessDirect}

// UnknownAccess is the error pattern returned by Select() for an unrecognised name.
const UnknownAccess = "host: unknown access strategy: %s"

// Select returns the access strategy with the specified name. The name is
// not case sensitive. AUTO and the empty string both select Default.
func Select(name string) (Access, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", AccessAuto:
		return Default, nil
	case AccessBytes:
		return Bytes, nil
	case AccessDirect:
		return Direct, nil
	}
	return nil, curated.Errorf(UnknownAccess, name)
}
