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

package test

import (
	"bytes"
	"strings"
	"sync"
)

// CompareWriter is an io.Writer that keeps everything written to it. Output
// can then be compared in full, searched, or split into lines. It is safe to
// write from more than one goroutine.
type CompareWriter struct {
	crit sync.Mutex
	buf  bytes.Buffer
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.buf.Write(p)
}

// Clear discards everything written so far.
func (cw *CompareWriter) Clear() {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	cw.buf.Reset()
}

// Compare returns true if the output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.String() == s
}

// Contains returns true if s appears anywhere in the output.
func (cw *CompareWriter) Contains(s string) bool {
	return strings.Contains(cw.String(), s)
}

// Lines returns the output split on newlines. A trailing newline does not
// produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.buf.String()
}
