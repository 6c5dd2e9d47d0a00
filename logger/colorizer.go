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

package logger

import (
	"io"
	"strings"
)

const (
	dimTag    = "\033[2m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is dimmed so that the detail stands out.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}

		var s string
		if tag, detail, ok := strings.Cut(l, ": "); ok {
			s = dimTag + tag + ":" + normalPen + " " + detail
		} else {
			s = l
		}

		if _, err := io.WriteString(c.out, s); err != nil {
			return n, err
		}
		n += len(l)
	}

	return n, nil
}
