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

package monitor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher86/hardware/memory/addresses"
)

// Tokens represents tokenised input.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Remaining returns the count of remaining tokens in the token list.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list, and a success boolean.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek returns the next token in the list without advancing the list.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// TokeniseInput creates and returns a new Tokens instance. Anything after a
// # character is a comment.
func TokeniseInput(input string) *Tokens {
	if i := strings.IndexByte(input, '#'); i >= 0 {
		input = input[:i]
	}
	input = strings.TrimSpace(input)

	tk := &Tokens{
		input:  input,
		tokens: strings.Fields(input),
	}

	// normalise hex notation
	for i := range tk.tokens {
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	return tk
}

// parseNumber accepts decimal, 0x prefixed hex and h suffixed hex.
func parseNumber(s string, bits int) (uint64, error) {
	if n := len(s); n > 1 && (s[n-1] == 'h' || s[n-1] == 'H') {
		return strconv.ParseUint(s[:n-1], 16, bits)
	}
	return strconv.ParseUint(s, 0, bits)
}

// parseAddress accepts anything parseNumber() accepts and real-mode
// addresses in seg:off form.
func parseAddress(s string) (addresses.PhysPt, error) {
	if strings.Contains(s, ":") {
		r, err := parseRealPt(s)
		return addresses.Real2Phys(r), err
	}

	v, err := parseNumber(s, 32)
	return addresses.PhysPt(v), err
}

// parseRealPt accepts a real-mode address in seg:off form.
func parseRealPt(s string) (addresses.RealPt, error) {
	seg, off, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("not a seg:off address")
	}
	sv, err := strconv.ParseUint(strings.TrimPrefix(seg, "0x"), 16, 16)
	if err != nil {
		return 0, err
	}
	ov, err := strconv.ParseUint(strings.TrimPrefix(off, "0x"), 16, 16)
	if err != nil {
		return 0, err
	}
	return addresses.RealMake(uint16(sv), uint16(ov)), nil
}
