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

package prefs

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// a group of key/value pairs from a single command line
type group map[string]string

// the stack of command line groups. only the most recent group is
// consulted by GetCommandLinePref()
var commandLine struct {
	crit  sync.Mutex
	stack []group
}

// parseGroup divides a string of key::value pairs separated by semi-colons.
// pairs without a separator are ignored.
func parseGroup(s string) group {
	g := make(group)
	for _, p := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		g[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return g
}

// String returns the pairs in the group in key order.
func (g group) String() string {
	var pairs []string
	for _, k := range slices.Sorted(maps.Keys(g)) {
		pairs = append(pairs, k+"::"+g[k])
	}
	return strings.Join(pairs, "; ")
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the "unused" preferences of the stack entry.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}

	popped := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]
	return popped.String()
}

// PushCommandLineStack parses a command line and adds it as a new group. The
// format of the string is a series of key::value pairs separated by
// semi-colons. For example:
//
//	memory.size::4096; memory.a20::true
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, parseGroup(prefs))
}

// GetCommandLinePref value from current group. The value is deleted when it is
// returned.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}

	g := commandLine.stack[n-1]
	v, ok := g[key]
	if !ok {
		return false, nil
	}
	delete(g, key)

	return true, v
}
