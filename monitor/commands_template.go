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

// monitor keywords
const (
	cmdReset  = "RESET"
	cmdQuit   = "QUIT"
	cmdHelp   = "HELP"
	cmdUndo   = "UNDO"
	cmdScript = "SCRIPT"
	cmdLog    = "LOG"

	cmdPeek = "PEEK"
	cmdPoke = "POKE"
	cmdStr  = "STR"
	cmdVec  = "VEC"

	cmdAlloc   = "ALLOC"
	cmdFree    = "FREE"
	cmdRealloc = "REALLOC"
	cmdChain   = "CHAIN"
	cmdStats   = "STATS"
	cmdA20     = "A20"
	cmdGraph   = "GRAPH"

	cmdSave = "SAVE"
	cmdLoad = "LOAD"
)

// keywords in the order they are listed by HELP
var keywords = []string{
	cmdPeek, cmdPoke, cmdStr, cmdVec,
	cmdAlloc, cmdFree, cmdRealloc, cmdChain, cmdStats, cmdA20, cmdGraph,
	cmdSave, cmdLoad, cmdUndo, cmdReset,
	cmdScript, cmdLog, cmdHelp, cmdQuit,
}

var usage = map[string]string{
	cmdPeek:    "PEEK <addr> [count]",
	cmdPoke:    "POKE <addr> <value> [B|W|D]",
	cmdStr:     "STR <addr>",
	cmdVec:     "VEC <vector> [seg:off]",
	cmdAlloc:   "ALLOC <count> [CONTIGUOUS] [FRIENDLY]",
	cmdFree:    "FREE <handle>",
	cmdRealloc: "REALLOC <handle> <count> [CONTIGUOUS]",
	cmdChain:   "CHAIN <handle>",
	cmdStats:   "STATS",
	cmdA20:     "A20 [ON|OFF]",
	cmdGraph:   "GRAPH [file]",
	cmdSave:    "SAVE <file>",
	cmdLoad:    "LOAD <file>",
	cmdUndo:    "UNDO",
	cmdReset:   "RESET",
	cmdScript:  "SCRIPT <file>",
	cmdLog:     "LOG [number]",
	cmdHelp:    "HELP [command]",
	cmdQuit:    "QUIT",
}

var help = map[string]string{
	cmdPeek:    "Display memory as seen by the guest, starting at address. Default count is 16",
	cmdPoke:    "Write a byte, word or dword to the guest address. Default width is byte",
	cmdStr:     "Display the NUL terminated string at the guest address",
	cmdVec:     "Display or change a real-mode interrupt vector",
	cmdAlloc:   "Allocate pages. Returns the handle of the new chain",
	cmdFree:    "Release the chain starting with the handle",
	cmdRealloc: "Resize the chain starting with the handle. The handle may change",
	cmdChain:   "List the pages in the chain starting with the handle",
	cmdStats:   "Display allocator statistics",
	cmdA20:     "Display or change the state of the A20 gate",
	cmdGraph:   "Write a graphviz diagram of all allocated chains",
	cmdSave:    "Save memory, the A20 gate and the page table to file",
	cmdLoad:    "Load memory, the A20 gate and the page table from file",
	cmdUndo:    "Undo the most recent command that changed memory",
	cmdReset:   "Clear memory and release all pages",
	cmdScript:  "Run a Lua script",
	cmdLog:     "Display the most recent log entries. Default number is 10",
	cmdHelp:    "Display help for a command, or list all commands",
	cmdQuit:    "Leave the monitor",
}

// commands that change memory, with the number of arguments required before
// the command is considered to be a change. a snapshot is taken before these
// are run so that they can be undone
var mutates = map[string]int{
	cmdPoke:    2,
	cmdVec:     2,
	cmdAlloc:   1,
	cmdFree:    1,
	cmdRealloc: 2,
	cmdA20:     1,
	cmdLoad:    1,
	cmdReset:   0,
	cmdScript:  1,
}
