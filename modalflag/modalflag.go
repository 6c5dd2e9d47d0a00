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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const modeSeparator = "/"

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added the
	// selected mode can be found with Mode()
	ParseContinue ParseResult = iota

	// help was requested and has already been printed
	ParseHelp

	// the error returned alongside the result should be shown to the user
	ParseError
)

// Modes handles the command line arguments for a modal program. Output
// should be set before calling Parse() otherwise help messages are lost.
type Modes struct {
	Output io.Writer

	args []string
	idx  int

	flags    *flag.FlagSet
	subModes []string
	help     string

	// path is never reset
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs starts a new parse of the supplied argument list.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.NewMode()
}

// NewMode prepares for the flags and sub-modes of the next mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.help = ""
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The
// first sub-mode added after NewMode() is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is printed after the flags and sub-modes in the help message.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Mode returns the most recent mode selected by Parse().
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// RemainingArgs returns the arguments after the flags and mode of the most
// recent call to Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i < 0 || md.idx+i >= len(md.args) {
		return ""
	}
	return md.args[md.idx+i]
}

// Parse the flags for the current mode and select the next mode if any
// sub-modes have been added. Idiomatic use:
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	var usage strings.Builder
	md.flags.SetOutput(&usage)

	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.printHelp()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// skip over the flags that have been consumed
	md.idx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.idx++
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

func (md *Modes) printHelp() {
	if md.Output == nil {
		return
	}

	var flags []string
	md.flags.VisitAll(func(f *flag.Flag) {
		s := fmt.Sprintf("  -%s", f.Name)
		if name, _ := flag.UnquoteUsage(f); name != "" {
			s = fmt.Sprintf("%s %s", s, name)
		}
		s = fmt.Sprintf("%s\n    \t%s", s, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" {
			s = fmt.Sprintf("%s (default %s)", s, f.DefValue)
		}
		flags = append(flags, s)
	})

	if len(flags) == 0 && len(md.subModes) == 0 {
		if md.Path() == "" {
			fmt.Fprintln(md.Output, "No help available")
		} else {
			fmt.Fprintf(md.Output, "No help available for %s\n", md.Path())
		}
		return
	}

	if md.Path() == "" {
		fmt.Fprintln(md.Output, "Usage:")
	} else {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", md.Path())
	}

	for _, f := range flags {
		fmt.Fprintln(md.Output, f)
	}

	if len(md.subModes) > 0 {
		if len(flags) > 0 {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.help != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.help)
	}
}
