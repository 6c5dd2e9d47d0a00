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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher86/environment"
	"github.com/jetsetilly/gopher86/hardware/memory"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/modalflag"
	"github.com/jetsetilly/gopher86/monitor"
	"github.com/jetsetilly/gopher86/monitor/script"
	"github.com/jetsetilly/gopher86/monitor/terminal"
	"github.com/jetsetilly/gopher86/monitor/terminal/colorterm"
	"github.com/jetsetilly/gopher86/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher86/prefs"
	"github.com/jetsetilly/gopher86/statsview"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the command line and runs the selected mode. returns the
// value to be used with os.Exit()
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("MONITOR", "SCRIPT")

	log := md.AddBool("log", false, "echo log to terminal")
	prf := md.AddString("prefs", "", "preferences for this session. eg. \"memory.size::4096; memory.a20::true\"")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run stats server")
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	if *prf != "" {
		prefs.PushCommandLineStack(*prf)
		defer prefs.PopCommandLineStack()
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "MONITOR":
		err = runMonitor(md, *log)
	case "SCRIPT":
		err = runScript(md, *log)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func newMemory() (*environment.Environment, *memory.Memory, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, nil, err
	}

	mem, err := memory.NewMemory(env)
	if err != nil {
		return nil, nil, err
	}

	return env, mem, nil
}

func runMonitor(md *modalflag.Modes, log bool) error {
	md.NewMode()
	md.AdditionalHelp("An optional save-state file can be specified. It will be loaded on startup")

	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, mem, err := newMemory()
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	case "COLOR":
		if colorterm.Available() {
			term = &colorterm.ColorTerminal{}
		} else {
			term = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
		}
	}

	mon := monitor.NewMonitor(env, mem, term)

	if log {
		logger.SetEcho(mon.Writer(terminal.StyleLog), false)
		defer logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if err := mon.Command(fmt.Sprintf("LOAD %s", md.GetArg(0))); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return mon.Run()
}

func runScript(md *modalflag.Modes, log bool) error {
	md.NewMode()
	md.AdditionalHelp("A Lua script file must be specified")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires exactly one script file", md)
	}

	if log {
		logger.SetEcho(os.Stdout, false)
		defer logger.SetEcho(nil, false)
	}

	env, mem, err := newMemory()
	if err != nil {
		return err
	}

	r := script.NewRunner(env, mem, os.Stdout)
	defer r.Close()

	return r.RunFile(md.GetArg(0))
}
