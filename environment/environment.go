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

package environment

import (
	"github.com/jetsetilly/gopher86/hardware/preferences"
)

// Label is used to name the environment
type Label string

// List of well known labels.
const (
	// the main emulation is the only one allowed to log
	MainEmulation = Label("")

	// copies of memory made for undo and comparison purposes
	SnapshotEmulation = Label("snapshot")
)

// Environment is used to provide context for an emulation. Particularly useful
// when using more than one memory instance at the same time
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created and loaded from disk. Providing a non-nil value allows the
// preferences of more than one emulation to be synchronised.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Derive returns a new environment with the label. The preferences are shared
// with the original environment.
func (env *Environment) Derive(label Label) *Environment {
	return &Environment{
		Label: label,
		Prefs: env.Prefs,
	}
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run of the test.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env != nil && env.IsMainEmulation()
}
