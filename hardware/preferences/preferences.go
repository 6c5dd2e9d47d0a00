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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher86/hardware/memory/host"
	"github.com/jetsetilly/gopher86/prefs"
	"github.com/jetsetilly/gopher86/resources"
)

// DefaultPrefsFile is the name of the preferences file in the resources
// directory.
const DefaultPrefsFile = "preferences"

// Default values for the memory preferences.
const (
	DefaultSize          = 16384
	DefaultReserved      = 1088
	DefaultUnmappedValue = 0xff
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// size of guest memory in kilobytes
	Size prefs.Int

	// size of the memory in kilobytes held back from the page allocator.
	// the default is the 640K of conventional memory, the upper memory area
	// and the HMA
	Reserved prefs.Int

	// initial state of the A20 gate
	A20 prefs.Bool

	// byte order access strategy. one of the names in host.AccessNames
	Access prefs.String

	// the value returned by reads from addresses with no memory
	UnmappedValue prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("memory.size :: %s\nmemory.reserved :: %s\nmemory.a20 :: %s\nmemory.access :: %s\nmemory.unmappedValue :: %s\n",
			&p.Size, &p.Reserved, &p.A20, &p.Access, &p.UnmappedValue)
	}
	return p.dsk.String()
}

func newPreferences() *Preferences {
	p := &Preferences{}

	p.Size.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 4 || v.(int)%4 != 0 {
			return fmt.Errorf("preferences: memory size must be a positive multiple of 4KB")
		}
		return nil
	})
	p.Reserved.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int)%4 != 0 {
			return fmt.Errorf("preferences: reserved memory must be a multiple of 4KB")
		}
		return nil
	})
	p.Access.SetHookPre(func(v prefs.Value) error {
		_, err := host.Select(v.(string))
		return err
	})
	p.UnmappedValue.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 0xff {
			return fmt.Errorf("preferences: unmapped value must be a byte")
		}
		return nil
	})

	p.SetDefaults()

	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	pth, err := resources.JoinPath(DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memory.size", &p.Size)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.reserved", &p.Reserved)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.a20", &p.A20)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.access", &p.Access)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.unmappedValue", &p.UnmappedValue)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns preferences with default values that are
// not backed by a file. Save() and Load() do nothing.
func NewDefaultPreferences() *Preferences {
	return newPreferences()
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Size.Set(DefaultSize)
	p.Reserved.Set(DefaultReserved)
	p.A20.Set(false)
	p.Access.Set(host.AccessAuto)
	p.UnmappedValue.Set(DefaultUnmappedValue)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
