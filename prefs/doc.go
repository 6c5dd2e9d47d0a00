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

// Package prefs facilitates the storage of preferential values in the
// Gopher86 system. It is a key/value store with values of type Bool, Int and
// String.
//
// Preference values are added to a Disk instance with a key. The Save() and
// Load() functions of the Disk type write and read all the keys added to the
// Disk. Keys in the file that have not been added to the Disk instance are
// preserved on Save(). This means that more than one Disk instance can use
// the same file.
//
// Values set on the command line (see PushCommandLineStack()) override values
// loaded from disk.
//
// Hooks can be attached to a value with SetHookPre() and SetHookPost(). The
// pre hook can prevent a value from being set by returning an error.
package prefs
