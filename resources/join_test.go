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

//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher86/resources"
	"github.com/jetsetilly/gopher86/test"
)

func TestJoinPath(t *testing.T) {
	// JoinPath() creates directories relative to the working directory so
	// move to a temporary directory for the duration of the test
	t.Chdir(t.TempDir())
	t.Setenv(resources.HomeVariable, "")

	pth, err := resources.JoinPath("foo", "bar")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher86", "foo", "bar"))

	// the parent directory now exists but the file itself does not
	_, err = os.Stat(filepath.Join(".gopher86", "foo"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// the base path is not prepended twice
	pth, err = resources.JoinPath(filepath.Join(".gopher86", "baz"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher86", "baz"))
}

func TestHomeVariable(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv(resources.HomeVariable, home)

	pth, err := resources.JoinPath("preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(home, "preferences"))

	_, err = os.Stat(home)
	test.ExpectSuccess(t, err)

	// a path already inside the home directory is left alone
	pth, err = resources.JoinPath(filepath.Join(home, "saves", "a.sav"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(home, "saves", "a.sav"))
}
