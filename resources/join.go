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

package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeVariable names the environment variable that, when set, replaces the
// build specific base path.
const HomeVariable = "GOPHER86_HOME"

func basePath() (string, error) {
	if h, ok := os.LookupEnv(HomeVariable); ok && h != "" {
		return filepath.Clean(h), nil
	}
	return resourcePath()
}

// JoinPath prepends the supplied path with the base path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(path...)
	if p != base && !strings.HasPrefix(p, base+string(filepath.Separator)) {
		p = filepath.Join(base, p)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}

	return p, nil
}
