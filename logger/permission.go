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

package logger

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries. A nil Permission never
// allows logging.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts an ordinary function to the Permission interface.
// The function is consulted on every log request so the permission can change
// over the lifetime of the value.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface. A nil PermissionFunc
// never allows logging.
func (f PermissionFunc) AllowLogging() bool {
	return f != nil && f()
}

// Allow and Deny are fixed permissions for code that has no environment, for
// example command line tools and tests.
var (
	Allow Permission = PermissionFunc(func() bool { return true })
	Deny  Permission = PermissionFunc(func() bool { return false })
)

// allowed is the single point at which a log request is tested.
func allowed(perm Permission) bool {
	return perm != nil && perm.AllowLogging()
}
