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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare values of the
// same comparable type. Failures are reported with t.Errorf() and testing
// continues.
//
// The ExpectSuccess() and ExpectFailure() functions test bool and error
// values. For bool values success means true and for error values success
// means nil.
//
// The Demand*() variants are the same as the Expect*() variants except that
// a failure ends the test with t.Fatalf(). Use these when subsequent tests
// make no sense if the demand is not met.
//
// The tags argument of all functions is optional and is used to identify
// the test in the failure message. This is useful when testing inside a loop.
package test
