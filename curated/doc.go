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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and is
// used to identify the error later on:
//
//	const Exhausted = "pages: no free pages for %d page request"
//
//	e := curated.Errorf(Exhausted, 10)
//
//	if curated.Is(e, Exhausted) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. A curated error is part of the chain if it was one of the
// values given to Errorf().
//
//	f := curated.Errorf("memory: %v", e)
//
//	if curated.Has(f, Exhausted) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it separates 'expected' errors from
// 'unexpected' errors.
//
// The Error() function normalises the error message so that the chain does
// not contain duplicate adjacent parts. This means that wrapping an error
// with the same prefix more than once does not produce a stuttering message.
//
// Curated errors also implement Unwrap() so they can be used with the Is()
// and As() functions of the errors package in the standard library.
package curated
