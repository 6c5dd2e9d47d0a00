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

package test_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jetsetilly/gopher86/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint16(0x1234), 0x1200|0x34)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectSuccess(t, w.Compare(""))
	w.Write([]byte("foo"))
	w.Write([]byte("bar"))
	test.ExpectSuccess(t, w.Compare("foobar"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
	test.ExpectEquality(t, len(w.Lines()), 0)

	w.Write([]byte("one\ntwo\n"))
	w.Write([]byte("three"))
	test.ExpectSuccess(t, w.Contains("two\nthree"))
	test.ExpectFailure(t, w.Contains("four"))

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "one")
	test.ExpectEquality(t, lines[2], "three")
}

func TestCompareWriterConcurrent(t *testing.T) {
	w := &test.CompareWriter{}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				w.Write([]byte("x\n"))
			}
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, len(w.Lines()), 800)
}
