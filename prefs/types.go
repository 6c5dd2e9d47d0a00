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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// typed is the storage and hook handling shared by every preference type.
// the zero value is ready to use and holds the zero value of T.
type typed[T bool | int | string] struct {
	value    atomic.Pointer[T]
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *typed[T]) load() T {
	if v := p.value.Load(); v != nil {
		return *v
	}
	var z T
	return z
}

// store the new value, calling the hooks as appropriate. the value is not
// changed if the pre hook returns an error.
func (p *typed[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(&nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}

	return nil
}

// SetHookPre sets the callback function to be called just before the value is
// changed. The value is not changed if the hook returns an error.
func (p *typed[T]) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value is
// changed.
func (p *typed[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	typed[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	typed[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

func (p *String) crop(s string) string {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return s[:p.maxLen]
	}
	return s
}

// SetMaxLen sets the maximum length for a string when it is set. The current
// value is cropped if necessary. A value of zero or less means no limit.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if v := p.value.Load(); v != nil {
		s := p.crop(*v)
		p.value.Store(&s)
	}
}

// Set new value to String type. New value can be of any type. It is converted
// to a string with the %v verb.
func (p *String) Set(v Value) error {
	return p.store(p.crop(strings.TrimSpace(fmt.Sprintf("%v", v))))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	typed[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value must be of an integer type or a string
// that can be converted to an integer. Strings may use the 0x prefix for hex.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case uint8:
		return p.store(int(v))
	case uint16:
		return p.store(int(v))
	case string:
		nv, err := strconv.ParseInt(strings.TrimSpace(v), 0, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
		return p.store(int(nv))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
