// This file is part of sdl2raii.
//
// sdl2raii is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl2raii is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl2raii.  If not, see <https://www.gnu.org/licenses/>.

// Package optional provides a value that may or may not be present.
//
// Foreign libraries use nullable pointers to indicate an optional argument.
// The Ptr() function bridges the two conventions: it returns the address of
// the contained value, or nil if there is no value.
package optional

// Optional holds a value of type T or nothing. The zero value holds nothing.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an Optional holding a copy of *p, or an empty Optional if p
// is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Some(*p)
}

// Present returns true if the Optional holds a value.
func (o Optional[T]) Present() bool {
	return o.present
}

// Get returns the value and true, or the zero value of T and false.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value, or v if there is no value.
func (o Optional[T]) OrElse(v T) T {
	if o.present {
		return o.value
	}
	return v
}

// Ptr returns a pointer to the value held by the Optional, or nil if the
// Optional is empty.
//
// The pointer refers to the storage of the Optional it is called on, so it is
// only valid for as long as that Optional is. It should be passed directly to
// a foreign function and never retained.
func (o *Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	return &o.value
}
